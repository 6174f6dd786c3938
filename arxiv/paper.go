package arxiv

import "time"

type Paper struct {
	Title      string    `json:"title"`
	Summary    string    `json:"summary"`
	Authors    []string  `json:"authors"`
	Link       string    `json:"link"`
	Published  time.Time `json:"published"`
	Categories []string  `json:"categories,omitempty"`
}
