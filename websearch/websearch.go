package websearch

import "context"

type Searcher interface {
	Search(ctx context.Context, query string, maxResults int) ([]Result, error)
}

// Fetcher retrieves a single page's summary text, used for best-effort
// enrichment of search results.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

type Result struct {
	Title string `json:"title"`
	Href  string `json:"href"`
	Body  string `json:"body"`
}
