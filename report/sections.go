package report

import "strings"

// Section is one ## block of a strategy report.
type Section struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// ParseSections splits a Markdown report on its ## headings. Text before the
// first heading is returned as an untitled section.
func ParseSections(md string) []Section {
	var sections []Section
	var current *Section

	flush := func() {
		if current != nil {
			current.Body = strings.TrimSpace(current.Body)
			sections = append(sections, *current)
			current = nil
		}
	}

	for _, line := range strings.Split(md, "\n") {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "## ") && !strings.HasPrefix(trimmed, "###") {
			flush()
			current = &Section{Title: cleanHeading(strings.TrimPrefix(trimmed, "## "))}
			continue
		}

		if current == nil {
			if len(trimmed) == 0 {
				continue
			}
			current = &Section{}
		}

		current.Body += line + "\n"
	}

	flush()

	return sections
}

// Headings returns the ## heading titles in document order.
func Headings(md string) []string {
	var titles []string
	for _, section := range ParseSections(md) {
		if len(section.Title) > 0 {
			titles = append(titles, section.Title)
		}
	}
	return titles
}

func cleanHeading(h string) string {
	h = strings.TrimSpace(h)
	h = strings.Trim(h, "*")
	return strings.TrimSpace(h)
}
