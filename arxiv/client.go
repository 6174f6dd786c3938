package arxiv

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultEndpoint = "https://export.arxiv.org/api/query"

type Client struct {
	options Options
}

// Search queries the arXiv Atom API sorted by relevance. The query string may
// use the arXiv query language (AND/OR, cat: constraints).
func (c *Client) Search(ctx context.Context, query string, maxResults int) ([]Paper, error) {
	if len(strings.TrimSpace(query)) == 0 {
		return nil, nil
	}

	// Bare keyword queries search all fields; queries carrying field prefixes
	// (cat:, ti:, AND/OR expressions) pass through untouched.
	searchQuery := query
	if !strings.Contains(query, ":") {
		searchQuery = "all:" + query
	}

	params := url.Values{}
	params.Set("search_query", searchQuery)
	params.Set("start", "0")
	params.Set("max_results", strconv.Itoa(maxResults))
	params.Set("sortBy", "relevance")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.options.Endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	rsp, err := c.options.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer rsp.Body.Close()

	if rsp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("arxiv returned status %d", rsp.StatusCode)
	}

	var feed atomFeed
	if err := xml.NewDecoder(rsp.Body).Decode(&feed); err != nil {
		return nil, err
	}

	papers := make([]Paper, 0, len(feed.Entries))
	for _, entry := range feed.Entries {
		paper := Paper{
			Title:   squash(entry.Title),
			Summary: squash(entry.Summary),
			Link:    entry.Id,
		}
		for _, author := range entry.Authors {
			paper.Authors = append(paper.Authors, author.Name)
		}
		for _, cat := range entry.Categories {
			paper.Categories = append(paper.Categories, cat.Term)
		}
		if published, err := time.Parse(time.RFC3339, entry.Published); err == nil {
			paper.Published = published
		}
		papers = append(papers, paper)
	}

	return papers, nil
}

func squash(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

type atomFeed struct {
	XMLName xml.Name    `xml:"feed"`
	Entries []atomEntry `xml:"entry"`
}

type atomEntry struct {
	Id         string         `xml:"id"`
	Title      string         `xml:"title"`
	Summary    string         `xml:"summary"`
	Published  string         `xml:"published"`
	Authors    []atomAuthor   `xml:"author"`
	Categories []atomCategory `xml:"category"`
}

type atomAuthor struct {
	Name string `xml:"name"`
}

type atomCategory struct {
	Term string `xml:"term,attr"`
}

func NewClient(opts ...Option) *Client {
	options := NewOptions(opts...)

	return &Client{
		options: options,
	}
}
