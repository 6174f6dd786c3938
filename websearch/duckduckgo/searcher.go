package duckduckgo

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/w-h-a/rdbrain/websearch"
	"go.uber.org/zap"
)

const (
	endpoint  = "https://html.duckduckgo.com/html/"
	userAgent = "Mozilla/5.0 (compatible; rdbrain/1.0)"
)

type duckDuckGoSearcher struct {
	options websearch.Options
}

func (s *duckDuckGoSearcher) Search(ctx context.Context, query string, maxResults int) ([]websearch.Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?q="+url.QueryEscape(query), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	rsp, err := s.options.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer rsp.Body.Close()

	if rsp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("duckduckgo returned status %d", rsp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(rsp.Body)
	if err != nil {
		return nil, err
	}

	var results []websearch.Result
	doc.Find(".result").EachWithBreak(func(i int, sel *goquery.Selection) bool {
		if len(results) >= maxResults {
			return false
		}

		anchor := sel.Find(".result__a")
		href, _ := anchor.Attr("href")

		result := websearch.Result{
			Title: strings.TrimSpace(anchor.Text()),
			Href:  resolveRedirect(href),
			Body:  strings.TrimSpace(sel.Find(".result__snippet").Text()),
		}

		if len(result.Title) == 0 || len(result.Href) == 0 {
			return true
		}

		results = append(results, result)
		return true
	})

	s.options.Logger.Debug("duckduckgo search",
		zap.String("query", query),
		zap.Int("results", len(results)),
	)

	return results, nil
}

func (s *duckDuckGoSearcher) Fetch(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)

	rsp, err := s.options.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer rsp.Body.Close()

	if rsp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch returned status %d", rsp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(rsp.Body)
	if err != nil {
		return "", err
	}

	// Patent and paper pages put the abstract in the meta description.
	if desc, ok := doc.Find(`meta[name="description"]`).Attr("content"); ok && len(strings.TrimSpace(desc)) > 0 {
		return strings.TrimSpace(desc), nil
	}

	text := strings.Join(strings.Fields(doc.Find("body").Text()), " ")
	if r := []rune(text); len(r) > 500 {
		text = string(r[:500])
	}

	return text, nil
}

// resolveRedirect unwraps DuckDuckGo's /l/?uddg=<url> redirect links.
func resolveRedirect(href string) string {
	if len(href) == 0 {
		return href
	}

	parsed, err := url.Parse(href)
	if err != nil {
		return href
	}

	if uddg := parsed.Query().Get("uddg"); len(uddg) > 0 {
		if target, err := url.QueryUnescape(uddg); err == nil {
			return target
		}
	}

	return href
}

func NewSearcher(opts ...websearch.Option) websearch.Searcher {
	options := websearch.NewOptions(opts...)

	return &duckDuckGoSearcher{
		options: options,
	}
}
