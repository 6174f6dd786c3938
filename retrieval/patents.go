package retrieval

import (
	"context"
	"fmt"
	"strings"

	"github.com/w-h-a/rdbrain/websearch"
	"go.uber.org/zap"
)

const (
	patentSite     = "site:patents.google.com"
	patentYears    = "2024 2025"
	maxKeywords    = 10
	maxEnrichments = 3
)

// PatentSearcher queries a patent-publication domain through the generic web
// searcher and formats hits into one text block.
type PatentSearcher struct {
	options Options
}

func (p *PatentSearcher) Search(ctx context.Context, tags []string, maxResults int) Outcome[string] {
	keywords := RankKeywords(tags, maxKeywords)
	if len(keywords) == 0 {
		return Degrade(SentinelNoPatentData, "no keywords")
	}

	var merged []websearch.Result
	seen := map[string]bool{}

	for _, query := range p.candidateQueries(keywords) {
		if len(merged) >= maxResults {
			break
		}

		results, err := p.options.Web.Search(ctx, query, maxResults)
		if err != nil {
			p.options.Logger.Warn("patent search failed", zap.String("query", query), zap.Error(err))
			continue
		}

		for _, r := range results {
			if seen[r.Href] || len(merged) >= maxResults {
				continue
			}
			seen[r.Href] = true
			merged = append(merged, r)
		}
	}

	if len(merged) == 0 {
		return Degrade(SentinelNoPatentData, "no patent results")
	}

	return Ok(p.format(ctx, merged))
}

// candidateQueries fans a mixed-script keyword set out into several scoped
// queries; single-script sets issue one full query.
func (p *PatentSearcher) candidateQueries(keywords []string) []string {
	var acronyms, native []string
	for _, kw := range keywords {
		switch {
		case IsAcronym(kw):
			acronyms = append(acronyms, kw)
		case ContainsNativeScript(kw):
			native = append(native, kw)
		}
	}

	full := p.buildQuery(keywords)

	if len(acronyms) == 0 || len(native) == 0 {
		return []string{full}
	}

	queries := []string{
		p.buildQuery(acronyms),
		p.buildQuery(native),
		p.buildQuery(append(append([]string{}, acronyms...), native...)),
		full,
	}

	deduped := queries[:0]
	seen := map[string]bool{}
	for _, q := range queries {
		if seen[q] {
			continue
		}
		seen[q] = true
		deduped = append(deduped, q)
	}

	return deduped
}

func (p *PatentSearcher) buildQuery(keywords []string) string {
	return fmt.Sprintf("%s %s %s", patentSite, strings.Join(keywords, " "), patentYears)
}

func (p *PatentSearcher) format(ctx context.Context, results []websearch.Result) string {
	fetcher, _ := p.options.Web.(websearch.Fetcher)

	var b strings.Builder
	for i, r := range results {
		fmt.Fprintf(&b, "Title: %s\nURL: %s\nSnippet: %s\n", r.Title, r.Href, r.Body)

		// Abstract enrichment is best effort; a failed fetch leaves the snippet.
		if fetcher != nil && i < maxEnrichments {
			if abstract, err := fetcher.Fetch(ctx, r.Href); err == nil && len(abstract) > 0 {
				fmt.Fprintf(&b, "Abstract: %s\n", abstract)
			}
		}

		b.WriteString("\n")
	}

	return strings.TrimSpace(b.String())
}

func NewPatentSearcher(opts ...Option) *PatentSearcher {
	options := NewOptions(opts...)

	if options.Web == nil {
		panic("web searcher is required")
	}

	return &PatentSearcher{
		options: options,
	}
}
