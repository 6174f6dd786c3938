package retrieval

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/w-h-a/rdbrain/arxiv"
	"go.uber.org/zap"
)

// Category constraints appended to domain-filtered queries.
var chemistryCategories = []string{
	"cond-mat.mtrl-sci",
	"cond-mat.soft",
	"physics.chem-ph",
}

// AcademicSearcher queries the academic index, optionally constraining to
// materials-chemistry categories with a client-side relevance pass.
type AcademicSearcher struct {
	options Options
}

func (a *AcademicSearcher) Search(ctx context.Context, query string, maxResults int, domainFilter bool) Outcome[[]arxiv.Paper] {
	if len(strings.TrimSpace(query)) == 0 {
		return Degrade[[]arxiv.Paper](nil, "empty query")
	}

	if !domainFilter {
		papers, err := a.options.Arxiv.Search(ctx, query, maxResults)
		if err != nil {
			a.options.Logger.Warn("academic search failed", zap.Error(err))
			return Degrade[[]arxiv.Paper](nil, "academic search failed: "+err.Error())
		}
		return Ok(papers)
	}

	papers, err := a.options.Arxiv.Search(ctx, a.constrainedQuery(query), maxResults)
	if err != nil {
		a.options.Logger.Warn("academic search failed", zap.Error(err))
		return Degrade[[]arxiv.Paper](nil, "academic search failed: "+err.Error())
	}

	filtered := make([]arxiv.Paper, 0, len(papers))
	for _, paper := range papers {
		if RelevantToChemistry(paper.Title, paper.Summary) {
			filtered = append(filtered, paper)
		}
	}

	// Papers with a positive domain signal float to the top.
	sort.SliceStable(filtered, func(i, j int) bool {
		return HasChemistrySignal(filtered[i].Title, filtered[i].Summary) &&
			!HasChemistrySignal(filtered[j].Title, filtered[j].Summary)
	})

	if len(filtered) > 0 {
		return Ok(filtered)
	}

	// Relaxed retry: keywords only, no category constraints, no classifier.
	a.options.Logger.Info("academic search empty after filtering, retrying relaxed", zap.String("query", query))

	relaxed, err := a.options.Arxiv.Search(ctx, query, maxResults)
	if err != nil {
		a.options.Logger.Warn("relaxed academic search failed", zap.Error(err))
		return Degrade[[]arxiv.Paper](nil, "academic search failed: "+err.Error())
	}

	if len(relaxed) == 0 {
		return Degrade[[]arxiv.Paper](nil, "no academic results")
	}

	return Ok(relaxed)
}

func (a *AcademicSearcher) constrainedQuery(query string) string {
	cats := make([]string, len(chemistryCategories))
	for i, cat := range chemistryCategories {
		cats[i] = "cat:" + cat
	}
	return fmt.Sprintf("all:%q AND (%s)", query, strings.Join(cats, " OR "))
}

func NewAcademicSearcher(opts ...Option) *AcademicSearcher {
	options := NewOptions(opts...)

	if options.Arxiv == nil {
		panic("arxiv client is required")
	}

	return &AcademicSearcher{
		options: options,
	}
}
