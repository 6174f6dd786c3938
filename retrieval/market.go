package retrieval

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

const (
	marketTrendTerms = "market trends regulations emerging technology 2024 2025"
	useCaseLimit     = 180
	queryLimit       = 512
	marketMaxResults = 5
)

// MarketSearcher looks up current market context for a tag set and use case.
type MarketSearcher struct {
	options Options
}

func (m *MarketSearcher) Search(ctx context.Context, tags []string, useCase string) Outcome[string] {
	query := m.buildQuery(tags, useCase)
	if len(query) == 0 {
		return Degrade(SentinelNoMarketData, "no query terms")
	}

	results, err := m.options.Web.Search(ctx, query, marketMaxResults)
	if err != nil {
		m.options.Logger.Warn("market search failed", zap.Error(err))
		return Degrade(SentinelNoMarketData, "market search failed: "+err.Error())
	}

	if len(results) == 0 {
		return Degrade(SentinelNoMarketData, "no market results")
	}

	lines := make([]string, 0, len(results))
	for _, r := range results {
		lines = append(lines, fmt.Sprintf("%s (%s) - %s", r.Title, r.Href, r.Body))
	}

	return Ok(strings.Join(lines, "\n"))
}

// buildQuery keeps the raw memo out of the URL: the use case is whitespace
// squashed and clipped, and the whole query capped.
func (m *MarketSearcher) buildQuery(tags []string, useCase string) string {
	trimmed := strings.Join(strings.Fields(useCase), " ")
	if r := []rune(trimmed); len(r) > useCaseLimit {
		trimmed = string(r[:useCaseLimit])
	}

	parts := []string{}
	if tagsStr := strings.Join(tags, ", "); len(tagsStr) > 0 {
		parts = append(parts, tagsStr)
	}
	if len(trimmed) > 0 {
		parts = append(parts, trimmed)
	}
	if len(parts) == 0 {
		return ""
	}
	parts = append(parts, marketTrendTerms)

	query := strings.TrimSpace(strings.Join(parts, " "))
	if r := []rune(query); len(r) > queryLimit {
		query = string(r[:queryLimit])
	}

	return query
}

func NewMarketSearcher(opts ...Option) *MarketSearcher {
	options := NewOptions(opts...)

	if options.Web == nil {
		panic("web searcher is required")
	}

	return &MarketSearcher{
		options: options,
	}
}
