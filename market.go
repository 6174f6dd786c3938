package rdbrain

import (
	"context"
	"fmt"
	"strings"

	"github.com/w-h-a/rdbrain/arxiv"
	"github.com/w-h-a/rdbrain/generator"
	"github.com/w-h-a/rdbrain/retrieval"
	"go.uber.org/zap"
)

const (
	maxImportantTags   = 5
	patentMaxResults   = 5
	academicMaxResults = 5
)

// marketResearch gathers market, patent and academic context for the tag set
// and condenses it into a fact-only brief. Retrieval failures degrade to the
// static fallback corpus; only generator failure is fatal.
func (s *Squad) marketResearch(ctx context.Context, tags []string, memo string) (string, []arxiv.Paper, error) {
	selected := s.SelectImportantTags(ctx, tags, memo, maxImportantTags)

	market := s.options.Market.Search(ctx, selected, memo)
	patents := s.options.Patents.Search(ctx, selected, patentMaxResults)
	academic := s.options.Academic.Search(ctx, strings.Join(selected, " "), academicMaxResults, true)

	marketText := market.Data
	patentText := patents.Data
	academicText := formatPapers(academic.Data)

	// An empty or sentinel market result swaps in the static corpus; live
	// patent and academic data stay in play regardless.
	if allEmpty(marketText, patentText, academicText) || marketText == retrieval.SentinelNoMarketData {
		s.options.Logger.Info("live market data unavailable, using fallback corpus",
			zap.Bool("market_degraded", market.Degraded),
			zap.String("reason", market.Reason),
		)
		marketText = fallbackMarketContext
	}

	prompt := fmt.Sprintf(marketSummaryPrompt, marketText, patentText, academicText)

	summary, err := s.options.Generator.Generate(ctx, prompt, generator.WithTemperature(0.3))
	if err != nil {
		return "", nil, fmt.Errorf("market research summary: %w", err)
	}

	return strings.TrimSpace(summary), academic.Data, nil
}

func formatPapers(papers []arxiv.Paper) string {
	if len(papers) == 0 {
		return ""
	}

	lines := make([]string, 0, len(papers))
	for _, p := range papers {
		lines = append(lines, fmt.Sprintf("Title: %s\nAuthors: %s\nPublished: %s\nLink: %s\nSummary: %s\n",
			p.Title,
			strings.Join(p.Authors, ", "),
			p.Published.Format("2006-01-02"),
			p.Link,
			p.Summary,
		))
	}

	return strings.Join(lines, "\n")
}

func allEmpty(texts ...string) bool {
	for _, t := range texts {
		if len(strings.TrimSpace(t)) > 0 && t != retrieval.SentinelNoMarketData && t != retrieval.SentinelNoPatentData {
			return false
		}
	}
	return true
}
