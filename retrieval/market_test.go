package retrieval_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/w-h-a/rdbrain/retrieval"
	"github.com/w-h-a/rdbrain/websearch"
)

func TestMarketSearchFormatsResults(t *testing.T) {
	web := &fakeSearcher{
		results: map[string][]websearch.Result{
			"": {
				{Title: "PFAS regulation tightens", Href: "https://example.com/pfas", Body: "New restrictions in the EU."},
				{Title: "EV battery materials", Href: "https://example.com/ev", Body: "Demand for heat resistant resins."},
			},
		},
	}

	market := retrieval.NewMarketSearcher(retrieval.WithWeb(web))

	outcome := market.Search(context.Background(), []string{"PA9T", "heat resistance"}, "automotive connectors")

	require.False(t, outcome.Degraded)
	lines := strings.Split(outcome.Data, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "PFAS regulation tightens (https://example.com/pfas) - New restrictions in the EU.", lines[0])

	require.Len(t, web.queries, 1)
	assert.Contains(t, web.queries[0], "PA9T, heat resistance")
	assert.Contains(t, web.queries[0], "automotive connectors")
	assert.Contains(t, web.queries[0], "market trends")
}

func TestMarketSearchClipsLongUseCase(t *testing.T) {
	web := &fakeSearcher{results: map[string][]websearch.Result{
		"": {{Title: "t", Href: "h", Body: "b"}},
	}}

	market := retrieval.NewMarketSearcher(retrieval.WithWeb(web))
	market.Search(context.Background(), nil, strings.Repeat("需要 ", 200))

	require.Len(t, web.queries, 1)
	assert.LessOrEqual(t, len([]rune(web.queries[0])), 512)
}

func TestMarketSearchDegradesWithoutQueryTerms(t *testing.T) {
	web := &fakeSearcher{}

	market := retrieval.NewMarketSearcher(retrieval.WithWeb(web))
	outcome := market.Search(context.Background(), nil, "   ")

	assert.True(t, outcome.Degraded)
	assert.Equal(t, retrieval.SentinelNoMarketData, outcome.Data)
	assert.Empty(t, web.queries)
}

func TestMarketSearchDegradesOnErrorOrEmpty(t *testing.T) {
	market := retrieval.NewMarketSearcher(retrieval.WithWeb(&fakeSearcher{err: errors.New("blocked")}))
	outcome := market.Search(context.Background(), []string{"PA9T"}, "")
	assert.True(t, outcome.Degraded)
	assert.Equal(t, retrieval.SentinelNoMarketData, outcome.Data)

	market = retrieval.NewMarketSearcher(retrieval.WithWeb(&fakeSearcher{}))
	outcome = market.Search(context.Background(), []string{"PA9T"}, "")
	assert.True(t, outcome.Degraded)
	assert.Equal(t, "no market results", outcome.Reason)
}
