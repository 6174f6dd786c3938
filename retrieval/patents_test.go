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

func TestPatentSearchMergesAndDeduplicates(t *testing.T) {
	shared := websearch.Result{Title: "Heat resistant polyamide", Href: "https://patents.google.com/patent/X1", Body: "PA9T composition"}

	web := &fakeSearcher{
		results: map[string][]websearch.Result{
			"site:patents.google.com PA9T 2024 2025": {shared},
			"site:patents.google.com 耐熱性樹脂 2024 2025": {
				shared,
				{Title: "樹脂組成物", Href: "https://patents.google.com/patent/X2", Body: "耐熱性"},
			},
		},
	}

	patents := retrieval.NewPatentSearcher(retrieval.WithWeb(web))

	outcome := patents.Search(context.Background(), []string{"PA9T", "耐熱性樹脂"}, 5)

	require.False(t, outcome.Degraded)
	assert.Contains(t, outcome.Data, "https://patents.google.com/patent/X1")
	assert.Contains(t, outcome.Data, "https://patents.google.com/patent/X2")
	// The shared hit appears once despite coming back from two queries.
	assert.Equal(t, 1, strings.Count(outcome.Data, "https://patents.google.com/patent/X1"))
}

func TestPatentSearchFansOutMixedScriptKeywords(t *testing.T) {
	web := &fakeSearcher{results: map[string][]websearch.Result{}}

	patents := retrieval.NewPatentSearcher(retrieval.WithWeb(web))
	patents.Search(context.Background(), []string{"PA9T", "耐熱性樹脂"}, 5)

	require.NotEmpty(t, web.queries)
	assert.Equal(t, "site:patents.google.com PA9T 2024 2025", web.queries[0])
	assert.Contains(t, web.queries, "site:patents.google.com 耐熱性樹脂 2024 2025")
}

func TestPatentSearchSingleScriptIssuesOneQuery(t *testing.T) {
	web := &fakeSearcher{results: map[string][]websearch.Result{}}

	patents := retrieval.NewPatentSearcher(retrieval.WithWeb(web))
	patents.Search(context.Background(), []string{"polyamide", "membrane"}, 5)

	assert.Equal(t, []string{"site:patents.google.com polyamide membrane 2024 2025"}, web.queries)
}

func TestPatentSearchDegradesWhenEmpty(t *testing.T) {
	patents := retrieval.NewPatentSearcher(retrieval.WithWeb(&fakeSearcher{}))

	outcome := patents.Search(context.Background(), []string{"polyamide"}, 5)

	assert.True(t, outcome.Degraded)
	assert.Equal(t, retrieval.SentinelNoPatentData, outcome.Data)
}

func TestPatentSearchDegradesWithoutKeywords(t *testing.T) {
	patents := retrieval.NewPatentSearcher(retrieval.WithWeb(&fakeSearcher{}))

	outcome := patents.Search(context.Background(), nil, 5)

	assert.True(t, outcome.Degraded)
	assert.Equal(t, retrieval.SentinelNoPatentData, outcome.Data)
	assert.Equal(t, "no keywords", outcome.Reason)
}

func TestPatentSearchSurvivesSearcherErrors(t *testing.T) {
	patents := retrieval.NewPatentSearcher(retrieval.WithWeb(&fakeSearcher{err: errors.New("rate limited")}))

	outcome := patents.Search(context.Background(), []string{"polyamide"}, 5)

	assert.True(t, outcome.Degraded)
	assert.Equal(t, retrieval.SentinelNoPatentData, outcome.Data)
}
