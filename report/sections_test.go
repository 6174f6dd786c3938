package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/w-h-a/rdbrain/report"
)

const sampleReport = `## Trigger
Acme Auto needs a 150C connector resin.

## Chemical Insight
Hydrolysis at the amide bond under long-term heat.

## Cross-Link
Sales B sold a barrier film with related chemistry.

## Market Trend
PFAS substitution pressure favors polyamides.

## Proposal
Glass-filled PA9T with an impact modifier.`

func TestParseSectionsSplitsOnHeadings(t *testing.T) {
	sections := report.ParseSections(sampleReport)

	require.Len(t, sections, 5)
	assert.Equal(t, "Trigger", sections[0].Title)
	assert.Equal(t, "Acme Auto needs a 150C connector resin.", sections[0].Body)
	assert.Equal(t, "Proposal", sections[4].Title)
	assert.Equal(t, "Glass-filled PA9T with an impact modifier.", sections[4].Body)
}

func TestParseSectionsKeepsPreamble(t *testing.T) {
	sections := report.ParseSections("Intro line.\n\n## Trigger\nBody.")

	require.Len(t, sections, 2)
	assert.Empty(t, sections[0].Title)
	assert.Equal(t, "Intro line.", sections[0].Body)
	assert.Equal(t, "Trigger", sections[1].Title)
}

func TestParseSectionsIgnoresDeeperHeadings(t *testing.T) {
	sections := report.ParseSections("## Trigger\n### Detail\nBody.")

	require.Len(t, sections, 1)
	assert.Equal(t, "### Detail\nBody.", sections[0].Body)
}

func TestParseSectionsCleansBoldHeadings(t *testing.T) {
	sections := report.ParseSections("## **Trigger**\nBody.")

	require.Len(t, sections, 1)
	assert.Equal(t, "Trigger", sections[0].Title)
}

func TestHeadingsReturnsTitlesInOrder(t *testing.T) {
	assert.Equal(t,
		[]string{"Trigger", "Chemical Insight", "Cross-Link", "Market Trend", "Proposal"},
		report.Headings(sampleReport),
	)
}

func TestHeadingsEmptyDocument(t *testing.T) {
	assert.Empty(t, report.Headings(""))
}
