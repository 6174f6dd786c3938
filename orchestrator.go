package rdbrain

import (
	"context"
	"fmt"
	"strings"

	"github.com/w-h-a/rdbrain/generator"
	"github.com/w-h-a/rdbrain/store"
	getsafe "github.com/w-h-a/rdbrain/util/get_safe"
)

// orchestratorBrief writes the one-paragraph kickoff message.
func (s *Squad) orchestratorBrief(ctx context.Context, memo string) (string, error) {
	prompt := fmt.Sprintf(orchestratorBriefPrompt, memo)

	brief, err := s.options.Generator.Generate(ctx, prompt, generator.WithTemperature(0.5))
	if err != nil {
		return "", fmt.Errorf("orchestrator brief: %w", err)
	}

	brief = strings.TrimSpace(brief)
	if len(brief) == 0 {
		brief = briefFallback
	}

	return brief, nil
}

// orchestratorSummary compiles the final five-section Markdown report from
// every intermediate artifact. It is the last generator call of a run.
func (s *Squad) orchestratorSummary(ctx context.Context, proposal, marketData, internalData, memo string, tags []string, companyName string) (string, error) {
	prompt := fmt.Sprintf(reportHumanPrompt,
		companyName,
		memo,
		strings.Join(tags, ", "),
		internalData,
		marketData,
	)

	// The proposal rides along as its own block so the model treats it as the
	// primary input to the Proposal section.
	prompt += "\n\n[Revised Proposal]\n" + proposal

	report, err := s.options.Generator.Generate(
		ctx,
		prompt,
		generator.WithTemperature(0.5),
		generator.WithSystemPrompt(reportSystemPrompt),
	)
	if err != nil {
		return "", fmt.Errorf("orchestrator summary: %w", err)
	}

	return strings.TrimSpace(report), nil
}

// formatCrossLinks renders internal hits for the report prompt with relevance
// percentages, one numbered block per hit.
func formatCrossLinks(hits []store.Hit) string {
	if len(hits) == 0 {
		return "No similar knowledge found in other departments."
	}

	var b strings.Builder
	for i, hit := range hits {
		content := hit.Content
		if r := []rune(content); len(r) > internalContentClip {
			content = string(r[:internalContentClip]) + "..."
		}

		fmt.Fprintf(&b, "%d. **%s** (%s)\n   - Contact: %s\n   - Relevance: %.2f%%\n   - Summary: %s\n",
			i+1,
			getsafe.StringOr(hit.Metadata, store.MetadataCompanyName, "Unknown"),
			getsafe.StringOr(hit.Metadata, store.MetadataDepartment, "Unknown"),
			getsafe.StringOr(hit.Metadata, store.MetadataContactInfo, "Unknown"),
			hit.Similarity*100,
			content,
		)
	}

	return b.String()
}
