package rdbrain

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/w-h-a/rdbrain/generator"
	"go.uber.org/zap"
)

const tagContextLimit = 500

// SelectImportantTags reduces a tag list to the maxTags highest-signal tags.
// Small lists pass through untouched; the model-ranked path validates every
// returned tag against the input set and falls back to deterministic first-N
// truncation on any failure. It never returns an error.
func (s *Squad) SelectImportantTags(ctx context.Context, tags []string, memo string, maxTags int) []string {
	if len(tags) == 0 {
		return nil
	}

	if len(tags) <= maxTags {
		return tags
	}

	selected, err := s.rankTags(ctx, tags, memo, maxTags)
	if err != nil {
		s.options.Logger.Warn("tag ranking failed, falling back to first-n truncation", zap.Error(err))
		return tags[:maxTags]
	}

	if len(selected) < maxTags {
		s.options.Logger.Warn("tag ranking returned too few valid tags, falling back to first-n truncation",
			zap.Int("selected", len(selected)),
			zap.Int("want", maxTags),
		)
		return tags[:maxTags]
	}

	return selected[:maxTags]
}

func (s *Squad) rankTags(ctx context.Context, tags []string, memo string, maxTags int) ([]string, error) {
	memoContext := ""
	if trimmed := strings.TrimSpace(memo); len(trimmed) > 0 {
		if r := []rune(trimmed); len(r) > tagContextLimit {
			trimmed = string(r[:tagContextLimit])
		}
		memoContext = "\nInterview memo summary: " + trimmed + "\n"
	}

	prompt := fmt.Sprintf(tagSelectionPrompt, maxTags, strings.Join(tags, ", "), memoContext, maxTags)

	rsp, err := s.options.Generator.Generate(ctx, prompt, generator.WithTemperature(0.3))
	if err != nil {
		return nil, err
	}

	return parseTagList(rsp, tags), nil
}

// parseTagList pulls tags out of a numbered or bulleted list, keeping only
// members of the original set to defend against hallucinated tags.
func parseTagList(response string, tags []string) []string {
	valid := make(map[string]bool, len(tags))
	for _, tag := range tags {
		valid[tag] = true
	}

	var selected []string
	seen := map[string]bool{}

	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		if len(line) == 0 || !isListLine(line) {
			continue
		}

		tag := stripListMarker(line)
		if len(tag) == 0 || !valid[tag] || seen[tag] {
			continue
		}

		seen[tag] = true
		selected = append(selected, tag)
	}

	return selected
}

func isListLine(line string) bool {
	r := []rune(line)[0]
	return unicode.IsDigit(r) || r == '-' || r == '*' || r == '・'
}

func stripListMarker(line string) string {
	if i := strings.IndexAny(line, ".)"); i >= 0 && i < 4 {
		line = line[i+1:]
	}
	return strings.Trim(line, "・-* \t")
}
