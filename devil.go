package rdbrain

import (
	"context"
	"fmt"
	"strings"

	"github.com/w-h-a/rdbrain/generator"
)

// devilsAdvocate critiques a proposal from the internal reviewer's seat,
// streaming its output. Called exactly once per run, on the draft proposal.
func (s *Squad) devilsAdvocate(ctx context.Context, proposal string) (string, error) {
	prompt := fmt.Sprintf(devilPrompt, proposal)

	stream, err := s.options.Generator.Stream(ctx, prompt, generator.WithTemperature(0.3))
	if err != nil {
		return "", fmt.Errorf("devils advocate: %w", err)
	}

	text, err := generator.Drain(stream, s.chunkObserver(RoleDevilsAdvocate))
	if err != nil {
		return "", fmt.Errorf("devils advocate: %w", err)
	}

	return strings.TrimSpace(text), nil
}
