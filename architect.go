package rdbrain

import (
	"context"
	"fmt"
	"strings"

	"github.com/w-h-a/rdbrain/generator"
)

// solutionArchitect produces a proposal from interview, market and internal
// data. A non-empty feedback turns the call into the revision pass, which must
// address every criticism. Output streams; the accumulated text is returned
// only after the stream is exhausted.
func (s *Squad) solutionArchitect(ctx context.Context, marketData, internalData, memo, feedback string) (string, error) {
	feedbackText := feedback
	if len(strings.TrimSpace(feedbackText)) == 0 {
		feedbackText = "None"
	}

	prompt := fmt.Sprintf(architectPrompt, internalData, marketData, memo, feedbackText)

	stream, err := s.options.Generator.Stream(ctx, prompt, generator.WithTemperature(0.9))
	if err != nil {
		return "", fmt.Errorf("solution architect: %w", err)
	}

	text, err := generator.Drain(stream, s.chunkObserver(RoleSolutionArchitect))
	if err != nil {
		return "", fmt.Errorf("solution architect: %w", err)
	}

	return strings.TrimSpace(text), nil
}

func (s *Squad) chunkObserver(agent Role) func(string) {
	if s.options.OnChunk == nil {
		return nil
	}
	return func(chunk string) {
		s.options.OnChunk(agent, chunk)
	}
}
