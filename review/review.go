package review

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/w-h-a/rdbrain/generator"
	"go.uber.org/zap"
)

// Result is the structured verdict of the intake gate.
type Result struct {
	IsSufficient bool     `json:"is_sufficient"`
	Questions    []string `json:"questions"`
	Summary      string   `json:"summary,omitempty"`
	TechTags     []string `json:"tech_tags"`
}

const reviewPrompt = `You are an R&D specialist at a chemical manufacturer.
Evaluate the interview memo below. It is sufficient only if it contains concrete chemical needs: temperature conditions, strength or other physical properties, resistance requirements, or other specific figures and specs.

Respond with JSON only, matching exactly:
{"is_sufficient": bool, "questions": [string], "summary": string, "tech_tags": [string]}

If sufficient: set is_sufficient true and provide summary plus tech_tags (material names, applications, properties, technology areas).
If insufficient: set is_sufficient false and provide questions the sales rep should ask next.

Interview memo:
%s`

// Reviewer gates free-text interview notes before they are embedded.
type Reviewer struct {
	options Options
}

// Review evaluates one memo. A model failure is an error (nothing can be
// generated at all); a malformed model response degrades to an insufficient
// verdict asking for a retry.
func (r *Reviewer) Review(ctx context.Context, content string) (Result, error) {
	rsp, err := r.options.Generator.Generate(
		ctx,
		fmt.Sprintf(reviewPrompt, content),
		generator.WithTemperature(0.3),
	)
	if err != nil {
		return Result{}, fmt.Errorf("review: %w", err)
	}

	result, err := parseResult(rsp)
	if err != nil {
		r.options.Logger.Warn("review response did not parse", zap.Error(err))
		return Result{
			IsSufficient: false,
			Questions:    []string{"The review could not be parsed. Please try again."},
		}, nil
	}

	return result, nil
}

func parseResult(rsp string) (Result, error) {
	cleaned := strings.TrimSpace(rsp)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var result Result
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return Result{}, err
	}

	return result, nil
}

func NewReviewer(opts ...Option) *Reviewer {
	options := NewOptions(opts...)

	if options.Generator == nil {
		panic("generator is required")
	}

	return &Reviewer{
		options: options,
	}
}
