package google

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/w-h-a/rdbrain/generator"
	"google.golang.org/api/iterator"
	genaiopt "google.golang.org/api/option"
)

type googleGenerator struct {
	options generator.Options
	client  *genai.Client
}

func (g *googleGenerator) Generate(ctx context.Context, prompt string, opts ...generator.GenerateOption) (string, error) {
	model, fullPrompt := g.buildModel(prompt, generator.NewGenerateOptions(opts...))

	rsp, err := model.GenerateContent(ctx, genai.Text(fullPrompt))
	if err != nil {
		return "", err
	}

	if len(rsp.Candidates) == 0 || rsp.Candidates[0].Content == nil || len(rsp.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("no response from Google")
	}

	var b strings.Builder
	for _, part := range rsp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}

	return b.String(), nil
}

func (g *googleGenerator) Stream(ctx context.Context, prompt string, opts ...generator.GenerateOption) (generator.Stream, error) {
	model, fullPrompt := g.buildModel(prompt, generator.NewGenerateOptions(opts...))

	iter := model.GenerateContentStream(ctx, genai.Text(fullPrompt))

	return &googleStream{iter: iter}, nil
}

func (g *googleGenerator) buildModel(prompt string, options generator.GenerateOptions) (*genai.GenerativeModel, string) {
	fullPrompt := prompt
	if len(g.options.PromptPrefix) > 0 {
		fullPrompt = g.options.PromptPrefix + "\n" + prompt
	}

	model := g.client.GenerativeModel(g.options.Model)
	model.SetTemperature(options.Temperature)
	model.SetMaxOutputTokens(int32(options.MaxTokens))

	if len(options.SystemPrompt) > 0 {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(options.SystemPrompt)},
		}
	}

	return model, fullPrompt
}

type googleStream struct {
	iter *genai.GenerateContentResponseIterator
}

func (s *googleStream) Recv() (string, error) {
	for {
		rsp, err := s.iter.Next()
		if errors.Is(err, iterator.Done) {
			return "", io.EOF
		}
		if err != nil {
			return "", err
		}

		if len(rsp.Candidates) == 0 || rsp.Candidates[0].Content == nil {
			continue
		}

		var b strings.Builder
		for _, part := range rsp.Candidates[0].Content.Parts {
			if text, ok := part.(genai.Text); ok {
				b.WriteString(string(text))
			}
		}

		if b.Len() > 0 {
			return b.String(), nil
		}
	}
}

func (s *googleStream) Close() error {
	return nil
}

func NewGenerator(opts ...generator.Option) generator.Generator {
	options := generator.NewOptions(opts...)

	g := &googleGenerator{
		options: options,
	}

	client, err := genai.NewClient(
		options.Context,
		genaiopt.WithAPIKey(options.ApiKey),
	)
	if err != nil {
		panic(err)
	}

	g.client = client

	return g
}
