package anthropic

import (
	"context"
	"errors"
	"io"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	anthropicopt "github.com/anthropics/anthropic-sdk-go/option"
	"github.com/anthropics/anthropic-sdk-go/packages/ssestream"
	"github.com/w-h-a/rdbrain/generator"
)

type anthropicGenerator struct {
	options generator.Options
	client  *anthropic.Client
}

func (g *anthropicGenerator) Generate(ctx context.Context, prompt string, opts ...generator.GenerateOption) (string, error) {
	req := g.buildRequest(prompt, generator.NewGenerateOptions(opts...))

	rsp, err := g.client.Messages.New(ctx, req)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, content := range rsp.Content {
		if text, ok := content.AsAny().(anthropic.TextBlock); ok {
			b.WriteString(text.Text)
		}
	}

	result := b.String()
	if len(result) == 0 {
		return "", errors.New("no response from Anthropic")
	}

	return result, nil
}

func (g *anthropicGenerator) Stream(ctx context.Context, prompt string, opts ...generator.GenerateOption) (generator.Stream, error) {
	req := g.buildRequest(prompt, generator.NewGenerateOptions(opts...))

	stream := g.client.Messages.NewStreaming(ctx, req)
	if err := stream.Err(); err != nil {
		return nil, err
	}

	return &anthropicStream{stream: stream}, nil
}

func (g *anthropicGenerator) buildRequest(prompt string, options generator.GenerateOptions) anthropic.MessageNewParams {
	fullPrompt := prompt
	if len(g.options.PromptPrefix) > 0 {
		fullPrompt = g.options.PromptPrefix + "\n" + prompt
	}

	req := anthropic.MessageNewParams{
		Model:       anthropic.Model(g.options.Model),
		MaxTokens:   int64(options.MaxTokens),
		Temperature: anthropic.Float(float64(options.Temperature)),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(fullPrompt)),
		},
	}

	if len(options.SystemPrompt) > 0 {
		req.System = []anthropic.TextBlockParam{
			{Text: options.SystemPrompt},
		}
	}

	return req
}

type anthropicStream struct {
	stream *ssestream.Stream[anthropic.MessageStreamEventUnion]
}

func (s *anthropicStream) Recv() (string, error) {
	for s.stream.Next() {
		event := s.stream.Current()
		delta, ok := event.AsAny().(anthropic.ContentBlockDeltaEvent)
		if !ok {
			continue
		}
		if text, ok := delta.Delta.AsAny().(anthropic.TextDelta); ok && len(text.Text) > 0 {
			return text.Text, nil
		}
	}

	if err := s.stream.Err(); err != nil {
		return "", err
	}

	return "", io.EOF
}

func (s *anthropicStream) Close() error {
	return s.stream.Close()
}

func NewGenerator(opts ...generator.Option) generator.Generator {
	options := generator.NewOptions(opts...)

	g := &anthropicGenerator{
		options: options,
	}

	client := anthropic.NewClient(
		anthropicopt.WithAPIKey(options.ApiKey),
	)

	g.client = &client

	return g
}
