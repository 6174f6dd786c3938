package openai

import (
	"context"
	"errors"
	"io"

	"github.com/sashabaranov/go-openai"
	"github.com/w-h-a/rdbrain/generator"
)

type openAIGenerator struct {
	options generator.Options
	client  *openai.Client
}

func (g *openAIGenerator) Generate(ctx context.Context, prompt string, opts ...generator.GenerateOption) (string, error) {
	req := g.buildRequest(prompt, generator.NewGenerateOptions(opts...), false)

	rsp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", err
	}

	if len(rsp.Choices) == 0 || len(rsp.Choices[0].Message.Content) == 0 {
		return "", errors.New("no response from OpenAI")
	}

	return rsp.Choices[0].Message.Content, nil
}

func (g *openAIGenerator) Stream(ctx context.Context, prompt string, opts ...generator.GenerateOption) (generator.Stream, error) {
	req := g.buildRequest(prompt, generator.NewGenerateOptions(opts...), true)

	stream, err := g.client.CreateChatCompletionStream(ctx, req)
	if err != nil {
		return nil, err
	}

	return &openAIStream{stream: stream}, nil
}

func (g *openAIGenerator) buildRequest(prompt string, options generator.GenerateOptions, stream bool) openai.ChatCompletionRequest {
	fullPrompt := prompt
	if len(g.options.PromptPrefix) > 0 {
		fullPrompt = g.options.PromptPrefix + "\n" + prompt
	}

	var messages []openai.ChatCompletionMessage
	if len(options.SystemPrompt) > 0 {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: options.SystemPrompt,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: fullPrompt,
	})

	return openai.ChatCompletionRequest{
		Model:       g.options.Model,
		Messages:    messages,
		Temperature: options.Temperature,
		MaxTokens:   options.MaxTokens,
		Stream:      stream,
	}
}

type openAIStream struct {
	stream *openai.ChatCompletionStream
}

func (s *openAIStream) Recv() (string, error) {
	for {
		rsp, err := s.stream.Recv()
		if err != nil {
			return "", err
		}
		if len(rsp.Choices) == 0 {
			continue
		}
		if delta := rsp.Choices[0].Delta.Content; len(delta) > 0 {
			return delta, nil
		}
		if rsp.Choices[0].FinishReason != "" {
			return "", io.EOF
		}
	}
}

func (s *openAIStream) Close() error {
	return s.stream.Close()
}

func NewGenerator(opts ...generator.Option) generator.Generator {
	options := generator.NewOptions(opts...)

	g := &openAIGenerator{
		options: options,
	}

	client := openai.NewClient(options.ApiKey)

	g.client = client

	return g
}
