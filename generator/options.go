package generator

import "context"

type Option func(*Options)

type Options struct {
	ApiKey       string
	Model        string
	PromptPrefix string
	Context      context.Context
}

func WithApiKey(apiKey string) Option {
	return func(o *Options) {
		o.ApiKey = apiKey
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

func WithPromptPrefix(prefix string) Option {
	return func(o *Options) {
		o.PromptPrefix = prefix
	}
}

func NewOptions(opts ...Option) Options {
	options := Options{
		Context: context.Background(),
	}
	for _, opt := range opts {
		opt(&options)
	}
	return options
}

type GenerateOption func(*GenerateOptions)

type GenerateOptions struct {
	Temperature  float32
	SystemPrompt string
	MaxTokens    int
	Context      context.Context
}

func WithTemperature(temperature float32) GenerateOption {
	return func(o *GenerateOptions) {
		o.Temperature = temperature
	}
}

func WithSystemPrompt(prompt string) GenerateOption {
	return func(o *GenerateOptions) {
		o.SystemPrompt = prompt
	}
}

func WithMaxTokens(maxTokens int) GenerateOption {
	return func(o *GenerateOptions) {
		o.MaxTokens = maxTokens
	}
}

func NewGenerateOptions(opts ...GenerateOption) GenerateOptions {
	options := GenerateOptions{
		Temperature: 0.3,
		MaxTokens:   4096,
		Context:     context.Background(),
	}
	for _, opt := range opts {
		opt(&options)
	}
	return options
}
