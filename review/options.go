package review

import (
	"context"

	"github.com/w-h-a/rdbrain/generator"
	"go.uber.org/zap"
)

type Option func(*Options)

type Options struct {
	Generator generator.Generator
	Logger    *zap.Logger
	Context   context.Context
}

func WithGenerator(g generator.Generator) Option {
	return func(o *Options) {
		o.Generator = g
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

func NewOptions(opts ...Option) Options {
	options := Options{
		Logger:  zap.NewNop(),
		Context: context.Background(),
	}
	for _, opt := range opts {
		opt(&options)
	}
	return options
}
