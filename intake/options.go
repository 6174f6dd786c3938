package intake

import (
	"context"

	"github.com/w-h-a/rdbrain/embedder"
	"github.com/w-h-a/rdbrain/store"
	"go.uber.org/zap"
)

type Option func(*Options)

type Options struct {
	Embedder embedder.Embedder
	Store    store.Store
	Logger   *zap.Logger
	Context  context.Context
}

func WithEmbedder(e embedder.Embedder) Option {
	return func(o *Options) {
		o.Embedder = e
	}
}

func WithStore(s store.Store) Option {
	return func(o *Options) {
		o.Store = s
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
