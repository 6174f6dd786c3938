package retrieval

import (
	"context"

	"github.com/w-h-a/rdbrain/arxiv"
	"github.com/w-h-a/rdbrain/embedder"
	"github.com/w-h-a/rdbrain/store"
	"github.com/w-h-a/rdbrain/websearch"
	"go.uber.org/zap"
)

// ArxivClient is the slice of the arxiv client the academic adapter needs.
type ArxivClient interface {
	Search(ctx context.Context, query string, maxResults int) ([]arxiv.Paper, error)
}

type Option func(*Options)

type Options struct {
	Embedder embedder.Embedder
	Store    store.Store
	Web      websearch.Searcher
	Arxiv    ArxivClient
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

func WithWeb(w websearch.Searcher) Option {
	return func(o *Options) {
		o.Web = w
	}
}

func WithArxiv(a ArxivClient) Option {
	return func(o *Options) {
		o.Arxiv = a
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
