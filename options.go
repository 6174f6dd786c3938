package rdbrain

import (
	"context"

	"github.com/w-h-a/rdbrain/arxiv"
	"github.com/w-h-a/rdbrain/generator"
	"github.com/w-h-a/rdbrain/retrieval"
	"github.com/w-h-a/rdbrain/store"
	"go.uber.org/zap"
)

// The squad depends on narrow interfaces so adapters can be faked in tests;
// the retrieval package's concrete searchers satisfy them.
type (
	CrossPollinator interface {
		Search(ctx context.Context, queryText string, excludeDepartment string, topK int) retrieval.Outcome[[]store.Hit]
	}

	PatentSearcher interface {
		Search(ctx context.Context, tags []string, maxResults int) retrieval.Outcome[string]
	}

	AcademicSearcher interface {
		Search(ctx context.Context, query string, maxResults int, domainFilter bool) retrieval.Outcome[[]arxiv.Paper]
	}

	MarketSearcher interface {
		Search(ctx context.Context, tags []string, useCase string) retrieval.Outcome[string]
	}
)

// ChunkFunc observes streamed deltas from the streaming agents as they arrive.
type ChunkFunc func(agent Role, chunk string)

type Option func(*Options)

type Options struct {
	Generator        generator.Generator
	CrossPollination CrossPollinator
	Patents          PatentSearcher
	Academic         AcademicSearcher
	Market           MarketSearcher
	OnChunk          ChunkFunc
	Logger           *zap.Logger
	Context          context.Context
}

func WithGenerator(g generator.Generator) Option {
	return func(o *Options) {
		o.Generator = g
	}
}

func WithCrossPollination(c CrossPollinator) Option {
	return func(o *Options) {
		o.CrossPollination = c
	}
}

func WithPatents(p PatentSearcher) Option {
	return func(o *Options) {
		o.Patents = p
	}
}

func WithAcademic(a AcademicSearcher) Option {
	return func(o *Options) {
		o.Academic = a
	}
}

func WithMarket(m MarketSearcher) Option {
	return func(o *Options) {
		o.Market = m
	}
}

func WithOnChunk(f ChunkFunc) Option {
	return func(o *Options) {
		o.OnChunk = f
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
