package retrieval_test

import (
	"context"

	"github.com/w-h-a/rdbrain/arxiv"
	"github.com/w-h-a/rdbrain/store"
	"github.com/w-h-a/rdbrain/websearch"
)

type fakeEmbedder struct {
	vec []float32
	err error
}

func (f *fakeEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	return f.vec, f.err
}

type fakeStore struct {
	hits []store.Hit
	err  error
}

func (f *fakeStore) Save(ctx context.Context, rec store.Record) error {
	return nil
}

func (f *fakeStore) Search(ctx context.Context, vector []float32, limit int) ([]store.Hit, error) {
	return f.hits, f.err
}

type fakeSearcher struct {
	results map[string][]websearch.Result
	queries []string
	err     error
}

func (f *fakeSearcher) Search(ctx context.Context, query string, maxResults int) ([]websearch.Result, error) {
	f.queries = append(f.queries, query)
	if f.err != nil {
		return nil, f.err
	}
	if rs, ok := f.results[query]; ok {
		return rs, nil
	}
	return f.results[""], nil
}

type fakeArxiv struct {
	byQuery map[string][]arxiv.Paper
	queries []string
	err     error
}

func (f *fakeArxiv) Search(ctx context.Context, query string, maxResults int) ([]arxiv.Paper, error) {
	f.queries = append(f.queries, query)
	if f.err != nil {
		return nil, f.err
	}
	if ps, ok := f.byQuery[query]; ok {
		return ps, nil
	}
	return f.byQuery[""], nil
}
