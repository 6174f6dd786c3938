package rdbrain_test

import (
	"context"
	"io"
	"strings"
	"sync"

	"github.com/w-h-a/rdbrain"
	"github.com/w-h-a/rdbrain/arxiv"
	"github.com/w-h-a/rdbrain/generator"
	"github.com/w-h-a/rdbrain/retrieval"
	"github.com/w-h-a/rdbrain/store"
)

// fakeGenerator scripts model output by prompt content and records every
// prompt it saw, for both the blocking and streaming paths.
type fakeGenerator struct {
	mtx     sync.Mutex
	respond func(prompt string) (string, error)

	prompts       []string
	streamPrompts []string
}

func (f *fakeGenerator) reply(prompt string) (string, error) {
	if f.respond != nil {
		return f.respond(prompt)
	}
	return "ok", nil
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string, opts ...generator.GenerateOption) (string, error) {
	f.mtx.Lock()
	f.prompts = append(f.prompts, prompt)
	f.mtx.Unlock()

	return f.reply(prompt)
}

func (f *fakeGenerator) Stream(ctx context.Context, prompt string, opts ...generator.GenerateOption) (generator.Stream, error) {
	f.mtx.Lock()
	f.streamPrompts = append(f.streamPrompts, prompt)
	f.mtx.Unlock()

	text, err := f.reply(prompt)
	if err != nil {
		return nil, err
	}

	return &fakeStream{chunks: chunked(text, 7)}, nil
}

func (f *fakeGenerator) allPrompts() []string {
	f.mtx.Lock()
	defer f.mtx.Unlock()

	all := make([]string, 0, len(f.prompts)+len(f.streamPrompts))
	all = append(all, f.prompts...)
	all = append(all, f.streamPrompts...)
	return all
}

type fakeStream struct {
	chunks []string
	next   int
}

func (s *fakeStream) Recv() (string, error) {
	if s.next >= len(s.chunks) {
		return "", io.EOF
	}
	chunk := s.chunks[s.next]
	s.next++
	return chunk, nil
}

func (s *fakeStream) Close() error {
	return nil
}

func chunked(text string, size int) []string {
	runes := []rune(text)
	var chunks []string
	for len(runes) > 0 {
		n := size
		if n > len(runes) {
			n = len(runes)
		}
		chunks = append(chunks, string(runes[:n]))
		runes = runes[n:]
	}
	return chunks
}

type fakeCross struct {
	outcome retrieval.Outcome[[]store.Hit]
}

func (f *fakeCross) Search(ctx context.Context, queryText string, excludeDepartment string, topK int) retrieval.Outcome[[]store.Hit] {
	return f.outcome
}

type fakePatents struct {
	outcome retrieval.Outcome[string]
}

func (f *fakePatents) Search(ctx context.Context, tags []string, maxResults int) retrieval.Outcome[string] {
	return f.outcome
}

type fakeAcademic struct {
	outcome retrieval.Outcome[[]arxiv.Paper]
}

func (f *fakeAcademic) Search(ctx context.Context, query string, maxResults int, domainFilter bool) retrieval.Outcome[[]arxiv.Paper] {
	return f.outcome
}

type fakeMarket struct {
	outcome retrieval.Outcome[string]
}

func (f *fakeMarket) Search(ctx context.Context, tags []string, useCase string) retrieval.Outcome[string] {
	return f.outcome
}

// newTestSquad wires a squad whose adapters return healthy data by default.
func newTestSquad(gen *fakeGenerator, opts ...rdbrain.Option) *rdbrain.Squad {
	base := []rdbrain.Option{
		rdbrain.WithGenerator(gen),
		rdbrain.WithCrossPollination(&fakeCross{outcome: retrieval.Ok([]store.Hit{
			{
				Id:      "hit-1",
				Content: "Gas barrier film for food packaging using EVOH coextrusion.",
				Metadata: map[string]any{
					store.MetadataCompanyName: "Food Films Inc",
					store.MetadataDepartment:  "Sales B",
					store.MetadataContactInfo: "films@example.com",
				},
				Similarity: 0.82,
			},
		})}),
		rdbrain.WithPatents(&fakePatents{outcome: retrieval.Ok("Title: Patent A\nURL: https://patents.google.com/patent/A")}),
		rdbrain.WithAcademic(&fakeAcademic{outcome: retrieval.Ok([]arxiv.Paper{
			{Title: "Polyamide crystallinity", Summary: "semi-aromatic polymer study", Link: "https://arxiv.org/abs/1"},
		})}),
		rdbrain.WithMarket(&fakeMarket{outcome: retrieval.Ok("PFAS regulation tightens (https://example.com) - EU update")}),
	}

	return rdbrain.New(append(base, opts...)...)
}

func degradedSquad(gen *fakeGenerator, opts ...rdbrain.Option) *rdbrain.Squad {
	base := []rdbrain.Option{
		rdbrain.WithGenerator(gen),
		rdbrain.WithCrossPollination(&fakeCross{outcome: retrieval.Degrade[[]store.Hit](nil, "store down")}),
		rdbrain.WithPatents(&fakePatents{outcome: retrieval.Degrade(retrieval.SentinelNoPatentData, "no patent results")}),
		rdbrain.WithAcademic(&fakeAcademic{outcome: retrieval.Degrade[[]arxiv.Paper](nil, "no academic results")}),
		rdbrain.WithMarket(&fakeMarket{outcome: retrieval.Degrade(retrieval.SentinelNoMarketData, "no market results")}),
	}

	return rdbrain.New(append(base, opts...)...)
}

func promptsContaining(prompts []string, sub string) []string {
	var matched []string
	for _, p := range prompts {
		if strings.Contains(p, sub) {
			matched = append(matched, p)
		}
	}
	return matched
}
