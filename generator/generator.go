package generator

import "context"

type Generator interface {
	Generate(ctx context.Context, prompt string, opts ...GenerateOption) (string, error)
	Stream(ctx context.Context, prompt string, opts ...GenerateOption) (Stream, error)
}

// Stream yields text deltas in arrival order. Recv returns io.EOF once the
// underlying stream is exhausted.
type Stream interface {
	Recv() (string, error)
	Close() error
}
