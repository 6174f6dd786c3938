package store

import "context"

// Store is the document store consumed by the pipeline: a vector similarity
// index over embedded interview notes with free-form metadata. The pipeline
// only reads; writes belong to the intake flow.
type Store interface {
	Save(ctx context.Context, rec Record) error
	Search(ctx context.Context, vector []float32, limit int) ([]Hit, error)
}
