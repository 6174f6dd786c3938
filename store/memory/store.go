package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/w-h-a/rdbrain/store"
)

type memoryStore struct {
	options store.Options
	records map[string]store.Record
	mtx     sync.RWMutex
}

func (s *memoryStore) Save(ctx context.Context, rec store.Record) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if len(rec.Id) == 0 {
		rec.Id = uuid.New().String()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	cpy := make([]float32, len(rec.Embedding))
	copy(cpy, rec.Embedding)
	rec.Embedding = cpy

	s.records[rec.Id] = rec

	return nil
}

func (s *memoryStore) Search(ctx context.Context, vector []float32, limit int) ([]store.Hit, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	hits := make([]store.Hit, 0, len(s.records))
	for _, rec := range s.records {
		hits = append(hits, store.Hit{
			Id:         rec.Id,
			Content:    rec.Content,
			Metadata:   rec.Metadata,
			Similarity: store.CosineSimilarity(vector, rec.Embedding),
		})
	}

	sort.Slice(hits, func(i, j int) bool {
		return hits[i].Similarity > hits[j].Similarity
	})

	if len(hits) > limit {
		hits = hits[:limit]
	}

	return hits, nil
}

func NewStore(opts ...store.Option) store.Store {
	options := store.NewOptions(opts...)

	return &memoryStore{
		options: options,
		records: map[string]store.Record{},
	}
}
