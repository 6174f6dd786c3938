package retrieval

import (
	"context"
	"sort"

	"github.com/w-h-a/rdbrain/store"
	getsafe "github.com/w-h-a/rdbrain/util/get_safe"
	"go.uber.org/zap"
)

// fetchCount deliberately exceeds any sane topK so department filtering
// happens after retrieval, not before.
const fetchCount = 50

// CrossPollination retrieves prior interview notes from departments other
// than the requester's.
type CrossPollination struct {
	options Options
}

func (c *CrossPollination) Search(ctx context.Context, queryText string, excludeDepartment string, topK int) Outcome[[]store.Hit] {
	vec, err := c.options.Embedder.Embed(ctx, queryText)
	if err != nil {
		c.options.Logger.Warn("cross-pollination embed failed", zap.Error(err))
		return Degrade[[]store.Hit](nil, "embedding failed: "+err.Error())
	}

	hits, err := c.options.Store.Search(ctx, vec, fetchCount)
	if err != nil {
		c.options.Logger.Warn("cross-pollination search failed", zap.Error(err))
		return Degrade[[]store.Hit](nil, "store search failed: "+err.Error())
	}

	filtered := make([]store.Hit, 0, len(hits))
	for _, hit := range hits {
		if getsafe.String(hit.Metadata, store.MetadataDepartment) == excludeDepartment {
			continue
		}
		filtered = append(filtered, hit)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Similarity > filtered[j].Similarity
	})

	if len(filtered) > topK {
		filtered = filtered[:topK]
	}

	return Ok(filtered)
}

func NewCrossPollination(opts ...Option) *CrossPollination {
	options := NewOptions(opts...)

	if options.Embedder == nil || options.Store == nil {
		panic("embedder and store are required")
	}

	return &CrossPollination{
		options: options,
	}
}
