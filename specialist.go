package rdbrain

import (
	"context"
	"fmt"
	"strings"

	"github.com/w-h-a/rdbrain/retrieval"
	"github.com/w-h-a/rdbrain/store"
	getsafe "github.com/w-h-a/rdbrain/util/get_safe"
)

const (
	internalTopK        = 3
	internalContentClip = 200
)

// internalSpecialist formats cross-department knowledge into a bulleted brief.
// Retrieval-only: it degrades to a fixed message and never fails the run.
func (s *Squad) internalSpecialist(ctx context.Context, queryText string, department string) (string, []store.Hit) {
	outcome := s.options.CrossPollination.Search(ctx, queryText, department, internalTopK)

	hits := outcome.Data
	if len(hits) == 0 {
		return retrieval.SentinelNoInternalData, nil
	}

	lines := make([]string, 0, len(hits))
	for _, hit := range hits {
		company := getsafe.StringOr(hit.Metadata, store.MetadataCompanyName, "Unknown Company")
		dept := getsafe.StringOr(hit.Metadata, store.MetadataDepartment, "Unknown Dept")

		content := hit.Content
		if r := []rune(content); len(r) > internalContentClip {
			content = string(r[:internalContentClip])
		}

		lines = append(lines, strings.TrimSpace(fmt.Sprintf("- %s (%s): %s", company, dept, content)))
	}

	return strings.Join(lines, "\n"), hits
}
