package intake

import (
	"context"
	"fmt"
	"time"

	"github.com/w-h-a/rdbrain/store"
)

// InterviewRecord is one accepted interview note; immutable once embedded and
// persisted.
type InterviewRecord struct {
	CompanyName string    `json:"company_name"`
	ContactInfo string    `json:"contact_info"`
	Department  string    `json:"department"`
	RawText     string    `json:"raw_text"`
	TechTags    []string  `json:"tech_tags"`
	CreatedAt   time.Time `json:"created_at"`
}

// Intake embeds accepted interview notes and persists them to the document
// store. This is the only write path; the pipeline itself never writes.
type Intake struct {
	options Options
}

func (i *Intake) Save(ctx context.Context, rec InterviewRecord) error {
	if len(rec.RawText) == 0 {
		return fmt.Errorf("interview text is required")
	}

	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	vec, err := i.options.Embedder.Embed(ctx, rec.RawText)
	if err != nil {
		return fmt.Errorf("embed interview: %w", err)
	}

	tags := make([]any, 0, len(rec.TechTags))
	for _, tag := range rec.TechTags {
		tags = append(tags, tag)
	}

	if err := i.options.Store.Save(ctx, store.Record{
		Content:   rec.RawText,
		Embedding: vec,
		Metadata: map[string]any{
			store.MetadataCompanyName: rec.CompanyName,
			store.MetadataContactInfo: rec.ContactInfo,
			store.MetadataDepartment:  rec.Department,
			store.MetadataTechTags:    tags,
			store.MetadataCreatedAt:   rec.CreatedAt.Format(time.RFC3339),
		},
		CreatedAt: rec.CreatedAt,
	}); err != nil {
		return fmt.Errorf("save interview: %w", err)
	}

	return nil
}

func NewIntake(opts ...Option) *Intake {
	options := NewOptions(opts...)

	if options.Embedder == nil || options.Store == nil {
		panic("embedder and store are required")
	}

	return &Intake{
		options: options,
	}
}
