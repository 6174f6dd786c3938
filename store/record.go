package store

import "time"

// Metadata keys carried by every interview record.
const (
	MetadataCompanyName = "company_name"
	MetadataContactInfo = "contact_info"
	MetadataDepartment  = "department"
	MetadataTechTags    = "tech_tags"
	MetadataCreatedAt   = "created_at"
)

type Record struct {
	Id        string
	Content   string
	Metadata  map[string]any
	Embedding []float32
	CreatedAt time.Time
}

// Hit is one similarity-search result. Similarity is cosine similarity in [0, 1].
type Hit struct {
	Id         string         `json:"id"`
	Content    string         `json:"content"`
	Metadata   map[string]any `json:"metadata"`
	Similarity float64        `json:"similarity"`
}
