package category

import "time"

// Category is a named tag referenced by stories, companies and blogs.
//
// Names are unique case-insensitively: "Startup" and "startup" are the same
// category. The check runs at create/update time rather than in storage.
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Global field names for validation
const (
	FieldName = "name"
)
