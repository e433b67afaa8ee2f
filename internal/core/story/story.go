package story

import "time"

// Story is a member-submitted article that goes through admin moderation
// before appearing as verified content.
type Story struct {
	ID              string       `json:"id"`
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	CategoryID      string       `json:"category_id"`
	Category        *CategoryRef `json:"category,omitempty"`
	OwnerID         string       `json:"owner_id"`
	Owner           *OwnerRef    `json:"owner,omitempty"`
	IsVerified      bool         `json:"is_verified"`
	IsFeatured      bool         `json:"is_featured"`
	StoryImage      string       `json:"story_image"`
	MetaTitle       string       `json:"meta_title"`
	MetaDescription string       `json:"meta_description"`
	MetaKeywords    []string     `json:"meta_keywords"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// CategoryRef is the expanded category reference on a story.
type CategoryRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// OwnerRef is the expanded owner reference on a story.
//
// The owner id is resolved against both principal stores since the story
// record does not remember which kind created it.
type OwnerRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Filter holds the parameters for a paginated story search.
type Filter struct {
	Search            string // Case-insensitive match against title
	OwnerID           string // Restrict to a single owner
	CategoryID        string // Restrict to a single category
	ExcludeCategoryID string // Hide a single category from results
}

// Global field names for validation
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldCategoryID  = "category_id"
	FieldMetaTitle   = "meta_title"
	FieldStoryImage  = "story_image"
)
