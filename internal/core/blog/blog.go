package blog

import "time"

// Blog is an editorial article written by the platform team, as opposed to
// member-submitted stories. Blogs skip moderation entirely.
type Blog struct {
	ID              string       `json:"id"`
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	BlogImage       string       `json:"blog_image"`
	BlogImageAlt    string       `json:"blog_image_alt"`
	MetaTitle       string       `json:"meta_title"`
	MetaDescription string       `json:"meta_description"`
	MetaKeywords    string       `json:"meta_keywords"`
	CategoryID      string       `json:"category_id"`
	Category        *CategoryRef `json:"category,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// CategoryRef is the expanded category reference on a blog.
type CategoryRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Filter holds the parameters for a paginated blog search.
type Filter struct {
	Search string // Case-insensitive match against title and meta title
}

// Global field names for validation
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldCategoryID  = "category_id"
	FieldBlogImage   = "blog_image"
)
