package interview

import "time"

// Fallback image URLs used when an interview is published without uploads.
const (
	DefaultProfileImage   = "https://cdn-icons-png.flaticon.com/512/149/149071.png"
	DefaultInterviewImage = "https://placehold.co/600x400"
)

// Interview is a published founder interview with an ordered Q&A section.
type Interview struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	PersonName     string    `json:"person_name"`
	Designation    string    `json:"designation"`
	ProfileImage   string    `json:"profile_image"`
	Excerpt        string    `json:"excerpt"`
	InterviewImage string    `json:"interview_image"`
	QA             []QA      `json:"qa"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// QA is one question/answer pair; order is preserved on read.
type QA struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Filter holds the parameters for a paginated interview search.
type Filter struct {
	Search string // Case-insensitive match against person name and designation
}

// Global field names for validation
const (
	FieldTitle      = "title"
	FieldPersonName = "person_name"
	FieldExcerpt    = "excerpt"
	FieldQA         = "qa"
)
