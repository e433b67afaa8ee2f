package schema

// CoreInterviewTable represents the 'core.interview' table
type CoreInterviewTable struct {
	Table          string
	ID             string
	Title          string
	PersonName     string
	Designation    string
	ProfileImage   string
	Excerpt        string
	InterviewImage string
	CreatedAt      string
	UpdatedAt      string
}

// CoreInterview is the schema definition for core.interview
var CoreInterview = CoreInterviewTable{
	Table:          "core.interview",
	ID:             "id",
	Title:          "title",
	PersonName:     "personname",
	Designation:    "designation",
	ProfileImage:   "profileimage",
	Excerpt:        "excerpt",
	InterviewImage: "interviewimage",
	CreatedAt:      "createdat",
	UpdatedAt:      "updatedat",
}

// Columns returns all standard column names
func (t CoreInterviewTable) Columns() []string {
	return []string{
		t.ID, t.Title, t.PersonName, t.Designation, t.ProfileImage,
		t.Excerpt, t.InterviewImage, t.CreatedAt, t.UpdatedAt,
	}
}
