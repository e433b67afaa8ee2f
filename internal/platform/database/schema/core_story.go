package schema

// CoreStoryTable represents the 'core.story' table
type CoreStoryTable struct {
	Table           string
	ID              string
	Title           string
	Description     string
	CategoryID      string
	OwnerID         string
	IsVerified      string
	IsFeatured      string
	StoryImage      string
	MetaTitle       string
	MetaDescription string
	MetaKeywords    string
	CreatedAt       string
	UpdatedAt       string
}

// CoreStory is the schema definition for core.story
var CoreStory = CoreStoryTable{
	Table:           "core.story",
	ID:              "id",
	Title:           "title",
	Description:     "description",
	CategoryID:      "categoryid",
	OwnerID:         "ownerid",
	IsVerified:      "isverified",
	IsFeatured:      "isfeatured",
	StoryImage:      "storyimage",
	MetaTitle:       "metatitle",
	MetaDescription: "metadescription",
	MetaKeywords:    "metakeywords",
	CreatedAt:       "createdat",
	UpdatedAt:       "updatedat",
}

// Columns returns all standard column names
func (t CoreStoryTable) Columns() []string {
	return []string{
		t.ID, t.Title, t.Description, t.CategoryID, t.OwnerID, t.IsVerified,
		t.IsFeatured, t.StoryImage, t.MetaTitle, t.MetaDescription,
		t.MetaKeywords, t.CreatedAt, t.UpdatedAt,
	}
}
