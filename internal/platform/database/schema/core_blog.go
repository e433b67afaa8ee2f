package schema

// CoreBlogTable represents the 'core.blog' table
type CoreBlogTable struct {
	Table           string
	ID              string
	Title           string
	Description     string
	BlogImage       string
	BlogImageAlt    string
	MetaTitle       string
	MetaDescription string
	MetaKeywords    string
	CategoryID      string
	CreatedAt       string
	UpdatedAt       string
}

// CoreBlog is the schema definition for core.blog
var CoreBlog = CoreBlogTable{
	Table:           "core.blog",
	ID:              "id",
	Title:           "title",
	Description:     "description",
	BlogImage:       "blogimage",
	BlogImageAlt:    "blogimagealt",
	MetaTitle:       "metatitle",
	MetaDescription: "metadescription",
	MetaKeywords:    "metakeywords",
	CategoryID:      "categoryid",
	CreatedAt:       "createdat",
	UpdatedAt:       "updatedat",
}

// Columns returns all standard column names
func (t CoreBlogTable) Columns() []string {
	return []string{
		t.ID, t.Title, t.Description, t.BlogImage, t.BlogImageAlt,
		t.MetaTitle, t.MetaDescription, t.MetaKeywords, t.CategoryID,
		t.CreatedAt, t.UpdatedAt,
	}
}
