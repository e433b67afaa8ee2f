package schema

// SiteContactTable represents the 'site.contact' table
type SiteContactTable struct {
	Table       string
	ID          string
	Name        string
	Email       string
	PhoneNumber string
	Subject     string
	Message     string
	CreatedAt   string
	UpdatedAt   string
}

// SiteContact is the schema definition for site.contact
var SiteContact = SiteContactTable{
	Table:       "site.contact",
	ID:          "id",
	Name:        "name",
	Email:       "email",
	PhoneNumber: "phonenumber",
	Subject:     "subject",
	Message:     "message",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

func (t SiteContactTable) Columns() []string {
	return []string{t.ID, t.Name, t.Email, t.PhoneNumber, t.Subject, t.Message, t.CreatedAt, t.UpdatedAt}
}
