package schema

// CoreCompanyTable represents the 'core.company' table
type CoreCompanyTable struct {
	Table            string
	ID               string
	OwnerID          string
	Name             string
	Logo             string
	About            string
	CategoryID       string
	Facebook         string
	Instagram        string
	LinkedIn         string
	Twitter          string
	GoogleMyBusiness string
	BusinessModel    string
	LegalName        string
	Headquarter      string
	FoundingDate     string
	NoOfEmployees    string
	IsVerified       string
	CreatedAt        string
	UpdatedAt        string
}

// CoreCompany is the schema definition for core.company
var CoreCompany = CoreCompanyTable{
	Table:            "core.company",
	ID:               "id",
	OwnerID:          "ownerid",
	Name:             "name",
	Logo:             "logo",
	About:            "about",
	CategoryID:       "categoryid",
	Facebook:         "facebook",
	Instagram:        "instagram",
	LinkedIn:         "linkedin",
	Twitter:          "twitter",
	GoogleMyBusiness: "googlemybusiness",
	BusinessModel:    "businessmodel",
	LegalName:        "legalname",
	Headquarter:      "headquarter",
	FoundingDate:     "foundingdate",
	NoOfEmployees:    "noofemployees",
	IsVerified:       "isverified",
	CreatedAt:        "createdat",
	UpdatedAt:        "updatedat",
}

// Columns returns all standard column names
func (t CoreCompanyTable) Columns() []string {
	return []string{
		t.ID, t.OwnerID, t.Name, t.Logo, t.About, t.CategoryID,
		t.Facebook, t.Instagram, t.LinkedIn, t.Twitter, t.GoogleMyBusiness,
		t.BusinessModel, t.LegalName, t.Headquarter, t.FoundingDate,
		t.NoOfEmployees, t.IsVerified, t.CreatedAt, t.UpdatedAt,
	}
}
