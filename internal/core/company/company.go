package company

import "time"

// BusinessModels is the allowed set for the business model enum.
var BusinessModels = []string{"B2C", "B2B", "B2B2C", "D2C", "C2C", "B2G"}

// EmployeeRanges is the allowed set for the company size enum.
var EmployeeRanges = []string{"0-10", "10-100", "100-1000", "1000-100000"}

// Company is a member's startup/business listing. Each principal may list
// at most one company; listings go through admin verification like stories.
type Company struct {
	ID            string       `json:"id"`
	OwnerID       string       `json:"owner_id"`
	Owner         *OwnerRef    `json:"owner,omitempty"`
	Name          string       `json:"name"`
	Logo          string       `json:"logo"`
	About         string       `json:"about"`
	CategoryID    string       `json:"category_id"`
	Category      *CategoryRef `json:"category,omitempty"`
	SocialMedia   SocialMedia  `json:"social_media"`
	BusinessModel string       `json:"business_model"`
	LegalName     string       `json:"legal_name"`
	Headquarter   string       `json:"headquarter"`
	FoundingDate  time.Time    `json:"founding_date"`
	NoOfEmployees string       `json:"no_of_employees"`
	IsVerified    bool         `json:"is_verified"`
	CoreTeam      []TeamMember `json:"core_team"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// SocialMedia groups the company's public social links.
type SocialMedia struct {
	Facebook         string `json:"facebook,omitempty"`
	Instagram        string `json:"instagram,omitempty"`
	LinkedIn         string `json:"linkedin,omitempty"`
	Twitter          string `json:"twitter,omitempty"`
	GoogleMyBusiness string `json:"google_my_business,omitempty"`
}

// TeamMember is one core-team entry on a company listing.
type TeamMember struct {
	MemberName  string `json:"member_name"`
	Designation string `json:"designation"`
}

// CategoryRef is the expanded category reference on a company.
type CategoryRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// OwnerRef is the expanded owner reference on a company.
type OwnerRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Global field names for validation
const (
	FieldName          = "name"
	FieldCategoryID    = "category_id"
	FieldBusinessModel = "business_model"
	FieldLegalName     = "legal_name"
	FieldHeadquarter   = "headquarter"
	FieldFoundingDate  = "founding_date"
	FieldNoOfEmployees = "no_of_employees"
	FieldCoreTeam      = "core_team"
)
