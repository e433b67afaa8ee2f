package sitedetail

import "time"

// SiteDetail is the single record of site-wide editable copy. It is created
// lazily with empty sections the first time anything reads it.
type SiteDetail struct {
	ID             string       `json:"id"`
	AboutTitle     string       `json:"about_title"`
	AboutContent   string       `json:"about_content"`
	TermsContent   string       `json:"terms_content"`
	PrivacyContent string       `json:"privacy_content"`
	FooterAbout    string       `json:"footer_about"`
	SocialMedia    []SocialLink `json:"social_media"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// SocialLink is one entry in the site footer's social media list.
type SocialLink struct {
	ID       string `json:"id"`
	Platform string `json:"platform"`
	Icon     string `json:"icon"`
	Link     string `json:"link"`
}

// Global field names for validation
const (
	FieldPlatform = "platform"
	FieldLink     = "link"
)
