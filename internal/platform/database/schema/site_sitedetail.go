package schema

// SiteDetailTable represents the 'site.sitedetail' table
type SiteDetailTable struct {
	Table          string
	ID             string
	AboutTitle     string
	AboutContent   string
	TermsContent   string
	PrivacyContent string
	FooterAbout    string
	CreatedAt      string
	UpdatedAt      string
}

// SiteDetail is the schema definition for site.sitedetail
var SiteDetail = SiteDetailTable{
	Table:          "site.sitedetail",
	ID:             "id",
	AboutTitle:     "abouttitle",
	AboutContent:   "aboutcontent",
	TermsContent:   "termscontent",
	PrivacyContent: "privacycontent",
	FooterAbout:    "footerabout",
	CreatedAt:      "createdat",
	UpdatedAt:      "updatedat",
}

func (t SiteDetailTable) Columns() []string {
	return []string{
		t.ID, t.AboutTitle, t.AboutContent, t.TermsContent,
		t.PrivacyContent, t.FooterAbout, t.CreatedAt, t.UpdatedAt,
	}
}
