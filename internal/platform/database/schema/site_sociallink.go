package schema

// SiteSocialLinkTable represents the 'site.sociallink' table
type SiteSocialLinkTable struct {
	Table        string
	ID           string
	SiteDetailID string
	Platform     string
	Icon         string
	Link         string
	SortOrder    string
}

// SiteSocialLink is the schema definition for site.sociallink
var SiteSocialLink = SiteSocialLinkTable{
	Table:        "site.sociallink",
	ID:           "id",
	SiteDetailID: "sitedetailid",
	Platform:     "platform",
	Icon:         "icon",
	Link:         "link",
	SortOrder:    "sortorder",
}

func (t SiteSocialLinkTable) Columns() []string {
	return []string{t.ID, t.SiteDetailID, t.Platform, t.Icon, t.Link, t.SortOrder}
}
