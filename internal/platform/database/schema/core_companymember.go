package schema

// CoreCompanyMemberTable represents the 'core.companymember' table
type CoreCompanyMemberTable struct {
	Table       string
	ID          string
	CompanyID   string
	MemberName  string
	Designation string
	SortOrder   string
}

// CoreCompanyMember is the schema definition for core.companymember
var CoreCompanyMember = CoreCompanyMemberTable{
	Table:       "core.companymember",
	ID:          "id",
	CompanyID:   "companyid",
	MemberName:  "membername",
	Designation: "designation",
	SortOrder:   "sortorder",
}

func (t CoreCompanyMemberTable) Columns() []string {
	return []string{t.ID, t.CompanyID, t.MemberName, t.Designation, t.SortOrder}
}
