package schema

// UserAccountTable represents the 'users.account' table
type UserAccountTable struct {
	Table       string
	ID          string
	Name        string
	Email       string
	PhoneNumber string
	Password    string
	CreatedAt   string
	UpdatedAt   string
}

// UserAccount is the schema definition for users.account
var UserAccount = UserAccountTable{
	Table:       "users.account",
	ID:          "id",
	Name:        "name",
	Email:       "email",
	PhoneNumber: "phonenumber",
	Password:    "passwordhash",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

// Columns returns all standard column names
func (t UserAccountTable) Columns() []string {
	return []string{t.ID, t.Name, t.Email, t.PhoneNumber, t.Password, t.CreatedAt, t.UpdatedAt}
}
