package schema

// UserAdministratorTable represents the 'users.administrator' table
type UserAdministratorTable struct {
	Table       string
	ID          string
	Name        string
	Email       string
	PhoneNumber string
	Password    string
	Role        string
	CreatedAt   string
	UpdatedAt   string
}

// UserAdministrator is the schema definition for users.administrator
var UserAdministrator = UserAdministratorTable{
	Table:       "users.administrator",
	ID:          "id",
	Name:        "name",
	Email:       "email",
	PhoneNumber: "phonenumber",
	Password:    "passwordhash",
	Role:        "role",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

// Columns returns all standard column names
func (t UserAdministratorTable) Columns() []string {
	return []string{t.ID, t.Name, t.Email, t.PhoneNumber, t.Password, t.Role, t.CreatedAt, t.UpdatedAt}
}
