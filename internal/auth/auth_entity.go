package auth

// Credential is the login view of an employee row.
type Credential struct {
	ID           int64
	Name         string
	Password     string
	PermissionID *int64
}

func (Credential) TableName() string {
	return "employees"
}
