package domain

// Role represents an account role in the system
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleInvestor Role = "INVESTOR"
)

// IsValid reports whether r is one of the known roles
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleInvestor
}
