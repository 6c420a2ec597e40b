package entity

// Role is the coarse permission level assigned to a user.
type Role string

const (
	// RoleUser is the default role for registered accounts.
	RoleUser Role = "user"
	// RoleAdmin marks administrative accounts.
	RoleAdmin Role = "admin"
)

// String returns the role as its stored string value.
func (r Role) String() string {
	return string(r)
}

// Ensure normalizes unknown role values to RoleUser.
func (r Role) Ensure() Role {
	switch r {
	case RoleUser, RoleAdmin:
		return r
	default:
		return RoleUser
	}
}
