package domain

// Role is the closed set of CMS roles. "admin" can edit content; "super"
// can additionally manage user accounts.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleSuper Role = "super"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleSuper
}

func (r Role) String() string { return string(r) }
