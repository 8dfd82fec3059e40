package domain

// Role is the coarse permission level attached to a user and its sessions.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Valid reports whether the role is one of the known levels.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}
