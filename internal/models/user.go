package models

type UserRole string

const (
	RoleGM UserRole = "GM"
	RoleRM UserRole = "RM"
)

func (r UserRole) IsValid() bool {
	return r == RoleGM || r == RoleRM
}

// User is the session identity. RM always carries a region, GM never does.
type User struct {
	ID     uint     `json:"id"`
	Name   string   `json:"name"`
	Email  string   `json:"email,omitempty"`
	Role   UserRole `json:"role"`
	Region string   `json:"region,omitempty"`
}
