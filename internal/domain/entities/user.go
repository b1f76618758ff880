package entities

import "time"

// UserRole determines which portal and repository queries a user reaches.

type UserRole string

const (
	RoleClient    UserRole = "client"
	RoleInstaller UserRole = "installer"
	RoleAdmin     UserRole = "admin"
)

func (r UserRole) Valid() bool {
	return r == RoleClient || r == RoleInstaller || r == RoleAdmin
}

// User is referenced by id from ServiceRequest (clientId / installerId).
//
// Storage model (DynamoDB):
//   - PK: id
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Role      UserRole  `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
