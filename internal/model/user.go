package model

import "time"

// Role is a user's access level on the platform.
type Role string

const (
	RoleStudent    Role = "student"
	RoleInstructor Role = "instructor"
	RoleAdmin      Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleInstructor, RoleAdmin:
		return true
	}
	return false
}

// User represents a registered account. Email is the unique key; the role
// starts as student and is only changed by admin promotion.
type User struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	PhotoURL  string    `json:"photo_url,omitempty"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// RegisterUserRequest is the payload sent after client-side registration/login.
type RegisterUserRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Email    string `json:"email" binding:"required,email,max=254"`
	PhotoURL string `json:"photo_url" binding:"omitempty,url,max=2048"`
}

// TokenRequest is the payload for issuing a bearer token.
type TokenRequest struct {
	Email string `json:"email" binding:"required,email,max=254"`
	Name  string `json:"name" binding:"omitempty,max=100"`
}

// TokenResponse carries a freshly signed bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}
