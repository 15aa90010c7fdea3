package models

const (
	RoleSuperAdmin = "superadmin"
	RoleAdmin      = "admin"
)

// User is the authenticated identity attached to a session token.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Name  string `json:"name"`
}

// Admin is a managed admin account. Password holds a bcrypt hash, never the
// plaintext; handlers blank it before responding.
type Admin struct {
	ID        string `json:"id"`
	Email     string `json:"email" validate:"required,email"`
	Name      string `json:"name" validate:"required"`
	Password  string `json:"password,omitempty"`
	CreatedAt string `json:"createdAt"`
	IsActive  bool   `json:"isActive"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type CreateAdminRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required"`
	IsActive bool   `json:"isActive"`
}
