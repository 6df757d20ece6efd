package models

// RegisterRequest - registration payload forwarded to the identity provider
type RegisterRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"required"`
}

// Identity - verified caller identity resolved from a bearer token
type Identity struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

// RegisterResponse - response for a successful registration
type RegisterResponse struct {
	Success bool     `json:"success"`
	User    Identity `json:"user"`
}
