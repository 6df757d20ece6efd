package client

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rudracore/client-portal/internal/models"
)

// IdentityProvider is the external authentication collaborator. The portal
// never verifies tokens or stores passwords itself, it exchanges bearer
// tokens for identities and proxies registration.
type IdentityProvider interface {
	GetUser(ctx context.Context, accessToken string) (*models.Identity, error)
	CreateUser(ctx context.Context, email string, password string, name string) (*models.Identity, error)
}

var (
	ErrInvalidToken        = errors.New("invalid or expired access token")
	ErrUserExists          = errors.New("user already registered")
	ErrProviderUnavailable = errors.New("identity provider unavailable")
)

// userPayload mirrors the provider's user object
type userPayload struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	UserMetadata struct {
		Name string `json:"name"`
		Role string `json:"role"`
	} `json:"user_metadata"`
}

func (u userPayload) toIdentity() *models.Identity {
	name := u.UserMetadata.Name
	if name == "" {
		name = "Unknown"
	}
	return &models.Identity{
		UserID: u.ID,
		Email:  u.Email,
		Name:   name,
	}
}

// createUserPayload is the provider's admin create-user request body.
// Email confirmation is skipped, no mail server is configured.
type createUserPayload struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	EmailConfirm bool   `json:"email_confirm"`
	UserMetadata struct {
		Name string `json:"name"`
		Role string `json:"role"`
	} `json:"user_metadata"`
}

type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return "rate limit exceeded"
}

func NewRateLimitError(headers http.Header) *RateLimitError {
	return &RateLimitError{
		RetryAfter: ParseRetryAfter(headers),
	}
}
