package services

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rudracore/client-portal/internal/client"
	"github.com/rudracore/client-portal/internal/config"
	"github.com/rudracore/client-portal/internal/logger"
	"github.com/rudracore/client-portal/internal/models"
	"github.com/sethvargo/go-retry"
	"github.com/sony/gobreaker"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrUserExists   = errors.New("user already exists")
)

type IdentityService interface {
	Authorize(ctx context.Context, accessToken string) (*models.Identity, error)
	RegisterUser(ctx context.Context, request models.RegisterRequest) (*models.Identity, error)
	IsAdmin(identity models.Identity) bool
}

// Identity resolves caller identities through the external provider.
// Every request re-derives its identity from the bearer token, nothing is
// cached between requests.
type Identity struct {
	Provider client.IdentityProvider
	Limiter  *client.RateLimiter
	Breaker  *gobreaker.CircuitBreaker
	Admins   []string
}

func InitCircuitBreaker() *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "identity-provider",
		Timeout: 30 * time.Second, // retry the provider after 30s
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info("Circuit Breaker '%s': %s → %s", name, from, to)
		},
	})
}

// NewIdentity creates the service with the real HTTP provider client.
func NewIdentity(cfg config.Config) IdentityService {
	provider := client.NewClient(cfg.Auth.AuthAddr, cfg.Auth.ServiceKey, &http.Client{})
	return NewIdentityWithProvider(cfg, provider)
}

// NewIdentityWithProvider creates the service with an injected provider.
func NewIdentityWithProvider(cfg config.Config, provider client.IdentityProvider) IdentityService {
	return &Identity{
		Provider: provider,
		Limiter:  client.NewRateLimiter(),
		Breaker:  InitCircuitBreaker(),
		Admins:   cfg.Server.AdminEmails,
	}
}

// Authorize exchanges a bearer token for the caller's identity.
func (s *Identity) Authorize(ctx context.Context, accessToken string) (*models.Identity, error) {
	if accessToken == "" {
		return nil, ErrUnauthorized
	}

	result, err := s.call(ctx, func(ctx context.Context) (*models.Identity, error) {
		return s.Provider.GetUser(ctx, accessToken)
	})
	if err != nil {
		if errors.Is(err, client.ErrInvalidToken) {
			logger.Warn("Token rejected by identity provider")
			return nil, ErrUnauthorized
		}
		logger.Error("Failed to resolve identity", err)
		return nil, err
	}
	return result, nil
}

// RegisterUser proxies registration to the provider.
func (s *Identity) RegisterUser(ctx context.Context, request models.RegisterRequest) (*models.Identity, error) {
	logger.Info("Register user:", request.Email)

	result, err := s.call(ctx, func(ctx context.Context) (*models.Identity, error) {
		return s.Provider.CreateUser(ctx, request.Email, request.Password, request.Name)
	})
	if err != nil {
		if errors.Is(err, client.ErrUserExists) {
			logger.Warn("User already exists", request.Email)
			return nil, ErrUserExists
		}
		logger.Error("Error registering user", request.Email, err)
		return nil, err
	}
	return result, nil
}

// IsAdmin checks the identity against the admin allow-list, exact and
// case-sensitive.
func (s *Identity) IsAdmin(identity models.Identity) bool {
	for _, email := range s.Admins {
		if identity.Email == email {
			return true
		}
	}
	return false
}

// call runs one provider operation through the limiter, circuit breaker
// and a short retry for transient failures.
func (s *Identity) call(ctx context.Context, op func(ctx context.Context) (*models.Identity, error)) (*models.Identity, error) {
	if err := s.Limiter.Wait(ctx); err != nil {
		return nil, err
	}

	result, err := s.Breaker.Execute(func() (interface{}, error) {
		var identity *models.Identity
		backoff := retry.WithMaxRetries(2, retry.NewExponential(100*time.Millisecond))
		err := retry.Do(ctx, backoff, func(ctx context.Context) error {
			var opErr error
			identity, opErr = op(ctx)
			if errors.Is(opErr, client.ErrProviderUnavailable) {
				return retry.RetryableError(opErr)
			}
			return opErr
		})
		return identity, err
	})
	if err != nil {
		var rateErr *client.RateLimitError
		if errors.As(err, &rateErr) {
			logger.Warn("Identity provider rate limit, blocking for", rateErr.RetryAfter)
			s.Limiter.BlockFor(rateErr.RetryAfter)
		}
		return nil, err
	}
	return result.(*models.Identity), nil
}
