package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rudracore/client-portal/internal/client"
	"github.com/rudracore/client-portal/internal/config"
	"github.com/rudracore/client-portal/internal/models"
)

type fakeProvider struct {
	identities map[string]models.Identity
	createErr  error
	getErr     error
	calls      int
}

func (p *fakeProvider) GetUser(ctx context.Context, accessToken string) (*models.Identity, error) {
	p.calls++
	if p.getErr != nil {
		return nil, p.getErr
	}
	identity, ok := p.identities[accessToken]
	if !ok {
		return nil, client.ErrInvalidToken
	}
	return &identity, nil
}

func (p *fakeProvider) CreateUser(ctx context.Context, email string, password string, name string) (*models.Identity, error) {
	p.calls++
	if p.createErr != nil {
		return nil, p.createErr
	}
	return &models.Identity{UserID: "new-user", Email: email, Name: name}, nil
}

func TestAuthorize(t *testing.T) {
	initTestLogger(t)

	provider := &fakeProvider{identities: map[string]models.Identity{
		"good-token": {UserID: "user-1", Email: "client@example.com", Name: "Test Client"},
	}}
	identity := NewIdentityWithProvider(config.DefaultConfig(), provider)

	testCases := []struct {
		TestName      string
		Token         string
		ExpectedError error
	}{
		{"Valid token #1", "good-token", nil},
		{"Unknown token #2", "bad-token", ErrUnauthorized},
		{"Empty token #3", "", ErrUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			got, err := identity.Authorize(context.Background(), tc.Token)
			if tc.ExpectedError != nil {
				if !errors.Is(err, tc.ExpectedError) {
					t.Errorf("Expected error: %v, got: %v", tc.ExpectedError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected identity, got error: %v", err)
			}
			if got.UserID != "user-1" || got.Email != "client@example.com" {
				t.Errorf("Unexpected identity: %+v", got)
			}
		})
	}
}

func TestAuthorizeRetriesTransientFailures(t *testing.T) {
	initTestLogger(t)

	provider := &fakeProvider{getErr: client.ErrProviderUnavailable}
	identity := NewIdentityWithProvider(config.DefaultConfig(), provider)

	_, err := identity.Authorize(context.Background(), "some-token")
	if !errors.Is(err, client.ErrProviderUnavailable) {
		t.Fatalf("Expected provider error, got: %v", err)
	}
	// initial attempt plus two retries
	if provider.calls != 3 {
		t.Errorf("Expected 3 provider calls, got: %d", provider.calls)
	}
}

func TestRegisterUser(t *testing.T) {
	initTestLogger(t)

	testCases := []struct {
		TestName      string
		Provider      *fakeProvider
		ExpectedError error
	}{
		{"Success #1", &fakeProvider{}, nil},
		{"Already registered #2", &fakeProvider{createErr: client.ErrUserExists}, ErrUserExists},
	}

	request := models.RegisterRequest{Email: "new@example.com", Password: "secret", Name: "New Client"}
	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			identity := NewIdentityWithProvider(config.DefaultConfig(), tc.Provider)

			user, err := identity.RegisterUser(context.Background(), request)
			if tc.ExpectedError != nil {
				if !errors.Is(err, tc.ExpectedError) {
					t.Errorf("Expected error: %v, got: %v", tc.ExpectedError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected user, got error: %v", err)
			}
			if user.Email != request.Email || user.Name != request.Name {
				t.Errorf("Unexpected user: %+v", user)
			}
		})
	}
}

func TestIsAdmin(t *testing.T) {
	initTestLogger(t)
	identity := NewIdentityWithProvider(config.DefaultConfig(), &fakeProvider{})

	testCases := []struct {
		TestName string
		Email    string
		Expected bool
	}{
		{"Configured admin #1", "admin@rudracore.com", true},
		{"Regular client #2", "client@example.com", false},
		{"Case differs, exact match required #3", "Admin@rudracore.com", false},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			if got := identity.IsAdmin(models.Identity{Email: tc.Email}); got != tc.Expected {
				t.Errorf("IsAdmin(%q) = %v, want %v", tc.Email, got, tc.Expected)
			}
		})
	}
}
