package helpers

import (
	"context"
	"fmt"

	"github.com/rudracore/client-portal/internal/models"
)

type contextKey int

const identityKey contextKey = iota

// WithIdentity stores the verified caller identity in the request context.
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// GetIdentity - extracts the verified caller identity from the context
func GetIdentity(ctx context.Context) (models.Identity, error) {
	identity, ok := ctx.Value(identityKey).(models.Identity)
	if !ok {
		return models.Identity{}, fmt.Errorf("undefined identity")
	}
	return identity, nil
}
