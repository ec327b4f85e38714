package auth

import (
	"context"
	"strings"

	apperrors "reservabar/internal/errors"
	"reservabar/internal/model"
)

const bearerPrefix = "Bearer "

// IdentityStore is the user lookup the resolver needs. The GORM user
// repository satisfies it.
type IdentityStore interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

// SessionResolver turns a presented bearer token into an active identity.
// It is the single gate for every protected operation: signature and expiry
// via the token service, then a live lookup that catches users deleted or
// deactivated after the token was issued.
type SessionResolver struct {
	tokens *TokenService
	store  IdentityStore
}

// NewSessionResolver creates a session resolver.
func NewSessionResolver(tokens *TokenService, store IdentityStore) *SessionResolver {
	return &SessionResolver{tokens: tokens, store: store}
}

// Resolve extracts the bearer token from an Authorization header value and
// resolves it. A missing or malformed header fails with ErrUnauthenticated.
func (r *SessionResolver) Resolve(ctx context.Context, authorizationHeader string) (*model.User, error) {
	if !strings.HasPrefix(authorizationHeader, bearerPrefix) {
		return nil, apperrors.ErrUnauthenticated
	}
	token := strings.TrimSpace(authorizationHeader[len(bearerPrefix):])
	if token == "" {
		return nil, apperrors.ErrUnauthenticated
	}
	return r.ResolveToken(ctx, token)
}

// ResolveToken validates an already extracted token and resolves it to an
// active identity. All failures collapse into ErrUnauthenticated.
func (r *SessionResolver) ResolveToken(ctx context.Context, token string) (*model.User, error) {
	claims, err := r.tokens.Validate(token)
	if err != nil {
		return nil, apperrors.ErrUnauthenticated
	}
	if claims.Subject == "" {
		return nil, apperrors.ErrUnauthenticated
	}
	user, err := r.store.FindByEmail(ctx, claims.Subject)
	if err != nil || user == nil {
		return nil, apperrors.ErrUnauthenticated
	}
	if !user.IsActive {
		return nil, apperrors.ErrUnauthenticated
	}
	return user, nil
}
