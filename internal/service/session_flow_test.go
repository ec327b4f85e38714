package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"reservabar/internal/auth"
	apperrors "reservabar/internal/errors"
	"reservabar/internal/model"
)

// Exercises the whole session lifecycle against mocked storage: register,
// login, resolve the issued token, then run authorization decisions as the
// resolved identity.
func TestSessionFlow_LoginResolveAuthorize(t *testing.T) {
	hash, err := auth.HashPassword("secret1")
	assert.NoError(t, err)
	user := &model.User{ID: 5, Email: "a@x.com", PasswordHash: hash, Role: model.RoleClient, IsActive: true}

	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByEmail", mock.Anything, "a@x.com").Return(user, nil)

	tokens := newTestTokenService(t)
	authSvc := NewAuthService(mockRepo, tokens)
	resolver := auth.NewSessionResolver(tokens, mockRepo)

	token, _, err := authSvc.Login(context.Background(), "a@x.com", "secret1")
	assert.NoError(t, err)

	identity, err := resolver.Resolve(context.Background(), "Bearer "+token)
	assert.NoError(t, err)
	assert.Equal(t, model.RoleClient, identity.Role)

	own := auth.Authorize(identity, auth.ActionDeleteUser, identity.ID)
	assert.True(t, own.Allow)

	other := auth.Authorize(identity, auth.ActionDeleteUser, identity.ID+1)
	assert.False(t, other.Allow)
}

// A wrong password is an authentication failure at login, never the
// unauthenticated outcome reserved for bad tokens.
func TestSessionFlow_WrongPasswordIsAuthFailed(t *testing.T) {
	hash, err := auth.HashPassword("secret1")
	assert.NoError(t, err)

	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByEmail", mock.Anything, "a@x.com").Return(&model.User{
		ID: 5, Email: "a@x.com", PasswordHash: hash, Role: model.RoleClient, IsActive: true,
	}, nil)

	authSvc := NewAuthService(mockRepo, newTestTokenService(t))
	_, _, err = authSvc.Login(context.Background(), "a@x.com", "wrongpass")

	assert.Equal(t, apperrors.ErrInvalidCredentials, err)
	assert.NotEqual(t, apperrors.ErrUnauthenticated, err)
}

// Deleting an identity does not revoke its tokens; the resolver's live
// lookup is what rejects them afterwards.
func TestSessionFlow_DeletedIdentityRejectedOnResolve(t *testing.T) {
	hash, err := auth.HashPassword("secret1")
	assert.NoError(t, err)
	user := &model.User{ID: 5, Email: "a@x.com", PasswordHash: hash, Role: model.RoleClient, IsActive: true}

	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByEmail", mock.Anything, "a@x.com").Return(user, nil).Once()

	tokens := newTestTokenService(t)
	authSvc := NewAuthService(mockRepo, tokens)
	resolver := auth.NewSessionResolver(tokens, mockRepo)

	token, _, err := authSvc.Login(context.Background(), "a@x.com", "secret1")
	assert.NoError(t, err)

	// User is deleted after the token was issued.
	mockRepo.On("FindByEmail", mock.Anything, "a@x.com").Return(nil, gorm.ErrRecordNotFound)

	_, err = resolver.Resolve(context.Background(), "Bearer "+token)
	assert.Equal(t, apperrors.ErrUnauthenticated, err)
}
