package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "reservabar/internal/errors"
	"reservabar/internal/model"
)

// MockIdentityStore is a mock implementation of IdentityStore.
type MockIdentityStore struct {
	mock.Mock
}

func (m *MockIdentityStore) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func TestSessionResolver_Resolve_HeaderHandling(t *testing.T) {
	tokens := newTestTokenService(t, "test-secret", time.Hour)
	store := new(MockIdentityStore)
	resolver := NewSessionResolver(tokens, store)

	for _, header := range []string{"", "Bearer", "Bearer ", "Basic dXNlcjpwYXNz", "token-without-scheme"} {
		_, err := resolver.Resolve(context.Background(), header)
		assert.Equal(t, apperrors.ErrUnauthenticated, err, "header %q", header)
	}
	store.AssertNotCalled(t, "FindByEmail")
}

func TestSessionResolver_Resolve_Success(t *testing.T) {
	tokens := newTestTokenService(t, "test-secret", time.Hour)
	store := new(MockIdentityStore)
	resolver := NewSessionResolver(tokens, store)

	user := &model.User{ID: 5, Email: "a@x.com", Role: model.RoleClient, IsActive: true}
	store.On("FindByEmail", mock.Anything, "a@x.com").Return(user, nil)

	token, err := tokens.Issue("a@x.com", model.RoleClient)
	assert.NoError(t, err)

	resolved, err := resolver.Resolve(context.Background(), "Bearer "+token)
	assert.NoError(t, err)
	assert.Equal(t, user, resolved)
	store.AssertExpectations(t)
}

func TestSessionResolver_ResolveToken_Failures(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(*MockIdentityStore)
		token     func(*TokenService) string
	}{
		{
			name:      "invalid token",
			setupMock: func(m *MockIdentityStore) {},
			token: func(s *TokenService) string {
				return "garbage"
			},
		},
		{
			name:      "token signed with different secret",
			setupMock: func(m *MockIdentityStore) {},
			token: func(s *TokenService) string {
				other := &TokenService{secret: []byte("other-secret"), method: s.method, ttl: s.ttl, now: time.Now}
				tok, _ := other.Issue("a@x.com", model.RoleClient)
				return tok
			},
		},
		{
			name: "identity deleted after issuance",
			setupMock: func(m *MockIdentityStore) {
				m.On("FindByEmail", mock.Anything, "gone@x.com").Return(nil, gorm.ErrRecordNotFound)
			},
			token: func(s *TokenService) string {
				tok, _ := s.Issue("gone@x.com", model.RoleClient)
				return tok
			},
		},
		{
			name: "inactive identity",
			setupMock: func(m *MockIdentityStore) {
				m.On("FindByEmail", mock.Anything, "off@x.com").Return(&model.User{ID: 2, Email: "off@x.com", Role: model.RoleClient, IsActive: false}, nil)
			},
			token: func(s *TokenService) string {
				tok, _ := s.Issue("off@x.com", model.RoleClient)
				return tok
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := newTestTokenService(t, "test-secret", time.Hour)
			store := new(MockIdentityStore)
			tt.setupMock(store)
			resolver := NewSessionResolver(tokens, store)

			_, err := resolver.ResolveToken(context.Background(), tt.token(tokens))
			assert.Equal(t, apperrors.ErrUnauthenticated, err)
			store.AssertExpectations(t)
		})
	}
}
