package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"reservabar/internal/model"
)

func newTestTokenService(t *testing.T, secret string, ttl time.Duration) *TokenService {
	t.Helper()
	svc, err := NewTokenService(secret, "HS256", ttl)
	assert.NoError(t, err)
	return svc
}

func TestNewTokenService_RejectsUnknownAlgorithm(t *testing.T) {
	_, err := NewTokenService("secret", "nope", time.Minute)
	assert.Error(t, err)

	_, err = NewTokenService("secret", "RS256", time.Minute)
	assert.Error(t, err)
}

func TestTokenService_RoundTrip(t *testing.T) {
	svc := newTestTokenService(t, "test-secret", 30*time.Minute)

	token, err := svc.Issue("a@x.com", model.RoleClient)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	assert.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Subject)
	assert.Equal(t, string(model.RoleClient), claims.Role)
}

func TestTokenService_Expiry(t *testing.T) {
	svc := newTestTokenService(t, "test-secret", 30*time.Minute)

	issuedAt := time.Now()
	svc.now = func() time.Time { return issuedAt }

	token, err := svc.Issue("a@x.com", model.RoleClient)
	assert.NoError(t, err)

	tests := []struct {
		name    string
		at      time.Time
		wantErr bool
	}{
		{name: "well before expiry", at: issuedAt.Add(time.Minute), wantErr: false},
		{name: "just before expiry", at: issuedAt.Add(30*time.Minute - time.Second), wantErr: false},
		{name: "exactly at expiry", at: issuedAt.Add(30 * time.Minute), wantErr: true},
		{name: "after expiry", at: issuedAt.Add(31 * time.Minute), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc.now = func() time.Time { return tt.at }
			_, err := svc.Validate(token)
			if tt.wantErr {
				assert.Equal(t, ErrInvalidToken, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := newTestTokenService(t, "right-secret", time.Hour)
	verifier := newTestTokenService(t, "wrong-secret", time.Hour)

	token, err := issuer.Issue("a@x.com", model.RoleAdmin)
	assert.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.Equal(t, ErrInvalidToken, err)
}

func TestTokenService_Malformed(t *testing.T) {
	svc := newTestTokenService(t, "test-secret", time.Hour)

	for _, token := range []string{"", "garbage", "not.a.jwt", "a.b"} {
		_, err := svc.Validate(token)
		assert.Equal(t, ErrInvalidToken, err)
	}
}
