package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIssuer() *TokenIssuer {
	return NewTokenIssuer("test-secret", "partner-management", "partner-management-client", time.Hour)
}

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := newTestIssuer()

	token, minted, err := issuer.GenerateJWT("user-1", "a@example.com", "a@example.com", []string{"User"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := issuer.ParseJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "a@example.com", claims.Email)
	assert.Equal(t, "a@example.com", claims.Username)
	assert.Equal(t, []string{"User"}, claims.Roles)
	assert.Equal(t, minted.ID, claims.ID)
	assert.NotEmpty(t, claims.ID)
	assert.True(t, claims.HasRole("User"))
	assert.False(t, claims.HasRole("Admin"))
}

func TestTokenIssuer_UniqueTokenIDs(t *testing.T) {
	issuer := newTestIssuer()

	_, first, err := issuer.GenerateJWT("user-1", "a@example.com", "a@example.com", nil)
	require.NoError(t, err)
	_, second, err := issuer.GenerateJWT("user-1", "a@example.com", "a@example.com", nil)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestTokenIssuer_RejectsExpired(t *testing.T) {
	issuer := newTestIssuer()
	issuer.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, _, err := issuer.GenerateJWT("user-1", "a@example.com", "a@example.com", nil)
	require.NoError(t, err)

	issuer.now = time.Now
	_, err = issuer.ParseJWT(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuer_RejectsWrongSecret(t *testing.T) {
	token, _, err := newTestIssuer().GenerateJWT("user-1", "a@example.com", "a@example.com", nil)
	require.NoError(t, err)

	other := NewTokenIssuer("another-secret", "partner-management", "partner-management-client", time.Hour)
	_, err = other.ParseJWT(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuer_RejectsWrongAudience(t *testing.T) {
	token, _, err := newTestIssuer().GenerateJWT("user-1", "a@example.com", "a@example.com", nil)
	require.NoError(t, err)

	other := NewTokenIssuer("test-secret", "partner-management", "someone-else", time.Hour)
	_, err = other.ParseJWT(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuer_RejectsOtherAlgorithms(t *testing.T) {
	issuer := newTestIssuer()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ID:        "jti-1",
			Issuer:    "partner-management",
			Audience:  jwt.ClaimStrings{"partner-management-client"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = issuer.ParseJWT(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuer_RejectsGarbage(t *testing.T) {
	_, err := newTestIssuer().ParseJWT("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
