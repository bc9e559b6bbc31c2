package utils

import (
	"errors" // Error values
	"time"   // Time for token expiration

	"github.com/golang-jwt/jwt/v5" // JWT library
	"github.com/google/uuid"       // Token IDs
)

// JWT Claims
type Claims struct {
	Email    string   `json:"email"`    // User email
	Username string   `json:"username"` // Login name
	Roles    []string `json:"roles"`    // Role codes
	// Standard JWT claims, sub = user ID, jti = token ID
	jwt.RegisteredClaims
}

// HasRole reports whether the token carries the given role
func (c *Claims) HasRole(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// ErrInvalidToken is returned for any token that fails validation
var ErrInvalidToken = errors.New("invalid or expired token")

// TokenIssuer mints and validates HS256 bearer tokens
type TokenIssuer struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
	now      func() time.Time
}

// NewTokenIssuer creates a TokenIssuer
func NewTokenIssuer(secret, issuer, audience string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
		ttl:      ttl,
		now:      time.Now,
	}
}

// GenerateJWT creates a signed token for the given identity
func (i *TokenIssuer) GenerateJWT(userID, email, username string, roles []string) (string, *Claims, error) {
	now := i.now()
	// Set token claims
	claims := &Claims{
		Email:    email,
		Username: username,
		Roles:    roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,                             // User ID
			ID:        uuid.NewString(),                   // Unique token ID
			Issuer:    i.issuer,                           // Token issuer
			Audience:  jwt.ClaimStrings{i.audience},       // Intended audience
			IssuedAt:  jwt.NewNumericDate(now),            // Issued at current time
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)), // Configured lifetime
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims) // Create token with claims
	signed, err := token.SignedString(i.secret)                // Sign the token with the secret
	if err != nil {
		return "", nil, err
	}
	return signed, claims, nil
}

// ParseJWT parses and validates a token string
func (i *TokenIssuer) ParseJWT(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		return i.secret, nil // Return the secret key for validation
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(i.issuer),
		jwt.WithAudience(i.audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	// Check for parsing errors
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}
	// Validate token and extract claims
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" || claims.ID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
