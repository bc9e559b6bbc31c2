package client

import (
	"context"
	"net/http"
)

// User is the account projection returned by login and /me
type User struct {
	ID       string   `json:"id"`
	Email    string   `json:"email"`
	UserName string   `json:"userName"`
	FullName *string  `json:"fullName"`
	Roles    []string `json:"roles,omitempty"`
}

// LoginResult is the body of a successful login
type LoginResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// RegisterRequest is the body of Register
type RegisterRequest struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	FullName *string `json:"fullName,omitempty"`
}

// AuthService covers /api/auth
type AuthService struct{ c *Client }

// Register creates an account. Validation failures carry one message per problem in APIError.Errors.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) error {
	return s.c.do(ctx, http.MethodPost, "/api/auth/register", nil, req, nil)
}

// Login authenticates and stores the issued token for later calls
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	var res LoginResult
	body := map[string]string{"email": email, "password": password}
	if err := s.c.do(ctx, http.MethodPost, "/api/auth/login", nil, body, &res); err != nil {
		return nil, err
	}
	s.c.tokens.SetToken(res.Token)
	return &res, nil
}

// Logout revokes the token server-side and forgets it locally, even if the server call fails
func (s *AuthService) Logout(ctx context.Context) error {
	if s.c.tokens.Token() == "" {
		return nil
	}
	err := s.c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil, nil)
	s.c.tokens.Clear()
	return err
}

// Me returns the authenticated account
func (s *AuthService) Me(ctx context.Context) (*User, error) {
	var u User
	if err := s.c.do(ctx, http.MethodGet, "/api/auth/me", nil, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
