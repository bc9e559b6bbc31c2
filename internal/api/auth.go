package api

import (
	"errors"   // Error inspection
	"net/http" // HTTP status codes
	"strings"  // String manipulation
	"sync"     // Lazy dummy hash

	"partner_management/internal/domain"     // Importing domain models
	"partner_management/internal/middleware" // Token claims
	"partner_management/internal/repository" // User storage
	"partner_management/internal/utils"      // Utility functions

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Structured logging
)

// Request struct for registration
type RegisterRequest struct {
	Email    string  `json:"email" binding:"required,email,max=256"` // Email is also the username
	Password string  `json:"password" binding:"required"`            // Checked against the password policy
	FullName *string `json:"fullName" binding:"omitempty,max=200"`   // Optional display name
}

// Request struct for login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`    // Email must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// UserView is the public projection of a user
type UserView struct {
	ID       string   `json:"id"`              // User ID
	Email    string   `json:"email"`           // Email address
	UserName string   `json:"userName"`        // Login name
	FullName *string  `json:"fullName"`        // Display name
	Roles    []string `json:"roles,omitempty"` // Role codes, only on /me
}

// Response struct for login
type AuthResponse struct {
	Token string   `json:"token"` // JWT token
	User  UserView `json:"user"`  // Authenticated user
}

const invalidCredentials = "Invalid email or password"

// fallbackDummyHash is a well-formed bcrypt hash at the default cost
const fallbackDummyHash = "$2a$10$XajjQvNhvvRt5GSeFk1xFeyqRrsxkhBkUiQeg0dt.wU1qD4aFDcga"

// Compared against when the email is unknown so both failures cost one bcrypt check
var dummyHash = newDummyHash(utils.HashPassword)

func newDummyHash(hash func(string) (string, error)) func() string {
	return sync.OnceValue(func() string {
		h, err := hash("Dummy#Passw0rd")
		if err != nil {
			logrus.WithError(err).Error("Failed to hash login decoy, using fallback")
			return fallbackDummyHash
		}
		return h
	})
}

func viewOf(u *domain.User) UserView {
	return UserView{ID: u.ID, Email: u.Email, UserName: u.UserName, FullName: u.FullName}
}

// RegisterHandler creates an account with the User role
func RegisterHandler(users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest // Bind JSON request to struct
		if !bindJSON(c, &req) {
			return
		}
		// Validate password against the policy
		if problems := utils.ValidatePassword(req.Password); len(problems) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "errors": problems})
			return
		}
		hash, err := utils.HashPassword(req.Password) // Hash the password
		if err != nil {
			respondError(c, err, "register")
			return
		}
		email := strings.ToLower(strings.TrimSpace(req.Email))
		user := domain.User{Email: email, UserName: email, PasswordHash: hash, FullName: req.FullName}
		// Attempt to create the user, duplicates come back as validation errors
		if err := users.Create(c.Request.Context(), &user, domain.RoleUser); err != nil {
			respondError(c, err, "register")
			return
		}
		logrus.WithField("user_id", user.ID).Info("User registered")
		c.JSON(http.StatusOK, gin.H{"message": "User registered successfully"})
	}
}

// LoginHandler verifies credentials and issues a token
func LoginHandler(users repository.UserRepository, issuer *utils.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if !bindJSON(c, &req) {
			return
		}
		user, err := users.FindByEmail(c.Request.Context(), req.Email)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			respondError(c, err, "login")
			return
		}
		// Unknown email and wrong password get the same answer
		if user == nil {
			utils.CheckPassword(dummyHash(), req.Password)
			c.JSON(http.StatusUnauthorized, gin.H{"message": invalidCredentials})
			return
		}
		if !utils.CheckPassword(user.PasswordHash, req.Password) {
			logrus.WithField("user_id", user.ID).Warn("Failed login attempt")
			c.JSON(http.StatusUnauthorized, gin.H{"message": invalidCredentials})
			return
		}
		token, _, err := issuer.GenerateJWT(user.ID, user.Email, user.UserName, user.RoleNames())
		if err != nil {
			respondError(c, err, "login")
			return
		}
		c.JSON(http.StatusOK, AuthResponse{Token: token, User: viewOf(user)})
	}
}

// LogoutHandler revokes the presented token until it expires. A nil store makes it a no-op.
func LogoutHandler(revocations utils.RevocationStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := middleware.ClaimsFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}
		if revocations != nil {
			if err := revocations.Revoke(c.Request.Context(), claims.ID, claims.ExpiresAt.Time); err != nil {
				respondError(c, err, "logout")
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
	}
}

// MeHandler returns the caller's account
func MeHandler(users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := users.FindByID(c.Request.Context(), c.GetString(middleware.UserIDKey))
		if err != nil {
			respondError(c, err, "me")
			return
		}
		view := viewOf(user)
		view.Roles = user.RoleNames()
		c.JSON(http.StatusOK, view)
	}
}
