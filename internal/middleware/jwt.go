package middleware

import (
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"partner_management/internal/utils" // JWT utility functions

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Structured logging
)

// Context keys set by JWTAuthMiddleware
const (
	ClaimsKey = "claims" // *utils.Claims of the caller
	UserIDKey = "userID" // Subject of the token
	TokenKey  = "token"  // Raw bearer token
)

// JWTAuthMiddleware validates bearer tokens and extracts user information.
// A nil revocations disables the revocation check.
func JWTAuthMiddleware(issuer *utils.TokenIssuer, revocations utils.RevocationStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization") // Get Authorization header
		// Check if the Authorization header is present and properly formatted
		if len(authHeader) < 7 || !strings.EqualFold(authHeader[:7], "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Missing or invalid Authorization header"})
			return
		}
		tokenStr := strings.TrimSpace(authHeader[7:]) // Extract the token string
		claims, err := issuer.ParseJWT(tokenStr)      // Parse the JWT token
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}
		if revocations != nil {
			revoked, err := revocations.IsRevoked(c.Request.Context(), claims.ID)
			if err != nil {
				// Fail closed when the revocation store is unreachable
				logrus.WithFields(logrus.Fields{
					"jti":   claims.ID,
					"error": err.Error(),
				}).Error("Revocation lookup failed")
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
				return
			}
			if revoked {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
				return
			}
		}
		c.Set(ClaimsKey, claims)         // Store claims in context
		c.Set(UserIDKey, claims.Subject) // Store userID in context
		c.Set(TokenKey, tokenStr)        // Store raw token in context
		c.Next()                         // Proceed to the next handler
	}
}

// ClaimsFrom returns the claims stored by JWTAuthMiddleware
func ClaimsFrom(c *gin.Context) (*utils.Claims, bool) {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*utils.Claims)
	return claims, ok
}
