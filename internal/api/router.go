package api

import (
	"time" // CORS preflight cache

	"partner_management/internal/domain"     // Role codes
	"partner_management/internal/middleware" // Custom middleware
	"partner_management/internal/repository" // Storage
	"partner_management/internal/utils"      // Token issuer and revocation

	"github.com/gin-contrib/cors"  // CORS middleware
	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// Deps holds everything the HTTP layer needs
type Deps struct {
	DB             *gorm.DB              // Database handle
	Redis          *redis.Client         // Optional, reported by /health
	Issuer         *utils.TokenIssuer    // Signs and verifies tokens
	Revocations    utils.RevocationStore // Optional logout denylist
	MaxPageSize    int                   // Upper bound for pageSize
	CORSOrigins    []string              // Allowed browser origins, empty disables CORS
	TrustedProxies []string              // Proxies whose forwarding headers are trusted
}

// NewRouter wires middleware and routes
func NewRouter(d Deps) (*gin.Engine, error) {
	useJSONFieldNames()

	r := gin.New() // Gin router instance
	r.Use(gin.Recovery(), middleware.RequestLogger())
	if err := r.SetTrustedProxies(d.TrustedProxies); err != nil {
		return nil, err
	}
	if len(d.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:  d.CORSOrigins,
			AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
			ExposeHeaders: []string{"Location", middleware.RequestIDHeader},
			MaxAge:        12 * time.Hour,
		}))
	}

	users := repository.NewGormUserRepository(d.DB)
	partners := repository.NewGormPartnerRepository(d.DB)
	events := repository.NewGormEventRepository(d.DB)
	requireAuth := middleware.JWTAuthMiddleware(d.Issuer, d.Revocations)

	r.GET("/health", HealthHandler(d.DB, d.Redis)) // Liveness and dependency check

	api := r.Group("/api")

	// Auth routes
	auth := api.Group("/auth")
	auth.POST("/register", RegisterHandler(users))                  // Registration endpoint
	auth.POST("/login", LoginHandler(users, d.Issuer))              // Login endpoint
	auth.POST("/logout", requireAuth, LogoutHandler(d.Revocations)) // Logout endpoint
	auth.GET("/me", requireAuth, MeHandler(users))                  // Current user endpoint

	// Partner routes (protected by JWT)
	partnerGroup := api.Group("/partners", requireAuth)
	partnerGroup.GET("", ListPartnersHandler(partners, d.MaxPageSize)) // List partners endpoint
	partnerGroup.GET("/:id", GetPartnerHandler(partners))              // Get partner endpoint
	partnerGroup.POST("", CreatePartnerHandler(partners))              // Create partner endpoint
	partnerGroup.PUT("/:id", UpdatePartnerHandler(partners))           // Update partner endpoint
	partnerGroup.DELETE("/:id", DeletePartnerHandler(partners))        // Delete partner endpoint

	// Event routes (protected by JWT)
	eventGroup := api.Group("/events", requireAuth)
	eventGroup.GET("", ListEventsHandler(events, d.MaxPageSize))                     // List events endpoint
	eventGroup.GET("/:id", GetEventHandler(events))                                  // Get event endpoint
	eventGroup.POST("", CreateEventHandler(events))                                  // Create event endpoint
	eventGroup.PUT("/:id", UpdateEventHandler(events))                               // Update event endpoint
	eventGroup.DELETE("/:id", DeleteEventHandler(events))                            // Delete event endpoint
	eventGroup.GET("/:id/partners", ListEventPartnersHandler(events))                // Event partners endpoint
	eventGroup.POST("/:id/partners", AddEventPartnerHandler(events))                 // Link partner endpoint
	eventGroup.DELETE("/:id/partners/:partnerId", RemoveEventPartnerHandler(events)) // Unlink partner endpoint

	// Admin routes (protected, admin only)
	adminGroup := api.Group("/admin", requireAuth, middleware.RequireRole(domain.RoleAdmin))
	adminGroup.GET("/users", ListUsersHandler(users, d.MaxPageSize)) // List users endpoint

	return r, nil
}
