package api

import (
	"context"  // Ping timeout
	"net/http" // HTTP status codes
	"time"     // Timeout duration

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Structured logging
	"gorm.io/gorm"                 // GORM ORM library
)

// HealthHandler reports whether the database (and Redis, when configured) answer
func HealthHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		status := gin.H{"database": "ok"}
		healthy := true
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(ctx)
		}
		if err != nil {
			logrus.WithError(err).Error("Database health check failed")
			status["database"] = "unavailable"
			healthy = false
		}
		if rdb != nil {
			status["redis"] = "ok"
			if err := rdb.Ping(ctx).Err(); err != nil {
				logrus.WithError(err).Error("Redis health check failed")
				status["redis"] = "unavailable"
				healthy = false
			}
		}
		if !healthy {
			status["status"] = "unhealthy"
			c.JSON(http.StatusServiceUnavailable, status)
			return
		}
		status["status"] = "healthy"
		c.JSON(http.StatusOK, status)
	}
}
