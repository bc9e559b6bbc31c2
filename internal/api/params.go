package api

import (
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"partner_management/internal/middleware" // Context keys
	"partner_management/internal/repository" // Pagination parameters

	"github.com/gin-gonic/gin" // Gin web framework
)

// parseListParams reads page, pageSize, search and status. Invalid numbers fall back to defaults.
func parseListParams(c *gin.Context, maxPageSize int) repository.ListParams {
	params := repository.ListParams{
		Page:     repository.DefaultPage,     // Default page number
		PageSize: repository.DefaultPageSize, // Default page size
		Search:   c.Query("search"),          // Substring filter
		Status:   c.Query("status"),          // Exact status filter
	}
	if p := c.Query("page"); p != "" {
		if v, err := strconv.Atoi(p); err == nil && v > 0 {
			params.Page = v // Set page if valid, clamped below
		}
	}
	if ps := c.Query("pageSize"); ps != "" {
		if v, err := strconv.Atoi(ps); err == nil && v > 0 {
			params.PageSize = v // Set page size if valid, capped below
		}
	}
	return params.Normalize(maxPageSize)
}

// parseID reads a positive numeric path parameter, writing a 400 when it is malformed
func parseID(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || v == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid " + name})
		return 0, false
	}
	return uint(v), true
}

// currentUserID returns the token subject, if any
func currentUserID(c *gin.Context) *string {
	if id := c.GetString(middleware.UserIDKey); id != "" {
		return &id
	}
	return nil
}
