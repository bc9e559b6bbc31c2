package api

import (
	"net/http" // HTTP status codes
	"time"     // Timestamps

	"partner_management/internal/domain"     // Importing domain models
	"partner_management/internal/repository" // User storage

	"github.com/gin-gonic/gin" // Gin web framework
)

// AdminUserView is a user as shown to administrators
type AdminUserView struct {
	UserView
	Roles     []string  `json:"roles"`     // Role codes
	CreatedAt time.Time `json:"createdAt"` // Registration time
}

// ListUsersHandler returns a page of registered users (admin only)
func ListUsersHandler(users repository.UserRepository, maxPageSize int) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := users.List(c.Request.Context(), parseListParams(c, maxPageSize))
		if err != nil {
			respondError(c, err, "list users")
			return
		}
		c.JSON(http.StatusOK, repository.Page[AdminUserView]{
			Data:       toAdminViews(page.Data),
			Page:       page.Page,
			PageSize:   page.PageSize,
			Total:      page.Total,
			TotalPages: page.TotalPages,
		})
	}
}

func toAdminViews(users []domain.User) []AdminUserView {
	views := make([]AdminUserView, 0, len(users))
	for i := range users {
		u := &users[i]
		views = append(views, AdminUserView{
			UserView:  viewOf(u),
			Roles:     u.RoleNames(),
			CreatedAt: u.CreatedAt.UTC(),
		})
	}
	return views
}
