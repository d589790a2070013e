package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resumebuilder-backend/internal/shared/server/middleware"
	"resumebuilder-backend/internal/shared/server/respond"
	"resumebuilder-backend/internal/users"
)

// registerMeRoutes attaches the /me endpoint.
func registerMeRoutes(rg *gin.RouterGroup, userSvc *users.Service) {
	rg.GET("/me", func(c *gin.Context) {
		userID := middleware.UserIDFromContext(c)
		if userID == 0 {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "Authentication required", nil)
			return
		}

		user, err := userSvc.GetByID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, users.ErrNotFound) {
				respond.Error(c, http.StatusUnauthorized, "unauthorized", "Authentication required", nil)
				return
			}
			respond.Error(c, http.StatusInternalServerError, "internal", "Failed to load account", nil)
			return
		}

		respond.OK(c, user)
	})
}
