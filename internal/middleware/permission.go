package middleware

import (
	"log/slog"
	"net/http"

	portssvc "github.com/dchu15/store_management_app/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// RequirePermission creates a Gin middleware handler that rejects requests
// from users without the given resource/action capability. It must run after
// AuthMiddleware.
func RequirePermission(userService portssvc.UserAuthSvc, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		userID, ok := GetUserIDFromContext(c)
		if !ok {
			logger.Warn("Permission check without authenticated user",
				slog.String("resource", resource), slog.String("action", action))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		has, err := userService.HasPermission(c.Request.Context(), userID, resource, action)
		if err != nil {
			logger.Error("Permission check failed",
				slog.String("resource", resource), slog.String("action", action), slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify permissions"})
			return
		}
		if !has {
			logger.Warn("Permission denied",
				slog.String("resource", resource), slog.String("action", action))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}

		c.Next()
	}
}
