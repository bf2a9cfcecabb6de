package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/houranii/tyreshop/models"
	"go.uber.org/zap"
)

// RequireAdmin lets through only users whose record has is_admin set.
// Must run after Authenticate.
func RequireAdmin(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := GetUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - no token provided"))
			c.Abort()
			return
		}

		if !user.IsAdmin {
			logger.Warn("[auth] non-admin attempted admin action",
				zap.String("user", user.ID),
				zap.String("path", c.Request.URL.Path),
			)
			c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Forbidden - admin access required"))
			c.Abort()
			return
		}

		c.Next()
	}
}
