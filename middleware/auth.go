package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/houranii/tyreshop/models"
	"github.com/houranii/tyreshop/services"
	"github.com/houranii/tyreshop/utils"
	"go.uber.org/zap"
)

const (
	AuthCookie = "auth_token"
	userKey    = "user"
)

// tokenFromRequest prefers the auth cookie and falls back to a Bearer header.
func tokenFromRequest(c *gin.Context) string {
	if token, err := c.Cookie(AuthCookie); err == nil && token != "" {
		return token
	}
	token, err := utils.ExtractTokenFromHeader(c.GetHeader("Authorization"))
	if err != nil {
		return ""
	}
	return token
}

// Authenticate resolves the caller from the auth cookie or Authorization
// header when one is present. Anonymous requests pass through, and so do
// requests with an invalid or expired token: the stale cookie is cleared
// and the caller continues as a visitor. Use RequireAuth to reject them.
func Authenticate(auth *services.AuthService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" {
			c.Next()
			return
		}

		user, err := auth.Authenticate(token)
		if err != nil {
			logger.Debug("[auth] ignoring invalid token", zap.String("path", c.Request.URL.Path), zap.Error(err))
			if _, cerr := c.Cookie(AuthCookie); cerr == nil {
				c.SetCookie(AuthCookie, "", -1, "/", "", c.Request.TLS != nil, true)
			}
			c.Next()
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// RequireAuth rejects requests Authenticate could not attach a user to.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetUser(c); !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authentication required"))
			c.Abort()
			return
		}
		c.Next()
	}
}

func GetUser(c *gin.Context) (models.User, bool) {
	v, exists := c.Get(userKey)
	if !exists {
		return models.User{}, false
	}
	user, ok := v.(models.User)
	return user, ok
}

// GetUserIDFromContext returns the authenticated user's id.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	user, ok := GetUser(c)
	if !ok {
		return "", false
	}
	return user.ID, true
}
