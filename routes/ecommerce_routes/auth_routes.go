package ecommerce_routes

import (
	"github.com/gin-gonic/gin"
	"github.com/houranii/tyreshop/controllers/ecommerce/auth_controller"
)

// SetupAuthRoutes sets up all authentication routes. Login and logout skip
// authenticate so a stale cookie cannot lock a visitor out.
func SetupAuthRoutes(router *gin.RouterGroup, authenticate gin.HandlerFunc) {
	auth := router.Group("/auth")
	{
		auth.POST("/login", auth_controller.Login)
		auth.POST("/logout", auth_controller.Logout)
		auth.GET("/me", authenticate, auth_controller.Me)
	}
}
