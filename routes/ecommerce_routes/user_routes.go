package ecommerce_routes

import (
	"github.com/gin-gonic/gin"
	"github.com/houranii/tyreshop/controllers/ecommerce/user_controller/order_controller"
	"github.com/houranii/tyreshop/middleware"
)

// SetupUserRoutes sets up the logged-in user's order history
func SetupUserRoutes(router *gin.RouterGroup) {
	user := router.Group("/user")
	user.Use(middleware.RequireAuth()) // All routes require auth
	{
		user.GET("/orders", order_controller.GetOrders)
		user.GET("/orders/:id", order_controller.GetOrderDetails)
	}
}
