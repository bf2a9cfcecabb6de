package cms_routes

import (
	"github.com/gin-gonic/gin"
	"github.com/houranii/tyreshop/controllers/cms/order_controller"
)

func SetupOrderRoutes(rg *gin.RouterGroup) {
	order := rg.Group("/orders")
	{
		order.GET("", order_controller.GetOrders)
		order.GET("/stats", order_controller.GetOrderStats)
		order.GET("/:id", order_controller.GetOrderDetailsByID)
		order.GET("/:id/invoice", order_controller.DownloadOrderInvoicePDF)
		order.PATCH("/:id/status", order_controller.UpdateOrderStatus)
	}
}
