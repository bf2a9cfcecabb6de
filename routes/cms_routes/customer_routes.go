package cms_routes

import (
	"github.com/gin-gonic/gin"
	"github.com/houranii/tyreshop/controllers/cms/customer_controller"
)

func SetupCustomerRoutes(rg *gin.RouterGroup) {
	customer := rg.Group("/customers")
	{
		customer.GET("", customer_controller.GetCustomers)
		customer.GET("/stats", customer_controller.GetCustomersStats)
		customer.GET("/:id", customer_controller.GetCustomerDetailsByID)
		customer.GET("/:id/orders", customer_controller.GetCustomerOrders)

		customer.POST("", customer_controller.CreateCustomer)
		customer.PUT("/:id", customer_controller.UpdateCustomerDetails)
		customer.DELETE("/:id", customer_controller.DeleteCustomer)
	}
}
