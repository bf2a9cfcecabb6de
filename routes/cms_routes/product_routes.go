package cms_routes

import (
	"github.com/gin-gonic/gin"
	"github.com/houranii/tyreshop/controllers/cms/product_controller"
)

func SetupProductRoutes(rg *gin.RouterGroup) {
	product := rg.Group("/products")
	{
		product.GET("", product_controller.GetProducts)
		product.GET("/stats", product_controller.GetProductStats)
		product.GET("/:id", product_controller.GetProductByID)

		product.POST("", product_controller.CreateProduct)
		product.PATCH("/:id", product_controller.UpdateProduct)
		product.DELETE("/:id", product_controller.DeleteProduct)
	}
}
