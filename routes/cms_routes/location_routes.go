package cms_routes

import (
	"github.com/gin-gonic/gin"
	"github.com/houranii/tyreshop/controllers/cms/location_controller"
)

func SetupLocationRoutes(rg *gin.RouterGroup) {
	location := rg.Group("/locations")
	{
		location.GET("", location_controller.GetLocations)
		location.GET("/:id", location_controller.GetLocationByID)

		location.POST("", location_controller.CreateLocation)
		location.PUT("/:id", location_controller.UpdateLocation)
		location.DELETE("/:id", location_controller.DeleteLocation)
	}
}
