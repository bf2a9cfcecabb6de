package location_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/houranii/tyreshop/models"
)

// GetLocations godoc
// @Summary List fitting and pickup locations
// @Description All locations, optionally only those offering one service type
// @Tags store
// @Produce json
// @Param service_type query string false "Professional Fitting or Self-Pickup"
// @Success 200 {object} models.ApiResponse{data=[]models.Location}
// @Failure 400 {object} models.ApiResponse "Unknown service type"
// @Router /store/locations [get]
func GetLocations(c *gin.Context) {
	st := models.ServiceType(c.Query("service_type"))
	if st != "" && !st.Valid() {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid service type"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Locations fetched successfully", locations.ListByServiceType(st)))
}
