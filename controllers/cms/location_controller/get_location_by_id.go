package location_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/houranii/tyreshop/models"
)

// GetLocationByID godoc
// @Summary Get a location (CMS)
// @Tags Admin - Locations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Location ID"
// @Success 200 {object} models.ApiResponse{data=models.Location}
// @Failure 404 {object} models.ApiResponse
// @Router /admin/locations/{id} [get]
func GetLocationByID(c *gin.Context) {
	loc, err := shop.Locations.Get(c.Param("id"))
	if err != nil {
		writeStoreError(c, "[admin.location.get]", err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Location fetched successfully", loc))
}
