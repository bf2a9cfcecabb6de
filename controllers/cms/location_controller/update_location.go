package location_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/houranii/tyreshop/models"
	"github.com/houranii/tyreshop/utils"
	"go.uber.org/zap"
)

// UpdateLocation godoc
// @Summary Update a location (CMS)
// @Tags Admin - Locations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Location ID"
// @Param request body models.LocationRequest true "Location"
// @Success 200 {object} models.ApiResponse{data=models.Location}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/locations/{id} [put]
func UpdateLocation(c *gin.Context) {
	id := c.Param("id")

	var req models.LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid location", utils.FieldErrors(err)))
		return
	}

	loc, err := shop.Locations.Update(id, req.ToLocation(id))
	if err != nil {
		writeStoreError(c, "[admin.location.update]", err)
		return
	}

	logger.Info("[admin.location.update]", zap.String("id", id))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Location updated successfully", loc))
}
