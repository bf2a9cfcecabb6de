package location_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/houranii/tyreshop/models"
	"github.com/houranii/tyreshop/services"
	"go.uber.org/zap"
)

// DeleteLocation godoc
// @Summary Delete a location (CMS)
// @Description Refused while any tyre still has stock at the location
// @Tags Admin - Locations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Location ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse "Location still holds stock"
// @Router /admin/locations/{id} [delete]
func DeleteLocation(c *gin.Context) {
	id := c.Param("id")
	if err := services.DeleteLocation(shop, id); err != nil {
		writeStoreError(c, "[admin.location.delete]", err)
		return
	}

	logger.Info("[admin.location.delete]", zap.String("id", id))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Location deleted successfully", gin.H{"id": id}))
}
