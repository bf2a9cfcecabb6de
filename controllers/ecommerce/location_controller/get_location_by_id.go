package location_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/houranii/tyreshop/models"
	"github.com/houranii/tyreshop/store"
	"go.uber.org/zap"
)

// GetLocationByID godoc
// @Summary Get a location
// @Tags store
// @Produce json
// @Param id path string true "Location ID"
// @Success 200 {object} models.ApiResponse{data=models.Location}
// @Failure 404 {object} models.ApiResponse
// @Router /store/locations/{id} [get]
func GetLocationByID(c *gin.Context) {
	loc, err := locations.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrLocationNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Location not found"))
			return
		}
		logger.Error("[location.get] failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch location"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Location fetched successfully", loc))
}
