package location_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/houranii/tyreshop/middleware"
	"github.com/houranii/tyreshop/models"
	"github.com/houranii/tyreshop/utils"
	"go.uber.org/zap"
)

// CreateLocation godoc
// @Summary Create a location (CMS)
// @Tags Admin - Locations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.LocationRequest true "Location"
// @Success 201 {object} models.ApiResponse{data=models.Location}
// @Failure 400 {object} models.ApiResponse
// @Router /admin/locations [post]
func CreateLocation(c *gin.Context) {
	var req models.LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid location", utils.FieldErrors(err)))
		return
	}

	loc, err := shop.Locations.Create(req.ToLocation(""))
	if err != nil {
		writeStoreError(c, "[admin.location.create]", err)
		return
	}

	c.Set(middleware.ActivityResourceIDKey, loc.ID)
	logger.Info("[admin.location.create]", zap.String("id", loc.ID), zap.String("name", loc.Name))
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Location created successfully", loc))
}
