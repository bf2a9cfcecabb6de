package filter_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/houranii/tyreshop/models"
)

// GetFilterMetadata godoc
// @Summary Get all filter metadata
// @Description Unconstrained facet options, vehicle types and price range of the current catalog
// @Tags store
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.FilterMetadata}
// @Router /store/filters/metadata [get]
func GetFilterMetadata(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched successfully", catalog.Metadata()))
}
