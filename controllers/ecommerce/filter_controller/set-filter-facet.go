package filter_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/houranii/tyreshop/middleware"
	"github.com/houranii/tyreshop/models"
	"github.com/houranii/tyreshop/services"
	"go.uber.org/zap"
)

// SetFilterFacet godoc
// @Summary Set one filter facet
// @Description Sets width, profile, rim_size, vehicle_type, brand or query. A null value clears the facet. Tyres and options are recomputed together.
// @Tags store
// @Accept json
// @Produce json
// @Param facet path string true "width | profile | rim_size | vehicle_type | brand | query"
// @Param request body models.SetFacetRequest true "New value"
// @Success 200 {object} models.ApiResponse{data=models.FilterStateResponse}
// @Failure 400 {object} models.ApiResponse
// @Router /store/filters/{facet} [put]
func SetFilterFacet(c *gin.Context) {
	facet := c.Param("facet")

	var req models.SetFacetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	withFilter(c, "Filter updated", func(s services.SessionState) error {
		res, err := services.ApplyFacet(s.Filter, facet, req.Value)
		if err != nil {
			return err
		}
		services.RecordRecompute(facet, res)
		logger.Debug("[store.filters] facet set",
			zap.String("session", middleware.SessionID(c)),
			zap.String("facet", facet),
			zap.Int("matches", len(res.Tyres)),
		)
		return nil
	})
}
