package filter_controller

import (
	"github.com/gin-gonic/gin"
	"github.com/houranii/tyreshop/services"
)

// ClearFilterFacet godoc
// @Summary Clear one filter facet
// @Tags store
// @Produce json
// @Param facet path string true "width | profile | rim_size | vehicle_type | brand | query"
// @Success 200 {object} models.ApiResponse{data=models.FilterStateResponse}
// @Failure 400 {object} models.ApiResponse
// @Router /store/filters/{facet} [delete]
func ClearFilterFacet(c *gin.Context) {
	facet := c.Param("facet")
	withFilter(c, "Filter cleared", func(s services.SessionState) error {
		res, err := services.ApplyFacet(s.Filter, facet, nil)
		if err != nil {
			return err
		}
		services.RecordRecompute(facet, res)
		return nil
	})
}
