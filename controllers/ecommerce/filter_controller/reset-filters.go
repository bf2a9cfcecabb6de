package filter_controller

import (
	"github.com/gin-gonic/gin"
	"github.com/houranii/tyreshop/services"
)

// ResetFilters godoc
// @Summary Reset all filters
// @Description Clears every facet and the query; the full catalog and its options come back
// @Tags store
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.FilterStateResponse}
// @Router /store/filters/reset [post]
func ResetFilters(c *gin.Context) {
	withFilter(c, "Filters reset", func(s services.SessionState) error {
		services.RecordRecompute("reset", s.Filter.Reset())
		return nil
	})
}
