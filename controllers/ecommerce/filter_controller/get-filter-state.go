package filter_controller

import "github.com/gin-gonic/gin"

// GetFilterState godoc
// @Summary Get the visitor's filter state
// @Description Current selection, available options and matching tyres for this session
// @Tags store
// @Produce json
// @Param X-Session-ID header string false "Session id for clients without cookies"
// @Success 200 {object} models.ApiResponse{data=models.FilterStateResponse}
// @Router /store/filters [get]
func GetFilterState(c *gin.Context) {
	withFilter(c, "Filter state fetched successfully", nil)
}
