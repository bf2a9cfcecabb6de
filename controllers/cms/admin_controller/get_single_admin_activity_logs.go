package admin_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/houranii/tyreshop/middleware"
	"github.com/houranii/tyreshop/models"
)

// GetMyActivityLogs godoc
// @Summary Get my activities
// @Description Changes made by the calling admin, newest first
// @Tags Admin - Management
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Items per page (default: 10, max: 100)"
// @Param resource_type query string false "Filter by resource" Enums(product, order, location, customer)
// @Success 200 {object} models.ApiResponse{data=[]models.ActivityLog,meta=models.Pagination}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Router /admin/activity/me [get]
func GetMyActivityLogs(c *gin.Context) {
	adminID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	listActivity(c, models.ActivityFilter{ResourceType: c.Query("resource_type"), AdminID: adminID})
}
