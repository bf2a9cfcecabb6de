package admin_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/houranii/tyreshop/models"
	"github.com/houranii/tyreshop/utils"
	"go.uber.org/zap"
)

// GetAllAdminActivityLogs godoc
// @Summary Get all admin activities
// @Description Recent admin changes, newest first
// @Tags Admin - Management
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Items per page (default: 10, max: 100)"
// @Param admin_id query string false "Filter by admin ID"
// @Param resource_type query string false "Filter by resource" Enums(product, order, location, customer)
// @Success 200 {object} models.ApiResponse{data=[]models.ActivityLog,meta=models.Pagination}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Router /admin/activity [get]
func GetAllAdminActivityLogs(c *gin.Context) {
	filter := models.ActivityFilter{
		ResourceType: c.Query("resource_type"),
		AdminID:      c.Query("admin_id"),
	}
	logger.Debug("[admin.all-activity] request", zap.String("resource_type", filter.ResourceType), zap.String("admin_id", filter.AdminID))

	listActivity(c, filter)
}

func listActivity(c *gin.Context, filter models.ActivityFilter) {
	page, limit := utils.ParsePagination(c)
	logs := activity.List(filter)

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Activity logs fetched successfully",
		utils.Paginate(logs, page, limit), models.NewPagination(page, limit, len(logs))))
}
