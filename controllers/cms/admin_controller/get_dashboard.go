package admin_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/houranii/tyreshop/models"
	"github.com/houranii/tyreshop/services"
)

// GetDashboard godoc
// @Summary Admin dashboard
// @Description Catalog, inventory and order totals, revenue of completed orders, low-stock tyres and the latest orders
// @Tags Admin - Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.DashboardResponse}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 403 {object} models.ApiResponse "Forbidden"
// @Router /admin/dashboard [get]
func GetDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Dashboard fetched successfully", services.Dashboard(shop, lowStock)))
}
