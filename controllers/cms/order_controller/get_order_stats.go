package order_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/houranii/tyreshop/models"
	"github.com/houranii/tyreshop/services"
)

// GetOrderStats godoc
// @Summary Order statistics
// @Tags Admin - Orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.OrderStatsResponse}
// @Router /admin/orders/stats [get]
func GetOrderStats(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order stats fetched successfully", services.OrderStats(orders.List())))
}
