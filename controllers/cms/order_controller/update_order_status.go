package order_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/houranii/tyreshop/models"
	"github.com/houranii/tyreshop/services"
	"github.com/houranii/tyreshop/store"
	"github.com/houranii/tyreshop/utils"
	"go.uber.org/zap"
)

// UpdateOrderStatus godoc
// @Summary Update order status (CMS)
// @Description admin_notes is optional for all statuses, but required when cancelling. Completing an order marks a pending payment as paid.
// @Tags Admin - Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param payload body models.UpdateOrderStatusRequest true "Update payload"
// @Success 200 {object} models.ApiResponse{data=models.Order}
// @Failure 400 {object} models.ApiResponse "Bad request"
// @Failure 404 {object} models.ApiResponse "Order not found"
// @Router /admin/orders/{id}/status [patch]
func UpdateOrderStatus(c *gin.Context) {
	id := c.Param("id")
	logger.Debug("[admin.order.update] start", zap.String("id", id))

	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Debug("[admin.order.update] bad request", zap.Error(err))
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid request body", utils.FieldErrors(err)))
		return
	}

	order, err := services.UpdateOrderStatus(orders, id, req, now())
	switch {
	case err == nil:
	case errors.Is(err, store.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
		return
	case errors.Is(err, services.ErrInvalidStatus), errors.Is(err, services.ErrCancelNotesRequired):
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	default:
		logger.Error("[admin.order.update] failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Internal server error"))
		return
	}

	logger.Info("[admin.order.update]",
		zap.String("id", id),
		zap.String("status", string(order.Status)),
		zap.String("payment", string(order.PaymentStatus)),
	)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order status updated successfully", order))
}
