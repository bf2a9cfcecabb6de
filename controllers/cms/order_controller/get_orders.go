package order_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/houranii/tyreshop/models"
	"github.com/houranii/tyreshop/services"
	"github.com/houranii/tyreshop/utils"
)

// GetOrders godoc
// @Summary List orders (CMS)
// @Description Search id, customer and email. Newest first unless sorted otherwise.
// @Tags Admin - Orders
// @Produce json
// @Security BearerAuth
// @Param search query string false "Order id, customer name or email contains"
// @Param status query string false "Status" Enums(Pending, Processing, Completed, Cancelled)
// @Param sort_by query string false "Sort field" Enums(date, total)
// @Param sort_order query string false "Sort direction" Enums(asc, desc)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} models.ApiResponse{data=[]models.OrderHistoryResponse,meta=models.Pagination}
// @Failure 400 {object} models.ApiResponse
// @Router /admin/orders [get]
func GetOrders(c *gin.Context) {
	page, limit := utils.ParsePagination(c)

	list, err := services.ListOrders(orders.List(), c.Query("search"), c.Query("status"), c.Query("sort_by"), c.Query("sort_order"))
	if err != nil {
		if errors.Is(err, services.ErrInvalidSort) || errors.Is(err, services.ErrInvalidFilter) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch orders"))
		return
	}

	rows := make([]models.OrderHistoryResponse, 0, limit)
	for _, o := range utils.Paginate(list, page, limit) {
		rows = append(rows, models.NewOrderHistoryResponse(o))
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Orders fetched successfully", rows, models.NewPagination(page, limit, len(list))))
}
