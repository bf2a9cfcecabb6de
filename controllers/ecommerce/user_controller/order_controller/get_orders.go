package order_controller

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/houranii/tyreshop/middleware"
	"github.com/houranii/tyreshop/models"
	"github.com/houranii/tyreshop/utils"
)

// GetOrders godoc
// @Summary Get order history
// @Description Orders placed by the authenticated user, newest first
// @Tags User - Orders
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 100)" default(10)
// @Success 200 {object} models.ApiResponse{data=[]models.OrderHistoryResponse,meta=models.Pagination}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Router /user/orders [get]
func GetOrders(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	page, limit := utils.ParsePagination(c)

	list := orders.ListByUser(userID)
	sort.SliceStable(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })

	history := make([]models.OrderHistoryResponse, 0, limit)
	for _, o := range utils.Paginate(list, page, limit) {
		history = append(history, models.NewOrderHistoryResponse(o))
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Orders fetched successfully", history, models.NewPagination(page, limit, len(list))))
}
