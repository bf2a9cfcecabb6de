package customer_controller

import (
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/houranii/tyreshop/models"
	"github.com/houranii/tyreshop/utils"
)

// GetCustomerOrders godoc
// @Summary Orders placed with a customer's email (CMS)
// @Tags Admin - Customers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} models.ApiResponse{data=[]models.OrderHistoryResponse,meta=models.Pagination}
// @Failure 404 {object} models.ApiResponse
// @Router /admin/customers/{id}/orders [get]
func GetCustomerOrders(c *gin.Context) {
	cust, err := customers.Get(c.Param("id"))
	if err != nil {
		notFoundOr500(c, "[admin.customers.orders]", err)
		return
	}

	page, limit := utils.ParsePagination(c)

	var matched []models.Order
	for _, o := range orders.List() {
		if strings.EqualFold(o.Email, cust.Email) {
			matched = append(matched, o)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })

	rows := make([]models.OrderHistoryResponse, 0, limit)
	for _, o := range utils.Paginate(matched, page, limit) {
		rows = append(rows, models.NewOrderHistoryResponse(o))
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Customer orders fetched successfully", rows, models.NewPagination(page, limit, len(matched))))
}
