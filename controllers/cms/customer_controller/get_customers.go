package customer_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/houranii/tyreshop/models"
	"github.com/houranii/tyreshop/services"
	"github.com/houranii/tyreshop/utils"
)

// GetCustomers godoc
// @Summary Get customers (CMS)
// @Description Search name, email, id and phone. highValue keeps customers who spent over 2000, recent those who ordered in the last 30 days.
// @Tags Admin - Customers
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param q query string false "Search"
// @Param filter query string false "Filter" Enums(all, highValue, recent)
// @Param sort query string false "Sort" Enums(newest, oldest, nameAsc, nameDesc, mostOrders, highestSpend)
// @Success 200 {object} models.ApiResponse{data=[]models.Customer,meta=models.Pagination}
// @Failure 400 {object} models.ApiResponse
// @Router /admin/customers [get]
func GetCustomers(c *gin.Context) {
	page, limit := utils.ParsePagination(c)

	list, err := services.ListCustomers(customers.List(), c.Query("q"), c.Query("filter"), c.Query("sort"), now())
	if err != nil {
		if errors.Is(err, services.ErrInvalidSort) || errors.Is(err, services.ErrInvalidFilter) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch customers"))
		return
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Customers fetched successfully",
		utils.Paginate(list, page, limit), models.NewPagination(page, limit, len(list))))
}
