package customer_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/houranii/tyreshop/models"
)

// GetCustomerDetailsByID godoc
// @Summary Get customer details (CMS)
// @Tags Admin - Customers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Success 200 {object} models.ApiResponse{data=models.Customer}
// @Failure 404 {object} models.ApiResponse
// @Router /admin/customers/{id} [get]
func GetCustomerDetailsByID(c *gin.Context) {
	cust, err := customers.Get(c.Param("id"))
	if err != nil {
		notFoundOr500(c, "[admin.customers.get]", err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Customer fetched successfully", cust))
}
