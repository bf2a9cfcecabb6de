package customer_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/houranii/tyreshop/models"
	"github.com/houranii/tyreshop/services"
	"github.com/houranii/tyreshop/utils"
	"go.uber.org/zap"
)

// UpdateCustomerDetails godoc
// @Summary Update customer details (CMS)
// @Description Replaces the editable fields. Order totals and join date are kept.
// @Tags Admin - Customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Param request body models.CustomerRequest true "Customer"
// @Success 200 {object} models.ApiResponse{data=models.Customer}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/customers/{id} [put]
func UpdateCustomerDetails(c *gin.Context) {
	var req models.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid customer", utils.FieldErrors(err)))
		return
	}

	cust, err := customers.Update(c.Param("id"), func(cust *models.Customer) error {
		services.ApplyCustomerRequest(cust, req)
		return nil
	})
	if err != nil {
		notFoundOr500(c, "[admin.customers.update]", err)
		return
	}

	logger.Info("[admin.customers.update]", zap.String("id", cust.ID))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Customer updated successfully", cust))
}
