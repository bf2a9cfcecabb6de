package customer_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/houranii/tyreshop/middleware"
	"github.com/houranii/tyreshop/models"
	"github.com/houranii/tyreshop/services"
	"github.com/houranii/tyreshop/utils"
	"go.uber.org/zap"
)

// CreateCustomer godoc
// @Summary Create a customer (CMS)
// @Description New customers start with no orders and join today
// @Tags Admin - Customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CustomerRequest true "Customer"
// @Success 201 {object} models.ApiResponse{data=models.Customer}
// @Failure 400 {object} models.ApiResponse
// @Router /admin/customers [post]
func CreateCustomer(c *gin.Context) {
	var req models.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid customer", utils.FieldErrors(err)))
		return
	}

	cust, err := customers.Create(services.NewCustomerFromRequest(req, now()))
	if err != nil {
		logger.Error("[admin.customers.create] failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create customer"))
		return
	}

	c.Set(middleware.ActivityResourceIDKey, cust.ID)
	logger.Info("[admin.customers.create]", zap.String("id", cust.ID))
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Customer created successfully", cust))
}
