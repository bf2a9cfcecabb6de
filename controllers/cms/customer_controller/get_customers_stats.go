package customer_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/houranii/tyreshop/models"
	"github.com/houranii/tyreshop/services"
)

// GetCustomersStats godoc
// @Summary Customer statistics (CMS)
// @Tags Admin - Customers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.CustomerStats}
// @Router /admin/customers/stats [get]
func GetCustomersStats(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Customer stats fetched successfully", services.CustomerStats(customers.List(), now())))
}
