package customer_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/houranii/tyreshop/models"
	"go.uber.org/zap"
)

// DeleteCustomer godoc
// @Summary Delete a customer (CMS)
// @Description Orders placed by the customer are kept
// @Tags Admin - Customers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/customers/{id} [delete]
func DeleteCustomer(c *gin.Context) {
	id := c.Param("id")
	if err := customers.Delete(id); err != nil {
		notFoundOr500(c, "[admin.customers.delete]", err)
		return
	}

	logger.Info("[admin.customers.delete]", zap.String("id", id))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Customer deleted successfully", gin.H{"id": id}))
}
