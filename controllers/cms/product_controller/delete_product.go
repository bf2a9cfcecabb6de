package product_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/houranii/tyreshop/models"
	"github.com/houranii/tyreshop/store"
	"go.uber.org/zap"
)

// DeleteProduct godoc
// @Summary Delete a product
// @Description Carts that already hold the tyre keep their line.
// @Tags CMS - Products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tyre ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/products/{id} [delete]
func DeleteProduct(c *gin.Context) {
	id := c.Param("id")
	if err := tyres.Delete(id); err != nil {
		if errors.Is(err, store.ErrTyreNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
			return
		}
		logger.Error("[admin.product.delete] failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete product"))
		return
	}

	logger.Info("[admin.product.delete]", zap.String("id", id))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product deleted successfully", gin.H{"id": id}))
}
