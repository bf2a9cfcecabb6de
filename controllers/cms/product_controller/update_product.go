package product_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/houranii/tyreshop/models"
	"github.com/houranii/tyreshop/services"
	"github.com/houranii/tyreshop/store"
	"github.com/houranii/tyreshop/utils"
	"go.uber.org/zap"
)

// UpdateProduct godoc
// @Summary Update a product
// @Description Partial update. Only fields present in the body change. clear_sale_price removes the sale.
// @Tags CMS - Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tyre ID"
// @Param request body models.UpdateTyreRequest true "Fields to change"
// @Success 200 {object} models.ApiResponse{data=models.Tyre}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/products/{id} [patch]
func UpdateProduct(c *gin.Context) {
	id := c.Param("id")

	var req models.UpdateTyreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid product", utils.FieldErrors(err)))
		return
	}
	if req.Stock != nil && !checkStockLocations(c, *req.Stock) {
		return
	}

	t, err := tyres.Update(id, func(t *models.Tyre) error {
		services.ApplyTyreUpdate(t, req)
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrTyreNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
			return
		}
		logger.Error("[admin.product.update] failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update product"))
		return
	}

	logger.Info("[admin.product.update]", zap.String("id", id), zap.Uint64("catalog_version", tyres.Version()))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product updated successfully", t))
}
