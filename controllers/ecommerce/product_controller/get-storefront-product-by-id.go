package product_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/houranii/tyreshop/models"
	"github.com/houranii/tyreshop/store"
	"go.uber.org/zap"
)

// GetStorefrontProductByID godoc
// @Summary Get single tyre details for storefront
// @Description Full tyre record with stock per location
// @Tags store
// @Produce json
// @Param id path string true "Tyre ID"
// @Success 200 {object} models.ApiResponse{data=models.TyreDetailResponse}
// @Failure 404 {object} models.ApiResponse
// @Router /store/products/{id} [get]
func GetStorefrontProductByID(c *gin.Context) {
	id := c.Param("id")

	detail, err := catalog.Detail(id)
	if err != nil {
		if errors.Is(err, store.ErrTyreNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
			return
		}
		logger.Error("[store.product] detail failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product fetched successfully", detail))
}
