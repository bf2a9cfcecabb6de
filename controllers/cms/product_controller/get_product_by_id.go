package product_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/houranii/tyreshop/models"
	"github.com/houranii/tyreshop/store"
)

// GetProductByID godoc
// @Summary Get a product
// @Tags CMS - Products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tyre ID"
// @Success 200 {object} models.ApiResponse{data=models.Tyre}
// @Failure 404 {object} models.ApiResponse
// @Router /admin/products/{id} [get]
func GetProductByID(c *gin.Context) {
	t, err := tyres.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrTyreNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch product"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product fetched successfully", t))
}
