package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/houranii/tyreshop/models"
	"github.com/houranii/tyreshop/services"
)

// GetProductStats godoc
// @Summary Product statistics
// @Description Count, inventory units, products on sale, average price, per-brand counts and low stock
// @Tags CMS - Products
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.TyreStatsResponse}
// @Router /admin/products/stats [get]
func GetProductStats(c *gin.Context) {
	all, _ := tyres.Snapshot()
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product stats fetched successfully", services.TyreStats(all, lowStock)))
}
