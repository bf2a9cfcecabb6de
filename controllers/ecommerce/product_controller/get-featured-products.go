package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/houranii/tyreshop/models"
)

// GetFeaturedProducts godoc
// @Summary Featured tyres
// @Description Tyres on sale or rated 4.5 and above
// @Tags store
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.StorefrontTyreResponse}
// @Router /store/products/featured [get]
func GetFeaturedProducts(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Featured products fetched successfully", toStorefront(catalog.Featured())))
}
