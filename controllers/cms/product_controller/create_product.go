package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/houranii/tyreshop/middleware"
	"github.com/houranii/tyreshop/models"
	"github.com/houranii/tyreshop/services"
	"github.com/houranii/tyreshop/utils"
	"go.uber.org/zap"
)

// CreateProduct godoc
// @Summary Create a product
// @Description Adds a tyre to the catalog. Storefront filters see it immediately.
// @Tags CMS - Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.TyreRequest true "Tyre"
// @Success 201 {object} models.ApiResponse{data=models.Tyre}
// @Failure 400 {object} models.ApiResponse
// @Router /admin/products [post]
func CreateProduct(c *gin.Context) {
	// Step 1: Bind and validate
	var req models.TyreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid product", utils.FieldErrors(err)))
		return
	}
	if !checkStockLocations(c, req.Stock) {
		return
	}

	// Step 2: Publish the new catalog version
	t, err := tyres.Create(services.NewTyreFromRequest(req))
	if err != nil {
		logger.Error("[admin.product.create] failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create product"))
		return
	}

	c.Set(middleware.ActivityResourceIDKey, t.ID)
	logger.Info("[admin.product.create]", zap.String("id", t.ID), zap.Uint64("catalog_version", tyres.Version()))

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Product created successfully", t))
}
