package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/houranii/tyreshop/models"
	"github.com/houranii/tyreshop/services"
	"github.com/houranii/tyreshop/utils"
	"go.uber.org/zap"
)

// GetStorefrontProducts godoc
// @Summary List tyres with filters
// @Description Stateless catalog listing. Facets come from query parameters and do not touch the visitor's saved filters.
// @Tags store
// @Produce json
// @Param width query int false "Section width" example(225)
// @Param profile query int false "Aspect ratio" example(45)
// @Param rim_size query int false "Rim diameter" example(17)
// @Param vehicle_type query string false "Car, SUV or Truck"
// @Param brand query string false "Exact brand"
// @Param q query string false "Case-insensitive search over brand, model and description"
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Items per page (default: 10, max: 100)"
// @Success 200 {object} models.ApiResponse{data=models.StorefrontListResponse}
// @Failure 400 {object} models.ApiResponse
// @Router /store/products [get]
func GetStorefrontProducts(c *gin.Context) {
	sel, err := services.SelectionFromQuery(c.Query)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}
	page, limit := utils.ParsePagination(c)

	res := catalog.Browse(sel)
	logger.Debug("[store.products] browse", zap.Int("matches", len(res.Tyres)))

	data := models.StorefrontListResponse{
		Products:         toStorefront(utils.Paginate(res.Tyres, page, limit)),
		AvailableOptions: res.Options,
	}
	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Products fetched successfully", data,
		models.NewPagination(page, limit, len(res.Tyres))))
}
