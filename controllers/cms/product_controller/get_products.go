package product_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/houranii/tyreshop/models"
	"github.com/houranii/tyreshop/services"
	"github.com/houranii/tyreshop/utils"
)

// GetProducts godoc
// @Summary Get paginated products
// @Description Search brand and model, sort by brand, model or price
// @Tags CMS - Products
// @Produce json
// @Security BearerAuth
// @Param search query string false "Brand or model contains"
// @Param sort_by query string false "Sort field" Enums(brand, model, price)
// @Param sort_order query string false "Sort direction" Enums(asc, desc)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} models.ApiResponse{data=[]models.Tyre,meta=models.Pagination}
// @Failure 400 {object} models.ApiResponse
// @Router /admin/products [get]
func GetProducts(c *gin.Context) {
	// Step 1: Parse pagination
	page, limit := utils.ParsePagination(c)

	// Step 2: Search and sort the current snapshot
	all, _ := tyres.Snapshot()
	list, err := services.ListTyres(all, c.Query("search"), c.Query("sort_by"), c.Query("sort_order"))
	if err != nil {
		if errors.Is(err, services.ErrInvalidSort) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	// Step 3: Return the requested page
	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Products fetched successfully",
		utils.Paginate(list, page, limit), models.NewPagination(page, limit, len(list))))
}
