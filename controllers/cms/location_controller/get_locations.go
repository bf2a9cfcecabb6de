package location_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/houranii/tyreshop/models"
	"github.com/houranii/tyreshop/services"
	"github.com/houranii/tyreshop/utils"
)

// GetLocations godoc
// @Summary List locations (CMS)
// @Tags Admin - Locations
// @Produce json
// @Security BearerAuth
// @Param search query string false "Name, city or address contains"
// @Param sort_by query string false "Sort field" Enums(name, city)
// @Param sort_order query string false "Sort direction" Enums(asc, desc)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} models.ApiResponse{data=[]models.Location,meta=models.Pagination}
// @Failure 400 {object} models.ApiResponse
// @Router /admin/locations [get]
func GetLocations(c *gin.Context) {
	page, limit := utils.ParsePagination(c)

	list, err := services.ListLocations(shop.Locations.List(), c.Query("search"), c.Query("sort_by"), c.Query("sort_order"))
	if err != nil {
		if errors.Is(err, services.ErrInvalidSort) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch locations"))
		return
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Locations fetched successfully",
		utils.Paginate(list, page, limit), models.NewPagination(page, limit, len(list))))
}
