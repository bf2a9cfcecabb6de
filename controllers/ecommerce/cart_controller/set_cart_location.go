package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/houranii/tyreshop/models"
	"github.com/houranii/tyreshop/services"
	"github.com/houranii/tyreshop/utils"
)

// SetCartLocation godoc
// @Summary Choose the fitting or pickup location
// @Description The location must offer the cart's current service type
// @Tags cart
// @Accept json
// @Produce json
// @Param request body models.SetLocationRequest true "Location"
// @Success 200 {object} models.ApiResponse{data=models.CartResponse}
// @Failure 404 {object} models.ApiResponse "Location not found"
// @Failure 409 {object} models.ApiResponse "Location does not offer the service"
// @Router /store/cart/location [put]
func SetCartLocation(c *gin.Context) {
	var req models.SetLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid request", utils.FieldErrors(err)))
		return
	}

	loc, err := locations.Get(req.LocationID)
	if err != nil {
		c.JSON(cartErrorStatus(err), models.ErrorResponse(c, "Location not found"))
		return
	}

	withCart(c, "Location selected", func(cart *services.Cart) error {
		return cart.SetLocation(loc)
	})
}
