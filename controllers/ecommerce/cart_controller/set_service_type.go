package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/houranii/tyreshop/models"
	"github.com/houranii/tyreshop/services"
	"github.com/houranii/tyreshop/utils"
)

// SetServiceType godoc
// @Summary Choose fitting or pickup
// @Description Switching service type forgets the selected location
// @Tags cart
// @Accept json
// @Produce json
// @Param request body models.SetServiceTypeRequest true "Service type"
// @Success 200 {object} models.ApiResponse{data=models.CartResponse}
// @Failure 400 {object} models.ApiResponse
// @Router /store/cart/service-type [put]
func SetServiceType(c *gin.Context) {
	var req models.SetServiceTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid request", utils.FieldErrors(err)))
		return
	}

	withCart(c, "Service type updated", func(cart *services.Cart) error {
		return cart.SetServiceType(req.ServiceType)
	})
}
