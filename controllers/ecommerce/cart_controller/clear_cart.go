package cart_controller

import (
	"github.com/gin-gonic/gin"
	"github.com/houranii/tyreshop/services"
)

// ClearCart godoc
// @Summary Empty the cart
// @Description Removes every line. The service type and location stay selected.
// @Tags cart
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.CartResponse}
// @Router /store/cart [delete]
func ClearCart(c *gin.Context) {
	withCart(c, "Cart cleared", func(cart *services.Cart) error {
		cart.Clear()
		return nil
	})
}
