package cart_controller

import (
	"github.com/gin-gonic/gin"
	"github.com/houranii/tyreshop/services"
)

// RemoveCartItem godoc
// @Summary Remove a tyre from the cart
// @Tags cart
// @Produce json
// @Param tyreId path string true "Tyre ID"
// @Success 200 {object} models.ApiResponse{data=models.CartResponse}
// @Failure 404 {object} models.ApiResponse "Not in cart"
// @Router /store/cart/items/{tyreId} [delete]
func RemoveCartItem(c *gin.Context) {
	tyreID := c.Param("tyreId")
	withCart(c, "Removed from cart", func(cart *services.Cart) error {
		return cart.RemoveItem(tyreID)
	})
}
