package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/houranii/tyreshop/models"
	"github.com/houranii/tyreshop/services"
)

// UpdateCartItem godoc
// @Summary Change a cart line's quantity
// @Description A quantity of zero or less removes the line
// @Tags cart
// @Accept json
// @Produce json
// @Param tyreId path string true "Tyre ID"
// @Param request body models.UpdateCartItemRequest true "New quantity"
// @Success 200 {object} models.ApiResponse{data=models.CartResponse}
// @Failure 404 {object} models.ApiResponse "Not in cart"
// @Router /store/cart/items/{tyreId} [patch]
func UpdateCartItem(c *gin.Context) {
	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	tyreID := c.Param("tyreId")
	withCart(c, "Cart updated", func(cart *services.Cart) error {
		return cart.UpdateQuantity(tyreID, req.Quantity)
	})
}
