package cart_controller

import "github.com/gin-gonic/gin"

// GetCart godoc
// @Summary Get the visitor's cart
// @Tags cart
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.CartResponse}
// @Router /store/cart [get]
func GetCart(c *gin.Context) {
	withCart(c, "Cart fetched successfully", nil)
}
