package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/houranii/tyreshop/middleware"
	"github.com/houranii/tyreshop/models"
	"github.com/houranii/tyreshop/services"
	"github.com/houranii/tyreshop/utils"
	"go.uber.org/zap"
)

// AddToCart godoc
// @Summary Add tyres to the cart
// @Description Adding a tyre already in the cart increases its quantity
// @Tags cart
// @Accept json
// @Produce json
// @Param request body models.AddToCartRequest true "Tyre and quantity"
// @Success 200 {object} models.ApiResponse{data=models.CartResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Tyre not found"
// @Router /store/cart/items [post]
func AddToCart(c *gin.Context) {
	// Step 1: Bind request
	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid request", utils.FieldErrors(err)))
		return
	}

	// Step 2: Resolve the tyre from the live catalog
	tyre, err := catalog.Get(req.TyreID)
	if err != nil {
		c.JSON(cartErrorStatus(err), models.ErrorResponse(c, "Product not found"))
		return
	}

	// Step 3: Add under the session lock
	withCart(c, "Added to cart", func(cart *services.Cart) error {
		if err := cart.AddItem(tyre, req.Quantity); err != nil {
			return err
		}
		logger.Info("[cart.add]",
			zap.String("session", middleware.SessionID(c)),
			zap.String("tyre", tyre.ID),
			zap.Int("quantity", req.Quantity),
		)
		return nil
	})
}
