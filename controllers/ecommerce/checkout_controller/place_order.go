package checkout_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/houranii/tyreshop/middleware"
	"github.com/houranii/tyreshop/models"
	"github.com/houranii/tyreshop/services"
	"go.uber.org/zap"
)

// PlaceOrder godoc
// @Summary Place the order
// @Description Only from the confirmation step. Creates a pending order, empties the cart and restarts checkout.
// @Tags checkout
// @Produce json
// @Security BearerAuth
// @Success 201 {object} models.ApiResponse{data=models.PlaceOrderResponse}
// @Failure 409 {object} models.ApiResponse "Not on the confirmation step"
// @Router /store/checkout/place-order [post]
func PlaceOrder(c *gin.Context) {
	user, sess, ok := caller(c)
	if !ok {
		return
	}

	var order models.Order
	err := sess.Do(func(s services.SessionState) error {
		var err error
		order, err = checkout.PlaceOrder(user, s.Cart, s.Checkout)
		return err
	})
	if err != nil {
		writeError(c, err)
		return
	}

	logger.Info("[order.place]",
		zap.String("order", order.ID),
		zap.String("user", user.ID),
		zap.String("session", middleware.SessionID(c)),
		zap.Float64("total", order.Total),
	)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Order placed successfully", models.PlaceOrderResponse{
		Order:   order,
		Message: "Thank you for your order. We will contact you to confirm your " + order.ServiceType.FeeLabel() + " appointment.",
	}))
}
