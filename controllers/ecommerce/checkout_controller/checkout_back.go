package checkout_controller

import (
	"github.com/gin-gonic/gin"
	"github.com/houranii/tyreshop/models"
	"github.com/houranii/tyreshop/services"
)

// CheckoutBack godoc
// @Summary Go back one checkout step
// @Tags checkout
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.CheckoutState}
// @Router /store/checkout/back [post]
func CheckoutBack(c *gin.Context) {
	runStep(c, "Moved back", func(_ *models.User, s services.SessionState) error {
		s.Checkout.Back()
		return nil
	})
}
