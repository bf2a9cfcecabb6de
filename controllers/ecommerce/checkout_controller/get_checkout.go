package checkout_controller

import "github.com/gin-gonic/gin"

// GetCheckout godoc
// @Summary Get checkout progress
// @Description Current step, shipping details (prefilled from the profile) and cart summary. Needs a logged-in user, a non-empty cart and a selected location.
// @Tags checkout
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.CheckoutState}
// @Failure 400 {object} models.ApiResponse "Empty cart or no location"
// @Failure 401 {object} models.ApiResponse
// @Router /store/checkout [get]
func GetCheckout(c *gin.Context) {
	runStep(c, "Checkout fetched successfully", nil)
}
