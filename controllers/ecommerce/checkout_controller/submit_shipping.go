package checkout_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/houranii/tyreshop/models"
	"github.com/houranii/tyreshop/services"
)

// SubmitShipping godoc
// @Summary Submit shipping details
// @Description Full name, email and phone are required. Moves the wizard to payment.
// @Tags checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.ShippingDetails true "Shipping details"
// @Success 200 {object} models.ApiResponse{data=models.CheckoutState}
// @Failure 409 {object} models.ApiResponse "Not on the shipping step"
// @Failure 422 {object} models.ApiResponse "Field errors"
// @Router /store/checkout/shipping [post]
func SubmitShipping(c *gin.Context) {
	var req models.ShippingDetails
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	runStep(c, "Shipping details saved", func(_ *models.User, s services.SessionState) error {
		return s.Checkout.SubmitShipping(req)
	})
}
