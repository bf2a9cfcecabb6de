package checkout_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/houranii/tyreshop/models"
	"github.com/houranii/tyreshop/services"
)

// SubmitPayment godoc
// @Summary Submit payment method
// @Description Card details are checked and reduced to the last four digits. Moves the wizard to confirmation.
// @Tags checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.PaymentDetails true "Payment method and card"
// @Success 200 {object} models.ApiResponse{data=models.CheckoutState}
// @Failure 400 {object} models.ApiResponse "Unknown payment method"
// @Failure 409 {object} models.ApiResponse "Not on the payment step"
// @Failure 422 {object} models.ApiResponse "Field errors"
// @Router /store/checkout/payment [post]
func SubmitPayment(c *gin.Context) {
	var req models.PaymentDetails
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	runStep(c, "Payment details saved", func(_ *models.User, s services.SessionState) error {
		return s.Checkout.SubmitPayment(req)
	})
}
