package checkout_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/houranii/tyreshop/middleware"
	"github.com/houranii/tyreshop/models"
	"github.com/houranii/tyreshop/services"
	"go.uber.org/zap"
)

var (
	checkout *services.CheckoutService
	logger   = zap.NewNop()
)

func Init(s *services.CheckoutService, l *zap.Logger) {
	checkout = s
	logger = l
}

// step is one wizard operation. It runs under the session lock with the
// authenticated user.
type step func(user *models.User, s services.SessionState) error

// runStep applies fn and then renders the wizard state.
func runStep(c *gin.Context, message string, fn step) {
	user, sess, ok := caller(c)
	if !ok {
		return
	}

	var state models.CheckoutState
	err := sess.Do(func(s services.SessionState) error {
		if err := checkout.Ready(user, s.Cart); err != nil {
			return err
		}
		if fn != nil {
			if err := fn(user, s); err != nil {
				return err
			}
		}
		var err error
		state, err = checkout.State(user, s.Cart, s.Checkout)
		return err
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, message, state))
}

func caller(c *gin.Context) (*models.User, *services.VisitorSession, bool) {
	sess, ok := middleware.Session(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session unavailable"))
		return nil, nil, false
	}
	user, ok := middleware.GetUser(c)
	if !ok {
		writeError(c, services.ErrNotAuthenticated)
		return nil, nil, false
	}
	return &user, sess, true
}

func writeError(c *gin.Context, err error) {
	var form *services.FormError
	switch {
	case errors.As(err, &form):
		c.JSON(http.StatusUnprocessableEntity, models.ValidationErrorResponse(c, "Please correct the highlighted fields", form.Fields))
	case errors.Is(err, services.ErrNotAuthenticated):
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, err.Error()))
	case errors.Is(err, services.ErrWrongStep):
		c.JSON(http.StatusConflict, models.ErrorResponse(c, err.Error()))
	case errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrNoLocation),
		errors.Is(err, services.ErrInvalidPaymentMethod):
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
	default:
		logger.Error("[checkout] unexpected error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
	}
}
