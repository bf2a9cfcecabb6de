package cart_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/houranii/tyreshop/middleware"
	"github.com/houranii/tyreshop/models"
	"github.com/houranii/tyreshop/services"
	"github.com/houranii/tyreshop/store"
	"go.uber.org/zap"
)

var (
	catalog   *services.CatalogService
	locations *store.LocationStore
	logger    = zap.NewNop()
)

func Init(c *services.CatalogService, l *store.LocationStore, lg *zap.Logger) {
	catalog = c
	locations = l
	logger = lg
}

// withCart runs fn on the caller's cart and renders the cart afterwards.
func withCart(c *gin.Context, message string, fn func(cart *services.Cart) error) {
	sess, ok := middleware.Session(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session unavailable"))
		return
	}

	var resp models.CartResponse
	err := sess.Do(func(s services.SessionState) error {
		if fn != nil {
			if err := fn(s.Cart); err != nil {
				return err
			}
		}
		resp = s.Cart.Response()
		return nil
	})
	if err != nil {
		c.JSON(cartErrorStatus(err), models.ErrorResponse(c, err.Error()))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, message, resp))
}

func cartErrorStatus(err error) int {
	switch {
	case errors.Is(err, store.ErrTyreNotFound),
		errors.Is(err, store.ErrLocationNotFound),
		errors.Is(err, services.ErrItemNotInCart):
		return http.StatusNotFound
	case errors.Is(err, services.ErrServiceTypeMismatch):
		return http.StatusConflict
	case errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrInvalidServiceType):
		return http.StatusBadRequest
	}
	logger.Error("[cart] unexpected error", zap.Error(err))
	return http.StatusInternalServerError
}
