package customer_controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/houranii/tyreshop/models"
	"github.com/houranii/tyreshop/store"
	"go.uber.org/zap"
)

var (
	customers *store.CustomerStore
	orders    *store.OrderStore
	now       = time.Now
	logger    = zap.NewNop()
)

func Init(s *store.Store, l *zap.Logger) {
	customers = s.Customers
	orders = s.Orders
	logger = l
}

func notFoundOr500(c *gin.Context, tag string, err error) {
	if errors.Is(err, store.ErrCustomerNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Customer not found"))
		return
	}
	logger.Error(tag+" failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Internal server error"))
}
