package location_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/houranii/tyreshop/models"
	"github.com/houranii/tyreshop/store"
	"go.uber.org/zap"
)

var (
	shop   *store.Store
	logger = zap.NewNop()
)

// Init wires the handlers. Deleting a location needs the tyre store too.
func Init(s *store.Store, l *zap.Logger) {
	shop = s
	logger = l
}

func writeStoreError(c *gin.Context, tag string, err error) {
	switch {
	case errors.Is(err, store.ErrLocationNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Location not found"))
	case errors.Is(err, store.ErrLocationInUse):
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Location still holds stock. Move or clear it first"))
	default:
		logger.Error(tag+" failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Internal server error"))
	}
}
