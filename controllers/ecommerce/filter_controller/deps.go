package filter_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/houranii/tyreshop/middleware"
	"github.com/houranii/tyreshop/models"
	"github.com/houranii/tyreshop/services"
	"go.uber.org/zap"
)

var (
	catalog *services.CatalogService
	logger  = zap.NewNop()
)

// Init wires the filter handlers. Session-bound handlers also need the
// VisitorSession middleware on their route.
func Init(c *services.CatalogService, l *zap.Logger) {
	catalog = c
	logger = l
}

// withFilter runs fn on the caller's filter session and renders the
// resulting state. fn may be nil to render the state as is.
func withFilter(c *gin.Context, message string, fn func(s services.SessionState) error) {
	sess, ok := middleware.Session(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session unavailable"))
		return
	}

	var state models.FilterStateResponse
	err := sess.Do(func(s services.SessionState) error {
		if fn != nil {
			if err := fn(s); err != nil {
				return err
			}
		}
		state = services.FilterState(s.Filter)
		return nil
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, message, state))
}
