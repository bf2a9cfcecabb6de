package product_controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/houranii/tyreshop/models"
	"github.com/houranii/tyreshop/store"
	"go.uber.org/zap"
)

var (
	tyres     *store.TyreStore
	locations *store.LocationStore
	lowStock  int
	logger    = zap.NewNop()
)

// Init wires the handlers. threshold is the stock level under which a
// product counts as low.
func Init(s *store.Store, threshold int, l *zap.Logger) {
	tyres = s.Tyres
	locations = s.Locations
	lowStock = threshold
	logger = l
}

// checkStockLocations rejects stock held at locations that do not exist.
func checkStockLocations(c *gin.Context, stock map[string]int) bool {
	fields := map[string]string{}
	for id := range stock {
		if _, err := locations.Get(id); err != nil {
			fields[fmt.Sprintf("stock.%s", id)] = "unknown location"
		}
	}
	if len(fields) == 0 {
		return true
	}
	c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid stock", fields))
	return false
}
