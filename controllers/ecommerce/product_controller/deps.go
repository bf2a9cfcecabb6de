package product_controller

import (
	"github.com/houranii/tyreshop/services"
	"go.uber.org/zap"
)

var (
	catalog *services.CatalogService
	logger  = zap.NewNop()
)

// Init wires the storefront product handlers.
func Init(c *services.CatalogService, l *zap.Logger) {
	catalog = c
	logger = l
}
