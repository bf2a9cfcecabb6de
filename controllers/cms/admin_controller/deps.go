package admin_controller

import (
	"github.com/houranii/tyreshop/services"
	"github.com/houranii/tyreshop/store"
	"go.uber.org/zap"
)

var (
	shop     *store.Store
	activity *services.ActivityLogService
	lowStock int
	logger   = zap.NewNop()
)

func Init(s *store.Store, a *services.ActivityLogService, threshold int, l *zap.Logger) {
	shop = s
	activity = a
	lowStock = threshold
	logger = l
}
