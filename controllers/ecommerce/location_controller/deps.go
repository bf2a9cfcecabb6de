package location_controller

import (
	"github.com/houranii/tyreshop/store"
	"go.uber.org/zap"
)

var (
	locations *store.LocationStore
	logger    = zap.NewNop()
)

func Init(l *store.LocationStore, lg *zap.Logger) {
	locations = l
	logger = lg
}
