package order_controller

import (
	"time"

	"github.com/houranii/tyreshop/store"
	"go.uber.org/zap"
)

var (
	orders *store.OrderStore
	now    = time.Now
	logger = zap.NewNop()
)

func Init(o *store.OrderStore, l *zap.Logger) {
	orders = o
	logger = l
}
