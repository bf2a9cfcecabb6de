package order_controller

import (
	"github.com/houranii/tyreshop/store"
	"go.uber.org/zap"
)

var (
	orders *store.OrderStore
	logger = zap.NewNop()
)

func Init(o *store.OrderStore, l *zap.Logger) {
	orders = o
	logger = l
}
