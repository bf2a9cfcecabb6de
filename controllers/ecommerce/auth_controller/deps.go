package auth_controller

import (
	"time"

	"github.com/houranii/tyreshop/services"
	"go.uber.org/zap"
)

var (
	auth         *services.AuthService
	cookieMaxAge int
	secureCookie bool
	logger       = zap.NewNop()
)

// Init wires the handlers. expiry sets the auth cookie lifetime.
func Init(a *services.AuthService, expiry time.Duration, secure bool, l *zap.Logger) {
	auth = a
	cookieMaxAge = int(expiry.Seconds())
	secureCookie = secure
	logger = l
}
