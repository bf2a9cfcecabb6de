package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := FromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, devJWTSecret, cfg.JWTSecret)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, "password", cfg.DemoPassword)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 100, cfg.RateLimitMax)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:3001"}, cfg.CORSOrigins)
	assert.Equal(t, 10, cfg.LowStockThreshold)
	assert.Empty(t, cfg.RedisURL)
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("PORT", "9000")
	v.Set("SESSION_TTL", "30m")
	v.Set("CORS_ORIGINS", " https://shop.example.com , ")
	v.Set("JWT_SECRET", "s3cret")

	cfg, err := FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, []string{"https://shop.example.com"}, cfg.CORSOrigins)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
}

func TestFromViper_ProductionRequiresSecret(t *testing.T) {
	v := viper.New()
	v.Set("APP_ENV", "production")

	_, err := FromViper(v)
	assert.ErrorContains(t, err, "JWT_SECRET")
}

func TestFromViper_RejectsBadDurations(t *testing.T) {
	v := viper.New()
	v.Set("SESSION_TTL", "0s")

	_, err := FromViper(v)
	assert.Error(t, err)
}

func TestConnectRedis_EmptyURLIsDisabled(t *testing.T) {
	client, err := ConnectRedis("", zap.NewNop())
	assert.NoError(t, err)
	assert.Nil(t, client)
}

func TestConnectRedis_InvalidURL(t *testing.T) {
	_, err := ConnectRedis("not-a-url", zap.NewNop())
	assert.ErrorContains(t, err, "invalid REDIS_URL")
}
