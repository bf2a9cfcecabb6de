package config

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type AppConfig struct {
	Port              string
	Env               string
	JWTSecret         string
	JWTExpiry         time.Duration
	DemoPassword      string
	SessionTTL        time.Duration
	RedisURL          string
	RateLimitMax      int
	RateLimitWindow   time.Duration
	CORSOrigins       []string
	LowStockThreshold int
}

func (c *AppConfig) IsProduction() bool {
	return c.Env == "production"
}

const devJWTSecret = "tyreshop-dev-secret"

func defaults(v *viper.Viper) {
	v.SetDefault("PORT", "8081")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_EXPIRY", "24h")
	v.SetDefault("DEMO_PASSWORD", "password")
	v.SetDefault("SESSION_TTL", "2h")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("RATE_LIMIT_MAX", 100)
	v.SetDefault("RATE_LIMIT_WINDOW", "1m")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000,http://localhost:3001")
	v.SetDefault("LOW_STOCK_THRESHOLD", 10)
}

// Load reads .env when present, then the process environment.
func Load() (*AppConfig, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	return FromViper(v)
}

// FromViper builds the config from an already populated viper instance.
func FromViper(v *viper.Viper) (*AppConfig, error) {
	defaults(v)

	cfg := &AppConfig{
		Port:              v.GetString("PORT"),
		Env:               v.GetString("APP_ENV"),
		JWTSecret:         v.GetString("JWT_SECRET"),
		JWTExpiry:         v.GetDuration("JWT_EXPIRY"),
		DemoPassword:      v.GetString("DEMO_PASSWORD"),
		SessionTTL:        v.GetDuration("SESSION_TTL"),
		RedisURL:          v.GetString("REDIS_URL"),
		RateLimitMax:      v.GetInt("RATE_LIMIT_MAX"),
		RateLimitWindow:   v.GetDuration("RATE_LIMIT_WINDOW"),
		LowStockThreshold: v.GetInt("LOW_STOCK_THRESHOLD"),
	}
	for _, o := range strings.Split(v.GetString("CORS_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, o)
		}
	}

	if cfg.JWTSecret == "" {
		if cfg.IsProduction() {
			return nil, errors.New("JWT_SECRET is required in production")
		}
		cfg.JWTSecret = devJWTSecret
	}
	if cfg.JWTExpiry <= 0 || cfg.SessionTTL <= 0 || cfg.RateLimitWindow <= 0 {
		return nil, errors.New("JWT_EXPIRY, SESSION_TTL and RATE_LIMIT_WINDOW must be positive durations")
	}
	if cfg.RateLimitMax <= 0 {
		return nil, errors.New("RATE_LIMIT_MAX must be positive")
	}
	return cfg, nil
}

// WithTimeout returns a context with a 10s timeout
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}
