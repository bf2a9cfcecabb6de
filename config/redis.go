package config

import (
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ConnectRedis dials url and pings it. An empty url means no Redis; the
// caller falls back to in-process rate limiting.
func ConnectRedis(url string, logger *zap.Logger) (*redis.Client, error) {
	if url == "" {
		logger.Info("[redis] REDIS_URL not set, using in-process rate limiting")
		return nil, nil
	}

	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := WithTimeout()
	defer cancel()
	res, err := client.Ping(ctx).Result()
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	logger.Info("[redis] connected", zap.String("ping", res), zap.String("addr", opt.Addr))
	return client, nil
}
