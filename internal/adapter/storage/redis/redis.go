package redis

import (
	"context"
	"fmt"

	"cashu-wallet-service/config"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// NewClient dials Redis when the optional rate-limiting dependency is enabled
// and verifies connectivity with a ping. A disabled config yields (nil, nil)
// so callers can skip the rate-limiting wiring entirely; the service runs
// fine without Redis, just unthrottled.
func NewClient(ctx context.Context, cfg config.RedisConfig, log zerolog.Logger) (*goredis.Client, error) {
	if !cfg.Enabled {
		log.Info().Msg("redis disabled, tool rate limiting is off")
		return nil, nil
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("pinging redis at %s: %w", cfg.Addr(), err)
	}

	log.Info().
		Str("addr", cfg.Addr()).
		Int("db", cfg.DB).
		Msg("redis connected, tool rate limiting enabled")

	return client, nil
}
