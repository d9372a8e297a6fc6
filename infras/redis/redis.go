package redis

import (
	"context"
	"net"
	"tatzy/config"
	"time"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// New connects to the primary node that backs the read cache and the intake
// rate limiter. The process stops when the node cannot be reached.
func New(config *config.Config) *goRedis.Client {
	redisConfig := config.Cache.Redis
	timeout := time.Duration(redisConfig.DialTimeoutSeconds) * time.Second

	client := goRedis.NewClient(&goRedis.Options{
		Addr:        net.JoinHostPort(redisConfig.Primary.Host, redisConfig.Primary.Port),
		Password:    redisConfig.Primary.Password,
		DB:          redisConfig.Primary.DB,
		PoolSize:    redisConfig.PoolSize,
		DialTimeout: timeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal().
			Err(err).
			Str("host", redisConfig.Primary.Host).
			Msg("Failed to connect to Redis")
	}

	log.Info().
		Int("db", redisConfig.Primary.DB).
		Int("pool_size", redisConfig.PoolSize).
		Str("host", redisConfig.Primary.Host).
		Str("port", redisConfig.Primary.Port).
		Msg("Connected to Redis")

	return client
}
