package db

import (
	"github.com/redis/go-redis/v9"

	"WANDERPLAN_BACK-END/internal/config"
)

// ConnectRedis returns a redis client, or nil when no address is
// configured. Callers treat a nil client as "cache disabled".
func ConnectRedis(cfg *config.Config) *redis.Client {
	if cfg.Redis.Addr == "" {
		return nil
	}

	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}
