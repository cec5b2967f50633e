package config

import (
	"context"
	"os"

	"github.com/redis/go-redis/v9"
)

// RedisClient is a global Redis client instance
var RedisClient *redis.Client

//Accessed as config.RedisClient in other files

func InitRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		RedisClient = nil
		return
	}
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASS"),
		DB:       GetEnvInt("REDIS_DB", 0),
	})
}

// PingRedis disables Redis when it is configured but unreachable, and
// reports the outcome.
func PingRedis(ctx context.Context) string {
	if RedisClient == nil {
		return "Redis not configured, catalog cache is in-process only."
	}
	if err := RedisClient.Ping(ctx).Err(); err != nil {
		RedisClient = nil
		return "Redis configured but not reachable, catalog cache is in-process only."
	}
	return "Redis connection successful."
}

func RedisCtx() context.Context {
	return context.Background()
}
