package cache

import (
	"context"
	"fmt"
	"os"

	"github.com/lkuo/naf-backend/pkg/utils"
	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client

// InitRedis initializes the Redis client used to cache course reads.
func InitRedis() {
	host := os.Getenv("CACHE_HOST")
	port := os.Getenv("CACHE_PORT")
	if host == "" || port == "" {
		utils.Logger.Sugar().Fatal("CACHE_HOST or CACHE_PORT is not set")
	}

	options := &redis.Options{
		Addr:         fmt.Sprintf("%s:%s", host, port),
		Password:     os.Getenv("CACHE_PASSWORD"),
		DB:           0,
		PoolSize:     10,
		MinIdleConns: 2,
	}

	RedisClient = redis.NewClient(options)

	// Test connection
	if err := RedisClient.Ping(context.Background()).Err(); err != nil {
		utils.Logger.Sugar().Fatalf("Failed to connect to Redis: %v", err)
	}
}
