// File: utils/cache.go
package utils

import (
	"context"
	"fmt"
	"time"

	"staycalc/config"

	"github.com/go-redis/redis/v8"
)

// SessionCacheClient holds the booking sessions when SESSION_STORE=redis.
var SessionCacheClient *redis.Client

// InitSessionCache connects to the Redis DB reserved for booking sessions.
func InitSessionCache() error {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return fmt.Errorf("connect to redis (sessions) at %s: %w", config.AppConfig.RedisAddr, err)
	}
	SessionCacheClient = client
	return nil
}

// GetSessionCacheClient returns the session Redis client, nil until
// InitSessionCache succeeded.
func GetSessionCacheClient() *redis.Client {
	return SessionCacheClient
}
