// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"fitgarden/config"

	"github.com/go-redis/redis/v8"
)

var (
	// DraftCacheClient holds in-progress agendamento drafts.
	DraftCacheClient *redis.Client
	// RefCacheClient caches read-only reference data (clientes, cardápio).
	RefCacheClient *redis.Client
)

// InitDraftCache initializes the Redis client for draft sessions.
func InitDraftCache() {
	DraftCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisDraftDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := DraftCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Draft Cache): %v", err)
	}
}

// GetDraftCacheClient returns the draft session client.
func GetDraftCacheClient() *redis.Client {
	if DraftCacheClient == nil {
		InitDraftCache()
	}
	return DraftCacheClient
}

// InitRefCache initializes the Redis client for reference-data caching.
func InitRefCache() {
	RefCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisRefDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := RefCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Ref Cache): %v", err)
	}
}

// GetRefCacheClient returns the reference-data cache client.
func GetRefCacheClient() *redis.Client {
	if RefCacheClient == nil {
		InitRefCache()
	}
	return RefCacheClient
}
