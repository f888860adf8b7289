// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"glamvan/config"

	"github.com/go-redis/redis/v8"
)

var (
	// SessionCacheClient holds wizard booking sessions.
	SessionCacheClient *redis.Client
	// AuthCacheClient is the dedicated client for admin token caching.
	AuthCacheClient *redis.Client
)

// InitRedis initializes all Redis clients.
func InitRedis() {
	InitSessionCache()
	InitAuthCache()
}

// InitSessionCache initializes the Redis client for booking sessions.
func InitSessionCache() {
	SessionCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := SessionCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Sessions): %v", err)
	}
}

// GetSessionCacheClient returns the booking session cache client.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		InitSessionCache()
	}
	return SessionCacheClient
}

// InitAuthCache initializes the Redis client for admin auth caching.
func InitAuthCache() {
	AuthCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := AuthCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Auth Cache): %v", err)
	}
}

// GetAuthCacheClient returns the Redis client for admin auth caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		InitAuthCache()
	}
	return AuthCacheClient
}

func adminTokenKey(token string) string {
	return "admin:token:" + HashToken(token)
}

// CacheAdminToken registers an issued admin token in the auth cache. Only
// cached tokens are accepted by the admin middleware, so dropping the key
// revokes the token before its JWT expiry.
func CacheAdminToken(ctx context.Context, token string, ttl time.Duration) error {
	return GetAuthCacheClient().Set(ctx, adminTokenKey(token), "1", ttl).Err()
}

// AdminTokenActive reports whether a token is still registered.
func AdminTokenActive(ctx context.Context, token string) (bool, error) {
	n, err := GetAuthCacheClient().Exists(ctx, adminTokenKey(token)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// RevokeAdminToken drops a token from the auth cache.
func RevokeAdminToken(ctx context.Context, token string) error {
	return GetAuthCacheClient().Del(ctx, adminTokenKey(token)).Err()
}
