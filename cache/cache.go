package cache

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	Conn *redis.Client
	Ctx  = context.Background()
)

// Init connects to Redis when REDIS_ADDR is set. The cache is optional:
// without it every content read goes straight to Postgres.
func Init() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("ℹ️ REDIS_ADDR not set, content cache disabled")
		return
	}

	Conn = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	if err := Conn.Ping(Ctx).Err(); err != nil {
		log.Printf("❌ Redis unreachable, content cache disabled: %v", err)
		Conn = nil
		return
	}
	log.Printf("✅ Content cache connected at %s", addr)
}

// Get returns the cached value for key and whether it was present.
func Get(key string) (string, bool) {
	if Conn == nil {
		return "", false
	}
	val, err := Conn.Get(Ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func Set(key, value string, ttl time.Duration) {
	if Conn == nil {
		return
	}
	if err := Conn.Set(Ctx, key, value, ttl).Err(); err != nil {
		log.Printf("Redis SET error for %s: %v", key, err)
	}
}

// Del drops keys so the next read refetches from the database. Called after
// every content write.
func Del(keys ...string) {
	if Conn == nil {
		return
	}
	if err := Conn.Del(Ctx, keys...).Err(); err != nil {
		log.Printf("Redis DEL error: %v", err)
	}
}
