package cache

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis returns nil when REDIS_ADDR is unset or the server does not
// answer, so callers can fall back to a local implementation.
func ConnectRedis(ctx context.Context) *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Printf("[cache][redis] REDIS_ADDR not set; redis disabled")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		log.Printf("[cache][redis] ping failed addr=%s err=%v; redis disabled", addr, err)
		_ = rdb.Close()
		return nil
	}

	log.Printf("[cache][redis] connected addr=%s", addr)
	return rdb
}
