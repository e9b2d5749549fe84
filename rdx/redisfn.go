package rdx

import (
	"context"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

func init() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	Conn = redis.NewClient(&redis.Options{Addr: addr})
}

var ctx = context.Background()

func RdxSet(key, value string) error {
	return Conn.Set(ctx, key, value, 0).Err()
}

func SetWithExpiry(key, value string, ttl time.Duration) error {
	return Conn.Set(ctx, key, value, ttl).Err()
}

func RdxGet(key string) (string, error) {
	return Conn.Get(ctx, key).Result()
}

func RdxDel(key string) (int64, error) {
	return Conn.Del(ctx, key).Result()
}

func RdxHset(hash, field, value string) error {
	return Conn.HSet(ctx, hash, field, value).Err()
}

func RdxHget(hash, field string) (string, error) {
	return Conn.HGet(ctx, hash, field).Result()
}

func RdxHdel(hash, field string) (int64, error) {
	return Conn.HDel(ctx, hash, field).Result()
}

func RdxSAdd(key string, members ...any) error {
	return Conn.SAdd(ctx, key, members...).Err()
}

func RdxSMembers(key string) ([]string, error) {
	return Conn.SMembers(ctx, key).Result()
}
