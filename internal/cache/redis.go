package cache

import (
	"context"
	"errors"
	"time"

	"github.com/emrgen/logbook/internal/compress"
	redis "github.com/redis/go-redis/v9"
)

var _ Cache = (*Redis)(nil)

// Redis caches payloads in redis, run through a compress codec so large
// logbook days stay cheap to hold.
type Redis struct {
	client  *redis.Client
	encoder compress.Compress
}

func NewRedis(addr string, encoder compress.Compress) *Redis {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: "", // No password set
		DB:       0,  // Use default DB
		Protocol: 2,  // Connection protocol
	})

	return &Redis{client: client, encoder: encoder}
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	res := r.client.Get(ctx, key)
	if res.Err() != nil {
		if errors.Is(res.Err(), redis.Nil) {
			return nil, nil
		}
		return nil, res.Err()
	}

	buf, err := res.Bytes()
	if err != nil {
		return nil, err
	}

	return r.encoder.Decode(buf)
}

func (r *Redis) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	encoded, err := r.encoder.Encode(data)
	if err != nil {
		return err
	}

	return r.client.Set(ctx, key, encoded, ttl).Err()
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}
