package redis

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"vet-clinic-portal/internal/ports/kv"
)

type store struct {
	rdb *goredis.Client
}

// Open conecta a Redis y valida con un ping corto.
func Open(addr string) (kv.Store, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}

	return &store{rdb: rdb}, nil
}

func (s *store) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.rdb.Get(ctx, key).Result()
	if errors.Is(err, goredis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s *store) Set(ctx context.Context, key, value string) error {
	// Sin TTL: las colecciones son estado durable, no cache.
	return s.rdb.Set(ctx, key, value, 0).Err()
}

func (s *store) Delete(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, key).Err()
}
