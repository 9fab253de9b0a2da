package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/product-service/internal/model"
	"github.com/redis/go-redis/v9"
)

// RedisProductStore keeps each product as a JSON-encoded field of a single
// Redis hash, keyed by productID.
type RedisProductStore struct {
	rdb *redis.Client
	key string
}

func NewRedisProductStore(rdb *redis.Client) *RedisProductStore {
	return &RedisProductStore{rdb: rdb, key: ProductsTable}
}

func (s *RedisProductStore) Get(ctx context.Context, id string) (model.Product, error) {
	data, err := s.rdb.HGet(ctx, s.key, id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis HGET %s %s: %w", s.key, id, err)
	}

	p, err := model.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decoding product %s: %w", id, err)
	}
	return p, nil
}

func (s *RedisProductStore) Put(ctx context.Context, p model.Product) error {
	id := p.ID()
	if id == "" {
		return errMissingID
	}

	data, err := p.Encode()
	if err != nil {
		return err
	}

	if err := s.rdb.HSet(ctx, s.key, id, data).Err(); err != nil {
		return fmt.Errorf("redis HSET %s %s: %w", s.key, id, err)
	}
	return nil
}

func (s *RedisProductStore) Delete(ctx context.Context, id string) error {
	if err := s.rdb.HDel(ctx, s.key, id).Err(); err != nil {
		return fmt.Errorf("redis HDEL %s %s: %w", s.key, id, err)
	}
	return nil
}

// Scan reads the whole hash in one HGETALL. Order is unspecified.
func (s *RedisProductStore) Scan(ctx context.Context) ([]model.Product, error) {
	data, err := s.rdb.HGetAll(ctx, s.key).Result()
	if err != nil {
		return nil, fmt.Errorf("redis HGETALL %s: %w", s.key, err)
	}

	products := make([]model.Product, 0, len(data))
	for id, raw := range data {
		p, err := model.Decode([]byte(raw))
		if err != nil {
			return nil, fmt.Errorf("decoding product %s: %w", id, err)
		}
		products = append(products, p)
	}
	return products, nil
}
