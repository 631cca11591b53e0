package store

import (
	"context"
	"errors"

	"github.com/employeedir/employeedir/backend/go-services/internal/employee"
	"github.com/redis/go-redis/v9"
)

// RedisStore keeps the encoded Document under a single key.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore creates a Redis-backed store. key may be empty.
func NewRedisStore(client *redis.Client, key string) *RedisStore {
	if key == "" {
		key = "employees:document"
	}
	return &RedisStore{client: client, key: key}
}

func (r *RedisStore) Load(ctx context.Context) (employee.Document, error) {
	b, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return employee.Document{Employees: []employee.Employee{}}, nil
		}
		return employee.Document{}, unavailable("redis get", err)
	}
	doc, err := Decode(b)
	if err != nil {
		return employee.Document{}, unavailable("redis load", err)
	}
	return doc, nil
}

func (r *RedisStore) Save(ctx context.Context, doc employee.Document) error {
	b, err := Encode(doc)
	if err != nil {
		return unavailable("encode document", err)
	}
	if err := r.client.Set(ctx, r.key, b, 0).Err(); err != nil {
		return unavailable("redis set", err)
	}
	return nil
}

func (r *RedisStore) InitializeIfAbsent(ctx context.Context, seed employee.Document) error {
	b, err := Encode(seed)
	if err != nil {
		return unavailable("encode document", err)
	}
	if err := r.client.SetNX(ctx, r.key, b, 0).Err(); err != nil {
		return unavailable("redis setnx", err)
	}
	return nil
}
