package store

import (
	"context"
	"fmt"

	"github.com/employeedir/employeedir/backend/go-services/internal/config"
	"github.com/employeedir/employeedir/backend/go-services/internal/database"
	"github.com/employeedir/employeedir/backend/go-services/internal/storage"
	"github.com/redis/go-redis/v9"
)

// New creates the Store selected by cfg.Store.Backend, wrapped with metrics.
// The returned close func releases backend connections and is never nil.
//
// Supported backends:
//
//	"file"   - JSON file at cfg.Store.DataFile (default)
//	"memory" - in-memory (ephemeral, for testing)
//	"mongo"  - one Mongo document in cfg.MongoDB.Collection
//	"redis"  - one key in Redis
//	"minio"  - one object in a MinIO bucket
//	"bolt"   - one bbolt value at cfg.Bolt.Path
//	"sqlite" - one SQLite row at cfg.SQLite.Path
func New(ctx context.Context, cfg *config.Config) (Store, func() error, error) {
	noop := func() error { return nil }
	var (
		st      Store
		closeFn = noop
	)

	switch cfg.Store.Backend {
	case "file", "":
		fs, err := NewFileStore(cfg.Store.DataFile)
		if err != nil {
			return nil, noop, err
		}
		st = fs
	case "memory":
		st = NewMemoryStore()
	case "mongo":
		client, err := database.ConnectMongoWithRetry(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout, 5)
		if err != nil {
			return nil, noop, err
		}
		col := client.Database(cfg.MongoDB.Database).Collection(cfg.MongoDB.Collection)
		st = NewMongoStore(col)
		closeFn = func() error { return client.Disconnect(context.Background()) }
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr(), Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, noop, fmt.Errorf("redis ping %s: %w", cfg.RedisAddr(), err)
		}
		st = NewRedisStore(client, cfg.Redis.Key)
		closeFn = client.Close
	case "minio":
		objects, err := storage.NewMinIOStorage(ctx, cfg.MinIO)
		if err != nil {
			return nil, noop, err
		}
		st = NewObjectStore(objects, cfg.MinIO.Object)
	case "bolt":
		bs, err := NewBoltStore(cfg.Bolt.Path)
		if err != nil {
			return nil, noop, err
		}
		st = bs
		closeFn = bs.Close
	case "sqlite":
		ss, err := NewSqliteStore(cfg.SQLite.Path)
		if err != nil {
			return nil, noop, err
		}
		st = ss
		closeFn = ss.Close
	default:
		return nil, noop, fmt.Errorf("unknown store backend: %q", cfg.Store.Backend)
	}

	backend := cfg.Store.Backend
	if backend == "" {
		backend = "file"
	}
	return NewInstrumented(st, backend), closeFn, nil
}
