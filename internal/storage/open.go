package storage

import (
	"context"

	"github.com/harentsoaR/medicare-api/internal/config"
)

// Open connects the backend named by cfg.Storage.Backend.
func Open(ctx context.Context, cfg *config.Config) (KV, error) {
	var (
		kv  KV
		err error
	)
	switch cfg.Storage.Backend {
	case BackendMemory:
		return NewMemory(), nil
	case BackendFile:
		kv, err = NewFile(cfg.Storage.DataDir)
	case BackendMongo:
		kv, err = NewMongo(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	case BackendRedis:
		kv, err = NewRedis(ctx, cfg.Redis.RedisAddr(), cfg.Redis.Password, cfg.Redis.DB)
	case BackendPostgres:
		kv, err = NewPostgres(cfg.Postgres.DSN())
	default:
		return nil, ErrUnknownBackend{Name: cfg.Storage.Backend}
	}
	if err != nil {
		return nil, err
	}
	return kv, nil
}
