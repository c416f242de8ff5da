// Package storage holds the durable key-value backends a collection is
// mirrored to. Each collection lives under one fixed key as a single JSON
// document; there is no partial or incremental write.
package storage

import (
	"context"
	"fmt"
)

// KV is a durable key-value store. A missing key is reported as
// (nil, false, nil), never as an error.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendMongo    = "mongo"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// ErrUnknownBackend is returned by Open for an unrecognised backend name.
type ErrUnknownBackend struct {
	Name string
}

func (e ErrUnknownBackend) Error() string {
	return fmt.Sprintf("unknown storage backend %q", e.Name)
}
