package storage

import (
	"context"
	"strconv"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harentsoaR/medicare-api/internal/config"
)

func TestRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	kv, err := NewRedis(context.Background(), mr.Addr(), "", 0)
	require.NoError(t, err)
	t.Cleanup(func() { kv.Close() })

	exerciseKV(t, kv)

	stored, err := mr.Get("hospital_patients")
	require.NoError(t, err)
	assert.Equal(t, "[]", stored)
	assert.Zero(t, mr.TTL("hospital_patients"), "collections never expire")
}

func TestRedis_ReadFailure(t *testing.T) {
	mr := miniredis.RunT(t)
	kv, err := NewRedis(context.Background(), mr.Addr(), "", 0)
	require.NoError(t, err)
	t.Cleanup(func() { kv.Close() })

	mr.SetError("LOADING")
	_, ok, err := kv.Get(context.Background(), "hospital_patients")
	assert.Error(t, err, "a server error is not an absent key")
	assert.False(t, ok)
}

func TestOpen_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)

	kv, err := Open(context.Background(), &config.Config{
		Storage: config.StorageConfig{Backend: BackendRedis},
		Redis:   config.RedisConfig{Host: mr.Host(), Port: port},
	})
	require.NoError(t, err)
	t.Cleanup(func() { kv.Close() })
	assert.IsType(t, &Redis{}, kv)
}

func TestNewRedis_Unreachable(t *testing.T) {
	_, err := NewRedis(context.Background(), "127.0.0.1:1", "", 0)
	assert.Error(t, err)
}
