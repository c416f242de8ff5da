package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harentsoaR/medicare-api/internal/config"
)

func exerciseKV(t *testing.T, kv KV) {
	ctx := context.Background()

	_, ok, err := kv.Get(ctx, "hospital_patients")
	require.NoError(t, err)
	assert.False(t, ok, "missing key must not be reported as present")

	require.NoError(t, kv.Set(ctx, "hospital_patients", []byte(`[{"id":"1"}]`)))
	got, ok, err := kv.Get(ctx, "hospital_patients")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `[{"id":"1"}]`, string(got))

	require.NoError(t, kv.Set(ctx, "hospital_patients", []byte(`[]`)))
	got, _, err = kv.Get(ctx, "hospital_patients")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(got))

	_, ok, err = kv.Get(ctx, "hospital_doctors")
	require.NoError(t, err)
	assert.False(t, ok, "keys are independent")
}

func TestMemory(t *testing.T) {
	exerciseKV(t, NewMemory())
}

func TestMemory_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	require.NoError(t, m.Set(ctx, "k", []byte("abc")))

	got, _, _ := m.Get(ctx, "k")
	got[0] = 'x'

	again, _, _ := m.Get(ctx, "k")
	assert.Equal(t, "abc", string(again))
}

func TestMemory_FailWrites(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	m.FailWrites = errors.New("quota exceeded")

	err := m.Set(ctx, "k", []byte("v"))
	assert.EqualError(t, err, "quota exceeded")

	_, ok, _ := m.Get(ctx, "k")
	assert.False(t, ok)
}

func TestFile(t *testing.T) {
	dir := t.TempDir()
	f, err := NewFile(dir)
	require.NoError(t, err)
	exerciseKV(t, f)

	_, err = os.Stat(filepath.Join(dir, "hospital_patients.json"))
	assert.NoError(t, err)

	leftovers, _ := filepath.Glob(filepath.Join(dir, "*.tmp"))
	assert.Empty(t, leftovers)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		kv, err := Open(ctx, &config.Config{Storage: config.StorageConfig{Backend: BackendMemory}})
		require.NoError(t, err)
		assert.IsType(t, &Memory{}, kv)
	})

	t.Run("file", func(t *testing.T) {
		kv, err := Open(ctx, &config.Config{Storage: config.StorageConfig{Backend: BackendFile, DataDir: t.TempDir()}})
		require.NoError(t, err)
		assert.IsType(t, &File{}, kv)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := Open(ctx, &config.Config{Storage: config.StorageConfig{Backend: "localStorage"}})
		var unknown ErrUnknownBackend
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, "localStorage", unknown.Name)
	})
}

func TestOpen_FailureReturnsNilKV(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	kv, err := Open(context.Background(), &config.Config{Storage: config.StorageConfig{
		Backend: BackendFile,
		DataDir: filepath.Join(blocker, "data"),
	}})
	require.Error(t, err)
	assert.True(t, kv == nil, "a failed open must not return a typed nil backend")
}
