// Package store keeps entity collections in memory and mirrors every change
// to a durable key-value backend. The whole collection is the unit of read
// and write: a mutation re-encodes and rewrites the full array.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/harentsoaR/medicare-api/internal/models"
	"github.com/harentsoaR/medicare-api/internal/storage"
)

// ErrCorrupt wraps a stored value that cannot be decoded.
var ErrCorrupt = errors.New("stored collection is malformed")

type Options struct {
	IDs    IDGenerator
	Clock  func() time.Time
	Logger *zerolog.Logger
}

// Collection owns one entity collection. The stored value is adopted as-is
// on load; seeds are used only when the key is absent.
//
// Each write goes to storage before the in-memory slice is swapped, so a
// failed write leaves both sides as they were.
type Collection[T models.Entity[T]] struct {
	key  string
	kv   storage.KV
	seed func() []T
	ids  IDGenerator
	now  func() time.Time
	log  zerolog.Logger

	mu        sync.Mutex
	loaded    bool
	items     []T
	listeners []func([]T)
	rules     func(candidate T, others []T) error
}

func NewCollection[T models.Entity[T]](key string, kv storage.KV, seed func() []T, opts Options) *Collection[T] {
	c := &Collection[T]{
		key:  key,
		kv:   kv,
		seed: seed,
		ids:  opts.IDs,
		now:  opts.Clock,
	}
	if c.ids == nil {
		c.ids = &TimestampIDs{Now: time.Now}
	}
	if c.now == nil {
		c.now = time.Now
	}
	if opts.Logger != nil {
		c.log = opts.Logger.With().Str("collection", key).Logger()
	} else {
		c.log = log.With().Str("collection", key).Logger()
	}
	return c
}

// Subscribe registers fn to receive a snapshot after every load and every
// mutation. fn runs under the collection lock and must not call back into
// the collection.
func (c *Collection[T]) Subscribe(fn func([]T)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
	if c.loaded {
		fn(c.snapshot())
	}
}

// Validate installs a check run on every added or updated entity before it
// is persisted. others is the rest of the collection. A failing check leaves
// the collection and storage untouched.
func (c *Collection[T]) Validate(fn func(candidate T, others []T) error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rules = fn
}

// Load reads the collection from storage, seeding it when the key is absent.
// Calling it again re-reads storage.
func (c *Collection[T]) Load(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loaded = false
	return c.ensureLoaded(ctx)
}

func (c *Collection[T]) ensureLoaded(ctx context.Context) error {
	if c.loaded {
		return nil
	}

	raw, ok, err := c.kv.Get(ctx, c.key)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", c.key, err)
	}

	if !ok {
		seeded := c.seed()
		if seeded == nil {
			seeded = []T{}
		}
		if err := c.write(ctx, seeded); err != nil {
			return err
		}
		c.items = seeded
		c.loaded = true
		c.log.Info().Int("count", len(seeded)).Msg("seeded collection")
		c.notify()
		return nil
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCorrupt, c.key, err)
	}
	if items == nil {
		items = []T{}
	}
	c.items = items
	c.loaded = true
	c.log.Debug().Int("count", len(items)).Msg("loaded collection")
	c.notify()
	return nil
}

// Add stores a new entity built from fields with a fresh id and
// createdAt == updatedAt == now.
func (c *Collection[T]) Add(ctx context.Context, fields models.Patch[T]) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	if err := c.ensureLoaded(ctx); err != nil {
		return zero, err
	}

	now := c.stamp()
	entity := fields.ApplyTo(zero).WithMeta(models.Meta{
		ID:        c.nextID(),
		CreatedAt: now,
		UpdatedAt: now,
	})

	if err := c.check(entity, c.items); err != nil {
		return zero, err
	}

	next := make([]T, len(c.items), len(c.items)+1)
	copy(next, c.items)
	next = append(next, entity)

	if err := c.commit(ctx, next); err != nil {
		return zero, err
	}
	c.log.Debug().Str("id", entity.Metadata().ID).Msg("added entity")
	return entity, nil
}

// Update applies patch to the entity with the given id and refreshes
// updatedAt. A missing id leaves the collection unchanged and is not an
// error; the collection is persisted either way.
func (c *Collection[T]) Update(ctx context.Context, id string, patch models.Patch[T]) (T, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	if err := c.ensureLoaded(ctx); err != nil {
		return zero, false, err
	}

	next := make([]T, len(c.items))
	copy(next, c.items)

	idx := c.indexOf(id)
	var updated T
	if idx >= 0 {
		meta := next[idx].Metadata()
		meta.UpdatedAt = c.stamp()
		updated = patch.ApplyTo(next[idx]).WithMeta(meta)
		others := append(append([]T{}, c.items[:idx]...), c.items[idx+1:]...)
		if err := c.check(updated, others); err != nil {
			return zero, false, err
		}
		next[idx] = updated
	}

	if err := c.commit(ctx, next); err != nil {
		return zero, false, err
	}
	if idx < 0 {
		c.log.Debug().Str("id", id).Msg("update skipped, no such entity")
		return zero, false, nil
	}
	c.log.Debug().Str("id", id).Msg("updated entity")
	return updated, true, nil
}

// Delete removes the entity with the given id if present. The collection is
// persisted either way.
func (c *Collection[T]) Delete(ctx context.Context, id string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ensureLoaded(ctx); err != nil {
		return false, err
	}

	next := make([]T, 0, len(c.items))
	for _, item := range c.items {
		if item.Metadata().ID != id {
			next = append(next, item)
		}
	}
	removed := len(next) != len(c.items)

	if err := c.commit(ctx, next); err != nil {
		return false, err
	}
	c.log.Debug().Str("id", id).Bool("removed", removed).Msg("delete")
	return removed, nil
}

// List returns the collection in insertion order.
func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	return c.Filter(ctx, nil)
}

// Filter returns the entities keep accepts, in insertion order. A nil keep
// accepts everything.
func (c *Collection[T]) Filter(ctx context.Context, keep func(T) bool) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	out := make([]T, 0, len(c.items))
	for _, item := range c.items {
		if keep == nil || keep(item) {
			out = append(out, item)
		}
	}
	return out, nil
}

// Search returns the entities matching term case-insensitively.
func (c *Collection[T]) Search(ctx context.Context, term string) ([]T, error) {
	return c.Filter(ctx, func(item T) bool { return item.Matches(term) })
}

func (c *Collection[T]) Get(ctx context.Context, id string) (T, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	if err := c.ensureLoaded(ctx); err != nil {
		return zero, false, err
	}
	if idx := c.indexOf(id); idx >= 0 {
		return c.items[idx], true, nil
	}
	return zero, false, nil
}

func (c *Collection[T]) check(candidate T, others []T) error {
	if c.rules == nil {
		return nil
	}
	return c.rules(candidate, others)
}

func (c *Collection[T]) commit(ctx context.Context, next []T) error {
	if err := c.write(ctx, next); err != nil {
		return err
	}
	c.items = next
	c.notify()
	return nil
}

func (c *Collection[T]) write(ctx context.Context, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", c.key, err)
	}
	if err := c.kv.Set(ctx, c.key, raw); err != nil {
		return fmt.Errorf("failed to persist %s: %w", c.key, err)
	}
	return nil
}

func (c *Collection[T]) notify() {
	if len(c.listeners) == 0 {
		return
	}
	snap := c.snapshot()
	for _, fn := range c.listeners {
		fn(snap)
	}
}

func (c *Collection[T]) snapshot() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Collection[T]) indexOf(id string) int {
	for i, item := range c.items {
		if item.Metadata().ID == id {
			return i
		}
	}
	return -1
}

func (c *Collection[T]) nextID() string {
	for {
		id := c.ids.NewID()
		if c.indexOf(id) < 0 {
			return id
		}
	}
}

func (c *Collection[T]) stamp() time.Time {
	return c.now().UTC()
}
