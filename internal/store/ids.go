package store

import (
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// IDGenerator hands out entity ids. Collections retry on a clash with an
// existing id, so generators only need to be distinct from their own
// previous output.
type IDGenerator interface {
	NewID() string
}

const (
	IDStrategyCounter   = "counter"
	IDStrategyUUID      = "uuid"
	IDStrategyTimestamp = "timestamp"
)

func NewIDGenerator(strategy string) (IDGenerator, error) {
	switch strategy {
	case IDStrategyCounter:
		return &CounterIDs{}, nil
	case IDStrategyUUID:
		return UUIDs{}, nil
	case IDStrategyTimestamp, "":
		return &TimestampIDs{Now: time.Now}, nil
	default:
		return nil, fmt.Errorf("unknown id strategy %q", strategy)
	}
}

// CounterIDs yields "1", "2", "3", ...
type CounterIDs struct {
	n atomic.Uint64
}

func (c *CounterIDs) NewID() string {
	return strconv.FormatUint(c.n.Add(1), 10)
}

type UUIDs struct{}

func (UUIDs) NewID() string { return uuid.NewString() }

// TimestampIDs yields the current Unix time in milliseconds, bumped by one
// when two calls land in the same millisecond.
type TimestampIDs struct {
	Now func() time.Time

	mu   sync.Mutex
	last int64
}

func (t *TimestampIDs) NewID() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	ms := t.Now().UnixMilli()
	if ms <= t.last {
		ms = t.last + 1
	}
	t.last = ms
	return strconv.FormatInt(ms, 10)
}
