package memory

import (
	"context"
	"sync"
	"time"

	"github.com/JiYeong0127/paperdeck/internal/logger"
	"github.com/JiYeong0127/paperdeck/internal/ports"
)

// DefaultFreshFor is how long a stored value counts as fresh when the
// caller does not configure a window.
const DefaultFreshFor = 30 * time.Second

type entry struct {
	value      any
	freshUntil time.Time
}

// flight tracks one running fetch. cancelled is flipped under the cache
// mutex by CancelInFlight so the fetch result is thrown away on arrival.
type flight struct {
	cancel    context.CancelFunc
	cancelled bool
}

// Cache is the in-memory ports.QueryCache. One mutex guards both the
// entry table and the in-flight registry, which keeps every operation
// atomic with respect to the others.
type Cache struct {
	mu       sync.Mutex
	freshFor time.Duration
	clock    ports.Clock
	log      logger.Logger
	entries  map[ports.CacheKey]*entry
	inflight map[ports.CacheKey]map[*flight]struct{}
}

func New(freshFor time.Duration, clock ports.Clock, log logger.Logger) *Cache {
	if freshFor <= 0 {
		freshFor = DefaultFreshFor
	}
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if log == nil {
		log = logger.Nop()
	}

	return &Cache{
		freshFor: freshFor,
		clock:    clock,
		log:      log,
		entries:  make(map[ports.CacheKey]*entry),
		inflight: make(map[ports.CacheKey]map[*flight]struct{}),
	}
}

func (c *Cache) Get(key ports.CacheKey) (any, bool, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false, false
	}

	return e.value, c.clock.Now().After(e.freshUntil), true
}

func (c *Cache) Set(key ports.CacheKey, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = &entry{
		value:      value,
		freshUntil: c.clock.Now().Add(c.freshFor),
	}
}

// CancelInFlight aborts every fetch currently running for exactly this
// key. Descendant keys are untouched: cancellation is a point operation,
// unlike MarkStale.
func (c *Cache) CancelInFlight(key ports.CacheKey) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for fl := range c.inflight[key] {
		fl.cancelled = true
		fl.cancel()
	}
}

// MarkStale drops freshness for the key and all keys it covers. Values
// stay readable through Get until a later Set or Fetch replaces them.
func (c *Cache) MarkStale(key ports.CacheKey) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for k, e := range c.entries {
		if key.Covers(k) {
			e.freshUntil = time.Time{}
		}
	}
}

// Fetch serves the stored value while it is fresh and otherwise runs fn.
// A failed fn gets exactly one more attempt unless its context is already
// done. When CancelInFlight fired during the fetch, the result is
// discarded and whatever the cache holds at that moment wins.
//
// Concurrent Fetches for one key each run their own fn; the last writer
// wins, matching the last-known-response contract.
func (c *Cache) Fetch(ctx context.Context, key ports.CacheKey, fn ports.FetchFunc) (any, error) {
	c.mu.Lock()
	if e, ok := c.entries[key]; ok && !c.clock.Now().After(e.freshUntil) {
		value := e.value
		c.mu.Unlock()
		return value, nil
	}

	fctx, cancel := context.WithCancel(ctx)
	fl := &flight{cancel: cancel}
	if c.inflight[key] == nil {
		c.inflight[key] = make(map[*flight]struct{})
	}
	c.inflight[key][fl] = struct{}{}
	c.mu.Unlock()

	value, err := fn(fctx)
	if err != nil && fctx.Err() == nil {
		c.log.Debug("retrying failed fetch", logger.String("key", string(key)), logger.Error(err))
		value, err = fn(fctx)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	cancel()
	delete(c.inflight[key], fl)
	if len(c.inflight[key]) == 0 {
		delete(c.inflight, key)
	}

	if fl.cancelled {
		c.log.Debug("discarding cancelled fetch", logger.String("key", string(key)))
		if e, ok := c.entries[key]; ok {
			return e.value, nil
		}
		return nil, context.Canceled
	}
	if err != nil {
		return nil, err
	}

	c.entries[key] = &entry{
		value:      value,
		freshUntil: c.clock.Now().Add(c.freshFor),
	}

	return value, nil
}
