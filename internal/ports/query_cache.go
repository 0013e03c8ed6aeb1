package ports

import (
	"context"
	"strings"
)

// CacheKey addresses a single cached value. Keys are ordered identifier
// tuples rendered as slash-joined segments; a key is the ancestor of every
// key that extends its tuple ("papers" covers "papers/detail/42").
type CacheKey string

// CacheKeyOf joins tuple parts into a CacheKey.
func CacheKeyOf(parts ...string) CacheKey {
	return CacheKey(strings.Join(parts, "/"))
}

// Covers reports whether k addresses key itself or one of its descendants.
func (k CacheKey) Covers(key CacheKey) bool {
	if k == key {
		return true
	}

	return strings.HasPrefix(string(key), string(k)+"/")
}

// FetchFunc loads the value for a cache key from its source of truth.
type FetchFunc func(ctx context.Context) (any, error)

// QueryCache is the process-wide last-known-response store shared by every
// read hook and by the bookmark mutation flow. All methods are safe for
// concurrent use and each is individually atomic; Set is synchronous and
// immediately visible to subsequent Gets.
type QueryCache interface {
	// Get returns the last-known value for the key, whether it is stale, and
	// whether an entry exists at all.
	Get(key CacheKey) (value any, stale bool, ok bool)

	// Set replaces the entry for the key and resets its freshness deadline.
	Set(key CacheKey, value any)

	// CancelInFlight aborts any pending Fetch for exactly this key, so a
	// response that started before a later Set can no longer overwrite it.
	CancelInFlight(key CacheKey)

	// MarkStale forces the key and all of its descendants to refetch on next
	// read. Values are kept; only freshness is dropped.
	MarkStale(key CacheKey)

	// Fetch returns the cached value while fresh, otherwise runs fn and
	// stores its result. A failed fn is retried once; a fetch cancelled via
	// CancelInFlight discards its result in favor of whatever the cache holds.
	Fetch(ctx context.Context, key CacheKey, fn FetchFunc) (any, error)
}
