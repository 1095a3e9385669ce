// Package kv implements the durable key-value store backing client state.
// Keys are opaque strings partitioned by slice (auth, favorites, theme);
// values are serialized text that must survive process restarts.
package kv

import "context"

// Pair is a single key-value entry for batched writes.
type Pair struct {
	Key   string
	Value []byte
}

// Repository is the persistence contract the state store depends on.
// Get returns common.ErrNotFound when the key is absent.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// SetMulti writes all pairs atomically: either every pair is persisted
	// or none is.
	SetMulti(ctx context.Context, pairs ...Pair) error
	Delete(ctx context.Context, keys ...string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
