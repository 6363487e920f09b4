// Package searchcache keeps recent search responses so repeated queries skip the database.
package searchcache

import (
	"context"
	"errors"
	"time"
)

// ErrMiss is returned by Get when nothing is cached under the key.
var ErrMiss = errors.New("searchcache: miss")

// Slot identifies where a value for a key lives at the moment Get was called.
// Filling a miss through the returned slot never lands in a newer generation,
// so a result computed before an invalidation cannot outlive it.
type Slot string

// Cache stores opaque payloads. Invalidate drops every entry written so far.
type Cache interface {
	// Get returns the cached value, or ErrMiss together with the slot to fill.
	Get(ctx context.Context, key string) ([]byte, Slot, error)
	Set(ctx context.Context, slot Slot, value []byte, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}

// Noop never stores anything.
type Noop struct{}

func (Noop) Get(_ context.Context, key string) ([]byte, Slot, error) {
	return nil, Slot(key), ErrMiss
}

func (Noop) Set(context.Context, Slot, []byte, time.Duration) error { return nil }

func (Noop) Invalidate(context.Context) error { return nil }
