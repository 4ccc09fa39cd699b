// Package revalidate carries the cache-invalidation signal emitted after
// every successful mutation, telling the rendering layer which logical paths
// became stale.
package revalidate

import (
	"context"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Signal marks previously rendered output for a path as stale. Emission is
// fire-and-forget: a failed signal is logged by the caller and never rolls
// back the mutation that triggered it.
type Signal interface {
	Revalidate(ctx context.Context, path string) error
}

const (
	pageKeyPrefix = "page:"
	generationKey = "page:generation"
)

// RedisSignal invalidates rendered pages cached in Redis: the page key for
// the path is dropped and a global generation counter is bumped so renderers
// holding stale handles can notice.
type RedisSignal struct {
	client *redis.Client
}

func NewRedisSignal(client *redis.Client) *RedisSignal {
	return &RedisSignal{client: client}
}

func (s *RedisSignal) Revalidate(ctx context.Context, path string) error {
	if s.client == nil {
		return nil
	}

	if err := s.client.Del(ctx, pageKeyPrefix+path).Err(); err != nil {
		return err
	}

	return s.client.Incr(ctx, generationKey).Err()
}

// Recorder is a Signal for tests; it remembers every path it was asked to
// revalidate, in order.
type Recorder struct {
	mu    sync.Mutex
	paths []string
}

func (r *Recorder) Revalidate(_ context.Context, path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, path)
	return nil
}

func (r *Recorder) Paths() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.paths))
	copy(out, r.paths)
	return out
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = nil
}
