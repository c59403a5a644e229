// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers can register
// hooks at startup to receive events about graph construction, query
// solving, and cache operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach avoids import cycles (hooks are registered by main, not
// by libraries) and keeps the solver free of observability-framework
// dependencies while allowing any backend behind the interfaces.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetSolverHooks(&mySolverHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Solver().OnBuildStart(ctx, length, wordCount)
//	// ... build edges ...
//	observability.Solver().OnBuildComplete(ctx, length, edgeCount, duration)
package observability

import (
	"context"
	"sync"
	"time"
)

// SolverHooks receives events from graph construction and query solving.
type SolverHooks interface {
	// OnBuildStart is called before the O(V²) edge scan for one
	// word-length graph.
	OnBuildStart(ctx context.Context, wordLength, wordCount int)

	// OnBuildComplete is called after the graph's edges exist.
	OnBuildComplete(ctx context.Context, wordLength, edgeCount int, duration time.Duration)

	// OnSolveStart is called before a single-source shortest-path run.
	OnSolveStart(ctx context.Context, from, to string)

	// OnSolveComplete reports the outcome of one query. cost is -1 when
	// the destination was unreachable.
	OnSolveComplete(ctx context.Context, from, to string, cost int, duration time.Duration, err error)
}

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// nopSolverHooks is the default no-op implementation.
type nopSolverHooks struct{}

func (nopSolverHooks) OnBuildStart(context.Context, int, int)                 {}
func (nopSolverHooks) OnBuildComplete(context.Context, int, int, time.Duration) {}
func (nopSolverHooks) OnSolveStart(context.Context, string, string)           {}
func (nopSolverHooks) OnSolveComplete(context.Context, string, string, int, time.Duration, error) {
}

// nopCacheHooks is the default no-op implementation.
type nopCacheHooks struct{}

func (nopCacheHooks) OnCacheHit(context.Context, string)       {}
func (nopCacheHooks) OnCacheMiss(context.Context, string)      {}
func (nopCacheHooks) OnCacheSet(context.Context, string, int) {}

var (
	mu          sync.RWMutex
	solverHooks SolverHooks = nopSolverHooks{}
	cacheHooks  CacheHooks  = nopCacheHooks{}
)

// SetSolverHooks registers solver instrumentation.
// Passing nil restores the no-op default.
func SetSolverHooks(h SolverHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h == nil {
		solverHooks = nopSolverHooks{}
		return
	}
	solverHooks = h
}

// SetCacheHooks registers cache instrumentation.
// Passing nil restores the no-op default.
func SetCacheHooks(h CacheHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h == nil {
		cacheHooks = nopCacheHooks{}
		return
	}
	cacheHooks = h
}

// Solver returns the registered solver hooks.
func Solver() SolverHooks {
	mu.RLock()
	defer mu.RUnlock()
	return solverHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	mu.RLock()
	defer mu.RUnlock()
	return cacheHooks
}
