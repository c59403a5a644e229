package observability

import (
	"context"
	"testing"
	"time"
)

type countingSolverHooks struct {
	builds int
	solves int
}

func (h *countingSolverHooks) OnBuildStart(context.Context, int, int) { h.builds++ }
func (h *countingSolverHooks) OnBuildComplete(context.Context, int, int, time.Duration) {
}
func (h *countingSolverHooks) OnSolveStart(context.Context, string, string) { h.solves++ }
func (h *countingSolverHooks) OnSolveComplete(context.Context, string, string, int, time.Duration, error) {
}

func TestSetSolverHooks(t *testing.T) {
	h := &countingSolverHooks{}
	SetSolverHooks(h)
	defer SetSolverHooks(nil)

	ctx := context.Background()
	Solver().OnBuildStart(ctx, 3, 10)
	Solver().OnSolveStart(ctx, "cat", "dog")
	Solver().OnSolveStart(ctx, "cot", "dot")

	if h.builds != 1 || h.solves != 2 {
		t.Errorf("hooks saw builds=%d solves=%d, want 1, 2", h.builds, h.solves)
	}
}

func TestNilRestoresNoop(t *testing.T) {
	SetSolverHooks(&countingSolverHooks{})
	SetSolverHooks(nil)
	SetCacheHooks(nil)

	// Must not panic through the no-op implementations.
	ctx := context.Background()
	Solver().OnSolveComplete(ctx, "a", "b", -1, 0, nil)
	Cache().OnCacheHit(ctx, "path")
	Cache().OnCacheMiss(ctx, "path")
	Cache().OnCacheSet(ctx, "path", 42)
}
