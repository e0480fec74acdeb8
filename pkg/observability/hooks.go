// Package observability provides hooks for instrumenting board transforms.
//
// Hooks default to no-ops. The entry point registers an implementation at
// startup and callers emit events around each transform:
//
//	observability.Transform().OnTransformStart(ctx, rows, replacements)
//	out := board.Transform(b, rs)
//	observability.Transform().OnTransformComplete(ctx, rows, time.Since(start), nil)
//
// The board package itself stays free of hooks so Transform remains pure.
package observability

import (
	"context"
	"sync"
	"time"
)

// TransformHooks receives events around board transforms.
type TransformHooks interface {
	OnTransformStart(ctx context.Context, rows, replacements int)
	OnTransformComplete(ctx context.Context, rows int, duration time.Duration, err error)
}

// NoopTransformHooks is a no-op implementation of TransformHooks.
type NoopTransformHooks struct{}

func (NoopTransformHooks) OnTransformStart(context.Context, int, int)                     {}
func (NoopTransformHooks) OnTransformComplete(context.Context, int, time.Duration, error) {}

var (
	hooksMu        sync.RWMutex
	transformHooks TransformHooks = NoopTransformHooks{}
)

// SetTransformHooks registers custom transform hooks.
// A nil argument leaves the current hooks in place.
func SetTransformHooks(h TransformHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		transformHooks = h
	}
}

// Transform returns the registered transform hooks.
func Transform() TransformHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return transformHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	transformHooks = NoopTransformHooks{}
}
