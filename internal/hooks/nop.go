package hooks

import (
	"context"

	"github.com/arloliu/vcut/types"
)

// NopHooks implements Hooks with no-op callbacks.
//
// This is the default implementation used when no custom hooks are provided,
// eliminating the need for nil checks throughout the codebase.
type NopHooks struct{}

// Compile-time assertions that NopHooks implements hook callbacks.
var (
	_ func(context.Context) error                    = (*NopHooks)(nil).OnRunStarted
	_ func(context.Context, types.Edge, error) error = (*NopHooks)(nil).OnEdgeFailed
	_ func(context.Context, types.RunSummary) error  = (*NopHooks)(nil).OnRunCompleted
)

// NewNop creates a new no-op hooks implementation.
//
// Returns:
//   - types.Hooks: Hooks with no-op implementations
func NewNop() types.Hooks {
	h := &NopHooks{}

	return types.Hooks{
		OnRunStarted:   h.OnRunStarted,
		OnEdgeFailed:   h.OnEdgeFailed,
		OnRunCompleted: h.OnRunCompleted,
	}
}

// Fill returns h with every nil callback replaced by its no-op version.
//
// Parameters:
//   - h: Hooks provided by the user, may be nil
//
// Returns:
//   - types.Hooks: Hooks whose callbacks are all non-nil
func Fill(h *types.Hooks) types.Hooks {
	out := NewNop()
	if h == nil {
		return out
	}
	if h.OnRunStarted != nil {
		out.OnRunStarted = h.OnRunStarted
	}
	if h.OnEdgeFailed != nil {
		out.OnEdgeFailed = h.OnEdgeFailed
	}
	if h.OnRunCompleted != nil {
		out.OnRunCompleted = h.OnRunCompleted
	}

	return out
}

// OnRunStarted is a no-op implementation.
func (h *NopHooks) OnRunStarted(ctx context.Context) error {
	return nil
}

// OnEdgeFailed is a no-op implementation.
func (h *NopHooks) OnEdgeFailed(ctx context.Context, edge types.Edge, err error) error {
	return nil
}

// OnRunCompleted is a no-op implementation.
func (h *NopHooks) OnRunCompleted(ctx context.Context, run types.RunSummary) error {
	return nil
}
