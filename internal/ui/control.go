package ui

import (
	"context"
	stderrors "errors"
	"sync/atomic"
)

// ErrBusy is returned when a control already has a call outstanding.
var ErrBusy = stderrors.New("ui: request already in progress")

// Control allows one outstanding call at a time, like a button that is
// disabled until its request settles.
type Control struct {
	name    string
	pending atomic.Bool
}

// NewControl creates an idle control.
func NewControl(name string) *Control {
	return &Control{name: name}
}

// Name returns the control's label.
func (c *Control) Name() string { return c.name }

// Busy reports whether a call is outstanding.
func (c *Control) Busy() bool { return c.pending.Load() }

// Run calls fn unless another call is in flight.
func (c *Control) Run(ctx context.Context, fn func(context.Context) error) error {
	if !c.pending.CompareAndSwap(false, true) {
		return ErrBusy
	}
	defer c.pending.Store(false)
	return fn(ctx)
}
