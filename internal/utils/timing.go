package utils

import (
	"context"
	"sync"
	"time"
)

// Debounced delays calls to fn until wait has passed without another Call.
// Only the arguments of the latest call are delivered.
type Debounced[T any] struct {
	fn    func(T)
	wait  time.Duration
	mu    sync.Mutex
	timer *time.Timer
}

// Debounce wraps fn so that bursts of calls collapse into one trailing call
func Debounce[T any](fn func(T), wait time.Duration) *Debounced[T] {
	return &Debounced[T]{fn: fn, wait: wait}
}

// Call cancels any pending invocation and schedules fn(arg) after the wait
func (d *Debounced[T]) Call(arg T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.wait, func() { d.fn(arg) })
}

// Stop cancels the pending invocation, if any. It reports whether one was cancelled.
func (d *Debounced[T]) Stop() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer == nil {
		return false
	}
	stopped := d.timer.Stop()
	d.timer = nil
	return stopped
}

// Throttled runs fn at most once per limit window. Calls made inside the
// window are dropped, not queued.
type Throttled[T any] struct {
	fn         func(T)
	limit      time.Duration
	mu         sync.Mutex
	inThrottle bool
}

// Throttle wraps fn so it executes immediately and then rests for limit
func Throttle[T any](fn func(T), limit time.Duration) *Throttled[T] {
	return &Throttled[T]{fn: fn, limit: limit}
}

// Call runs fn(arg) synchronously unless a window is open. It reports whether fn ran.
func (t *Throttled[T]) Call(arg T) bool {
	t.mu.Lock()
	if t.inThrottle {
		t.mu.Unlock()
		return false
	}
	t.inThrottle = true
	t.mu.Unlock()

	time.AfterFunc(t.limit, func() {
		t.mu.Lock()
		t.inThrottle = false
		t.mu.Unlock()
	})

	t.fn(arg)
	return true
}

// Sleep pauses for d or until ctx is done, whichever comes first
func Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
