package vselect

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// DebounceOption configures a Debouncer
type DebounceOption func(*debounceOptions)

type debounceOptions struct {
	clock clockwork.Clock
}

// WithClock makes the debouncer schedule on clock instead of the real clock
func WithClock(clock clockwork.Clock) DebounceOption {
	return func(o *debounceOptions) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// Debouncer delays calls to fn until delay has passed without a new call.
// Only the last call of a burst runs, with that call's argument.
type Debouncer[T any] struct {
	fn    func(T)
	delay time.Duration
	clock clockwork.Clock

	mu    sync.Mutex
	timer clockwork.Timer
	gen   uint64
}

// NewDebouncer creates a trailing-edge debouncer around fn.
// With delay <= 0 every Call runs fn immediately on the caller's goroutine.
func NewDebouncer[T any](delay time.Duration, fn func(T), opts ...DebounceOption) *Debouncer[T] {
	o := debounceOptions{clock: clockwork.NewRealClock()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Debouncer[T]{fn: fn, delay: delay, clock: o.clock}
}

// Debounce wraps fn in a trailing-edge debouncer. With delay <= 0 fn is
// returned unwrapped.
func Debounce[T any](delay time.Duration, fn func(T), opts ...DebounceOption) func(T) {
	if delay <= 0 {
		return fn
	}
	return NewDebouncer(delay, fn, opts...).Call
}

// Call cancels any pending invocation and schedules fn(arg) after the delay
func (d *Debouncer[T]) Call(arg T) {
	if d.delay <= 0 {
		d.fn(arg)
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.timer = d.clock.AfterFunc(d.delay, func() {
		d.fire(gen, arg)
	})
}

// fire runs fn unless a later Call or Stop superseded generation gen.
// Timer.Stop cannot recall a callback that has already started, so the
// generation check is what keeps a burst down to one invocation.
func (d *Debouncer[T]) fire(gen uint64, arg T) {
	d.mu.Lock()
	if gen != d.gen {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.mu.Unlock()

	d.fn(arg)
}

// Stop drops the pending invocation, if any, and reports whether one was dropped
func (d *Debouncer[T]) Stop() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer == nil {
		return false
	}
	d.timer.Stop()
	d.timer = nil
	d.gen++
	return true
}

// Pending reports whether an invocation is scheduled
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}
