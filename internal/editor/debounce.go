package editor

import "time"

// Debouncer coalesces a burst of values into the last one. It has no timer of
// its own; the event loop passes the current time in and polls Due.
type Debouncer[T any] struct {
	Delay time.Duration

	value   T
	last    time.Time
	pending bool
}

// NewDebouncer creates a debouncer with the given quiet window.
func NewDebouncer[T any](delay time.Duration) *Debouncer[T] {
	return &Debouncer[T]{Delay: delay}
}

// Push records v as the latest value and restarts the quiet window.
func (d *Debouncer[T]) Push(now time.Time, v T) {
	d.value = v
	d.last = now
	d.pending = true
}

// Due returns the latest value once the quiet window has passed since the
// last Push. Each pushed burst is delivered once.
func (d *Debouncer[T]) Due(now time.Time) (T, bool) {
	if !d.pending || now.Sub(d.last) < d.Delay {
		var zero T
		return zero, false
	}
	d.pending = false
	return d.value, true
}

// Flush delivers a pending value immediately.
func (d *Debouncer[T]) Flush() (T, bool) {
	if !d.pending {
		var zero T
		return zero, false
	}
	d.pending = false
	return d.value, true
}

// Peek returns the pending value without delivering it.
func (d *Debouncer[T]) Peek() (T, bool) {
	if !d.pending {
		var zero T
		return zero, false
	}
	return d.value, true
}

// Cancel drops a pending value undelivered.
func (d *Debouncer[T]) Cancel() {
	var zero T
	d.value = zero
	d.pending = false
}

// Pending reports whether a value is waiting.
func (d *Debouncer[T]) Pending() bool {
	return d.pending
}

// Deadline is when the pending value becomes due.
func (d *Debouncer[T]) Deadline() time.Time {
	return d.last.Add(d.Delay)
}
