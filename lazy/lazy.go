// Package lazy provides once-only, concurrency-safe initialization: what the
// classic Singleton actually needs, without the hidden global.
//
// The textbook Singleton couples three ideas: lazy creation, thread safety,
// and a process-wide access point. The first two are mechanics and live here.
// The third is a design decision this repo makes differently: the composition
// root (package app) constructs things once and passes them explicitly, so no
// package in this module exposes mutable global state.
//
// Two shapes cover the usual needs:
//
//   - Make wraps an initializer in a closure backed by sync.Once: the compact,
//     stdlib-idiomatic form.
//   - Value spells the check-lock-check discipline out: reads take a shared
//     lock (and find the value without blocking once it exists), the exclusive
//     lock is taken only inside the first-creation race window, and the done
//     flag is re-checked under it before constructing. Exactly one caller runs
//     the initializer; every caller observes the same value.
package lazy

import "sync"

// Make returns a function that computes init exactly once and returns the
// cached value on every call.
//
// Make panics immediately on a nil initializer: a once-container with nothing
// to run once is a caller bug.
func Make[T any](init func() T) func() T {
	if init == nil {
		panic("lazy: nil init function")
	}
	var (
		once  sync.Once
		value T
	)
	return func() T {
		once.Do(func() { value = init() })
		return value
	}
}

// Value is a lazily initialized container for a single T.
//
// The zero Value is not usable; construct with New. All methods are safe for
// concurrent use.
type Value[T any] struct {
	init func() T

	mu    sync.RWMutex
	value T
	done  bool
}

// New returns a Value that will build its content with init on first Get.
//
// New panics immediately on a nil initializer.
func New[T any](init func() T) *Value[T] {
	if init == nil {
		panic("lazy: nil init function")
	}
	return &Value[T]{init: init}
}

// Get returns the contained value, constructing it on first use.
//
// Concurrent first calls race only for who constructs: the initializer runs
// exactly once, and every caller returns the identical value. After the first
// construction Get never takes the exclusive lock.
func (l *Value[T]) Get() T {
	l.mu.RLock()
	if l.done {
		v := l.value
		l.mu.RUnlock()
		return v
	}
	l.mu.RUnlock()

	l.mu.Lock()
	defer l.mu.Unlock()
	// Re-check: another caller may have constructed while we waited.
	if !l.done {
		l.value = l.init()
		l.done = true
	}
	return l.value
}

// Initialized reports whether the value has been constructed yet.
func (l *Value[T]) Initialized() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.done
}
