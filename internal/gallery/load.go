package gallery

import (
	"context"
	"sync"
)

// Status is the phase of a load operation.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

// LoadFailed wraps an upstream failure without interpreting it.
type LoadFailed struct {
	Err error
}

func (e *LoadFailed) Error() string { return "load failed: " + e.Err.Error() }

func (e *LoadFailed) Unwrap() error { return e.Err }

// LoadState is the observable state of a load. Data is only meaningful in
// StatusSuccess and Err only in StatusFailed.
type LoadState[T any] struct {
	Status Status
	Data   T
	Err    error
}

// Ticket identifies one started load.
type Ticket uint64

// Loader tracks the state of a repeatable load. Only the most recently
// started load may commit its outcome; results of superseded loads are
// dropped. There is no retry.
type Loader[T any] struct {
	mu       sync.Mutex
	latest   Ticket
	state    LoadState[T]
	onChange func(LoadState[T])
}

// NewLoader returns an idle loader. onChange, if set, observes every
// committed transition while the loader lock is held, so it must not call
// back into the loader.
func NewLoader[T any](onChange func(LoadState[T])) *Loader[T] {
	return &Loader[T]{onChange: onChange}
}

// Start moves the loader into StatusLoading and supersedes any load in
// flight.
func (l *Loader[T]) Start() Ticket {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.latest++
	var zero T
	l.commit(LoadState[T]{Status: StatusLoading, Data: zero})
	return l.latest
}

// Finish records the outcome of the load identified by t. It reports false
// and leaves the state untouched when a newer load has been started.
func (l *Loader[T]) Finish(t Ticket, data T, err error) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if t != l.latest {
		return false
	}
	if err != nil {
		l.commit(LoadState[T]{Status: StatusFailed, Err: &LoadFailed{Err: err}})
		return true
	}
	l.commit(LoadState[T]{Status: StatusSuccess, Data: data})
	return true
}

// Load runs fetch as a new load and returns the resulting state. current is
// false when the load was superseded before it completed; the returned
// state is then whatever the newer load has produced so far.
func (l *Loader[T]) Load(ctx context.Context, fetch func(context.Context) (T, error)) (state LoadState[T], current bool) {
	t := l.Start()
	data, err := fetch(ctx)
	current = l.Finish(t, data, err)
	return l.State(), current
}

// State returns the current state.
func (l *Loader[T]) State() LoadState[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

func (l *Loader[T]) commit(s LoadState[T]) {
	l.state = s
	if l.onChange != nil {
		l.onChange(s)
	}
}
