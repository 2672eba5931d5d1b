package deadline

import (
	"context"
	"time"
)

// Result is the tagged outcome of Await: the operation either completed
// (Value, Err) before the deadline, or the deadline fired first (TimedOut).
type Result[T any] struct {
	Value    T
	Err      error
	TimedOut bool
}

// Completed reports whether the operation settled before the deadline,
// regardless of whether it succeeded.
func (r Result[T]) Completed() bool {
	return !r.TimedOut
}

// Await runs op and waits at most d for it to settle. Whichever of the
// operation and the timer settles first determines the result; the loser is
// abandoned and its eventual settlement is ignored.
//
// The abandoned operation is NOT cancelled at the transport level: op keeps
// the caller's context, so a timed-out delivery call settles into the void
// with no observer. Accepted behavior, see DESIGN.md.
func Await[T any](ctx context.Context, d time.Duration, op func(context.Context) (T, error)) Result[T] {
	type settled struct {
		value T
		err   error
	}

	// Buffered so the losing goroutine can settle and exit.
	done := make(chan settled, 1)
	go func() {
		v, err := op(ctx)
		done <- settled{value: v, err: err}
	}()

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case s := <-done:
		return Result[T]{Value: s.value, Err: s.err}
	case <-timer.C:
		return Result[T]{TimedOut: true}
	case <-ctx.Done():
		return Result[T]{Err: ctx.Err()}
	}
}
