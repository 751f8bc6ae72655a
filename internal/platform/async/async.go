// Package async runs a computation once after a fixed delay and hands its
// outcome back on a channel.
package async

import "time"

// Result carries the outcome of a delayed computation.
type Result[T any] struct {
	Value T
	Err   error
}

// After evaluates fn on its own goroutine once d has elapsed. The returned
// channel is buffered, so the goroutine finishes even if nobody receives.
// There is no way to cancel a scheduled computation.
func After[T any](d time.Duration, fn func() (T, error)) <-chan Result[T] {
	ch := make(chan Result[T], 1)
	time.AfterFunc(d, func() {
		v, err := fn()
		ch <- Result[T]{Value: v, Err: err}
	})
	return ch
}

// Await blocks until the computation scheduled by After completes.
func Await[T any](d time.Duration, fn func() (T, error)) (T, error) {
	res := <-After(d, fn)
	return res.Value, res.Err
}
