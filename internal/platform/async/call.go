// Package async holds the single-result future returned by client operations.
package async

import "context"

type Call[T any] struct {
	done chan struct{}
	val  T
	err  error
}

// Go runs fn on its own goroutine and returns a Call that settles with fn's result.
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) *Call[T] {
	c := &Call[T]{done: make(chan struct{})}

	go func() {
		defer close(c.done)
		c.val, c.err = fn(ctx)
	}()

	return c
}

func (c *Call[T]) Done() <-chan struct{} { return c.done }

// Wait blocks until the call settles or ctx is done. ctx bounds the wait only;
// the underlying call keeps running.
func (c *Call[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-c.done:
		return c.val, c.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

func (c *Call[T]) Result() (T, error) {
	<-c.done
	return c.val, c.err
}
