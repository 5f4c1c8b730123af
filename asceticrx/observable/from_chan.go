package observable

import "context"

// FromChan emits the values received from ch and completes when ch is
// closed. The producer drains ch synchronously, so Subscribe blocks until the
// channel is closed, ctx is done, or the subscription ends from inside a
// callback. When ctx is done first the stream fails with ctx.Err().
func FromChan[T any](ctx context.Context, ch <-chan T) Observable[T] {
	return NewWithContext(func(lifetime context.Context, next func(T), fail func(error), complete func()) Cleanup {
		for {
			select {
			case <-lifetime.Done():
				return nil
			case <-ctx.Done():
				fail(ctx.Err())
				return nil
			case value, ok := <-ch:
				if !ok {
					complete()
					return nil
				}
				next(value)
			}
		}
	})
}
