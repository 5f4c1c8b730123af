package observable

import (
	"context"

	"github.com/krew-solutions/ascetic-rx-go/asceticrx/disposable"
)

// Of emits value and completes.
func Of[T any](value T) Observable[T] {
	return New(func(next func(T), _ func(error), complete func()) Cleanup {
		next(value)
		complete()
		return nil
	})
}

// Never emits nothing and never terminates.
func Never[T any]() Observable[T] {
	return New(func(func(T), func(error), func()) Cleanup {
		return nil
	})
}

// Empty completes without emitting.
func Empty[T any]() Observable[T] {
	return New(func(_ func(T), _ func(error), complete func()) Cleanup {
		complete()
		return nil
	})
}

// Throw fails with err without emitting.
func Throw[T any](err error) Observable[T] {
	return New(func(_ func(T), fail func(error), _ func()) Cleanup {
		fail(err)
		return nil
	})
}

// Merge subscribes to every source in order and forwards all their values.
//
// The merged stream fails with the first source error, after which the
// remaining sources are not subscribed and the subscribed ones are disposed.
// It completes once every source has completed; with no sources it completes
// immediately.
func Merge[T any](sources ...Observable[T]) Observable[T] {
	return NewWithContext(func(lifetime context.Context, next func(T), fail func(error), complete func()) Cleanup {
		if len(sources) == 0 {
			complete()
			return nil
		}

		subscriptions := disposable.NewCompositeDisposable()
		remaining := len(sources)
		failed := false

		for _, source := range sources {
			if failed {
				break
			}
			subscriptions.Add(source.SubscribeContext(lifetime, next, func(err error) {
				failed = true
				fail(err)
			}, func() {
				remaining--
				if remaining == 0 {
					complete()
				}
			}))
		}

		return subscriptions.Dispose
	})
}
