package observable

import (
	"github.com/krew-solutions/ascetic-rx-go/asceticrx/deferred"
	"github.com/krew-solutions/ascetic-rx-go/asceticrx/disposable"
	"github.com/krew-solutions/ascetic-rx-go/asceticrx/option"
)

// FromDeferred emits the resolved value and completes, or fails with the
// rejection. Every subscription registers its own handlers on d.
func FromDeferred[T any](d deferred.Deferred[T]) Observable[T] {
	return New(func(next func(T), fail func(error), complete func()) Cleanup {
		d.Then(func(value T) (any, error) {
			next(value)
			complete()
			return nil, nil
		}, func(err error) (any, error) {
			fail(err)
			return nil, nil
		})
		return nil
	})
}

// ToDeferred subscribes to source and settles with its last value once it
// completes, or rejects with its error. The deferred stays pending if the
// returned subscription is disposed first.
func ToDeferred[T any](source Observable[T]) (*deferred.DeferredImp[option.Option[T]], disposable.Disposable) {
	result := deferred.New[option.Option[T]]()
	last := option.Nothing[T]()
	subscription := source.Subscribe(func(value T) {
		last = option.Some(value)
	}, result.Reject, func() {
		result.Resolve(last)
	})
	return result, subscription
}

// Last subscribes to source, disposes the subscription as soon as Subscribe
// returns and reports what was delivered in between. done is false when the
// source had not terminated by then. Meant for synchronous sources.
func Last[T any](source Observable[T]) (last option.Option[T], done bool, err error) {
	source.Subscribe(func(value T) {
		last = option.Some(value)
	}, func(e error) {
		err = e
		done = true
	}, func() {
		done = true
	}).Dispose()
	return last, done, err
}
