package observable

import (
	"context"

	"github.com/krew-solutions/ascetic-rx-go/asceticrx/disposable"
)

// Cleanup releases what a producer acquired. A nil Cleanup is allowed.
type Cleanup func()

// Producer emits values for one subscription.
type Producer[T any] func(next func(T), fail func(error), complete func()) Cleanup

// ContextProducer is a Producer that also receives a context which is
// cancelled once the subscription ends, by dispose or by a terminal signal.
// Producers that block or loop use it to stop early.
type ContextProducer[T any] func(ctx context.Context, next func(T), fail func(error), complete func()) Cleanup

type Observable[T any] struct {
	produce    ContextProducer[T]
	contextual bool
}

func New[T any](producer Producer[T]) Observable[T] {
	return Observable[T]{
		produce: func(_ context.Context, next func(T), fail func(error), complete func()) Cleanup {
			return producer(next, fail, complete)
		},
	}
}

func NewWithContext[T any](producer ContextProducer[T]) Observable[T] {
	return Observable[T]{produce: producer, contextual: true}
}

// Subscribe starts a new activation of the producer. Nil callbacks are
// replaced with no-ops. Disposing the result stops delivery and runs the
// producer's cleanup; it is safe to call any number of times.
func (o Observable[T]) Subscribe(onNext func(T), onError func(error), onComplete func()) disposable.Disposable {
	return o.subscribe(context.Background(), Observer[T]{Next: onNext, Error: onError, Complete: onComplete})
}

// SubscribeContext is Subscribe with a parent for the context handed to a
// ContextProducer. Cancelling ctx tells such a producer to stop; it does not
// dispose the subscription. Operators use it to pass their own lifetime
// upstream.
func (o Observable[T]) SubscribeContext(ctx context.Context, onNext func(T), onError func(error), onComplete func()) disposable.Disposable {
	return o.subscribe(ctx, Observer[T]{Next: onNext, Error: onError, Complete: onComplete})
}

func (o Observable[T]) SubscribeObserver(observer Observer[T]) disposable.Disposable {
	return o.subscribe(context.Background(), observer)
}

func (o Observable[T]) subscribe(ctx context.Context, observer Observer[T]) disposable.Disposable {
	a := newActivation(observer.withDefaults())
	if o.produce == nil {
		return disposable.NewDisposable(a.dispose)
	}
	return a.run(ctx, o.produce, o.contextual)
}
