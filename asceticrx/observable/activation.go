package observable

import (
	"context"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/krew-solutions/ascetic-rx-go/asceticrx/disposable"
	"github.com/krew-solutions/ascetic-rx-go/asceticrx/single"
)

// activation is the state of one subscription.
//
// Next is an always-open path that any terminal signal or dispose closes.
// Error and complete each sit behind a single-fire channel; firing one of
// them first detaches the listener of the other.
type activation[T any] struct {
	onNext   func(T)
	nextOpen atomic.Bool

	setError    single.Setter[error]
	errorSub    disposable.Disposable
	setComplete single.Setter[struct{}]
	completeSub disposable.Disposable

	// last panic raised by a subscriber callback; the producer boundary
	// re-raises a panic only when it is this one.
	lastCallbackPanic atomic.Pointer[callbackPanic]

	mu       sync.Mutex
	disposed bool
	cleanup  Cleanup
	cancel   context.CancelFunc
}

func newActivation[T any](observer Observer[T]) *activation[T] {
	a := &activation[T]{onNext: observer.Next}
	a.nextOpen.Store(true)

	// Fresh channels have no subscriber yet, so Subscribe cannot fail here.
	errorCh := single.New(func(set single.Setter[error]) {
		a.setError = set
	})
	a.errorSub, _ = errorCh.Subscribe(func(err error) {
		a.deliver(func() { observer.Error(err) })
	})

	completeCh := single.New(func(set single.Setter[struct{}]) {
		a.setComplete = set
	})
	a.completeSub, _ = completeCh.Subscribe(func(struct{}) {
		a.deliver(observer.Complete)
	})

	return a
}

func (a *activation[T]) run(ctx context.Context, produce ContextProducer[T], contextual bool) disposable.Disposable {
	if contextual {
		var cancel context.CancelFunc
		ctx, cancel = context.WithCancel(ctx)
		a.mu.Lock()
		a.cancel = cancel
		a.mu.Unlock()
	}

	a.setCleanup(a.invoke(ctx, produce))
	return disposable.NewDisposable(a.dispose)
}

func (a *activation[T]) invoke(ctx context.Context, produce ContextProducer[T]) Cleanup {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if a.isCallbackPanic(r) {
			panic(r)
		}
		a.fail(newProducerPanicError(r))
	}()
	return produce(ctx, a.next, a.fail, a.complete)
}

// setCleanup stores the producer's cleanup, or runs it straight away when
// the activation ended while the producer was still running.
func (a *activation[T]) setCleanup(cleanup Cleanup) {
	a.mu.Lock()
	if !a.disposed {
		a.cleanup = cleanup
		a.mu.Unlock()
		return
	}
	a.mu.Unlock()
	if cleanup != nil {
		cleanup()
	}
}

func (a *activation[T]) next(value T) {
	if !a.nextOpen.Load() {
		return
	}
	a.deliver(func() { a.onNext(value) })
}

func (a *activation[T]) fail(err error) {
	a.nextOpen.Store(false)
	a.completeSub.Dispose()
	a.setError(err)
	a.errorSub.Dispose()
	a.dispose()
}

func (a *activation[T]) complete() {
	a.nextOpen.Store(false)
	a.errorSub.Dispose()
	a.setComplete(struct{}{})
	a.completeSub.Dispose()
	a.dispose()
}

func (a *activation[T]) dispose() {
	a.nextOpen.Store(false)
	a.errorSub.Dispose()
	a.completeSub.Dispose()

	a.mu.Lock()
	if a.disposed {
		a.mu.Unlock()
		return
	}
	a.disposed = true
	cleanup, cancel := a.cleanup, a.cancel
	a.cleanup, a.cancel = nil, nil
	a.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if cleanup != nil {
		cleanup()
	}
}

func (a *activation[T]) deliver(callback func()) {
	a.lastCallbackPanic.Store(nil)
	defer func() {
		if r := recover(); r != nil {
			a.lastCallbackPanic.Store(&callbackPanic{value: r})
			panic(r)
		}
	}()
	callback()
}

func (a *activation[T]) isCallbackPanic(r any) bool {
	p := a.lastCallbackPanic.Load()
	if p == nil {
		return false
	}
	t := reflect.TypeOf(r)
	if t != reflect.TypeOf(p.value) {
		return false
	}
	if !t.Comparable() {
		// Values of the same uncomparable type cannot be told apart.
		return true
	}
	return r == p.value
}

type callbackPanic struct {
	value any
}
