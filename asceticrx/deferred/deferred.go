package deferred

import (
	"github.com/hashicorp/go-multierror"

	"github.com/krew-solutions/ascetic-rx-go/asceticrx/single"
)

/**
* Promises/A+ style deferred value.
*
* Settlement goes through a single-fire channel: the first Resolve or Reject
* wins and every later one is ignored.
*
* See also:
* - https://promisesaplus.com/
**/

func Noop[T, R any](_ T) (R, error) {
	var zero R
	return zero, nil
}

type state int

const (
	pending state = iota
	resolved
	rejected
)

type settlement[T any] struct {
	value T
	err   error
	state state
}

type nextDeferred interface {
	resolveAny(any)
	rejectAny(error)
	OccurredErr() error
}

type handler[T any] struct {
	onSuccess func(T) (any, error)
	onError   func(error) (any, error)
	next      nextDeferred
}

// DeferredImp is usable as a zero value.
type DeferredImp[T any] struct {
	settle      single.Setter[settlement[T]]
	result      settlement[T]
	occurredErr error
	handlers    []handler[T]
}

func New[T any]() *DeferredImp[T] {
	d := &DeferredImp[T]{}
	d.init()
	return d
}

func Resolved[T any](value T) *DeferredImp[T] {
	d := New[T]()
	d.Resolve(value)
	return d
}

func Rejected[T any](err error) *DeferredImp[T] {
	d := New[T]()
	d.Reject(err)
	return d
}

func (d *DeferredImp[T]) init() {
	if d.settle != nil {
		return
	}
	gate := single.New(func(set single.Setter[settlement[T]]) {
		d.settle = set
	})
	// The gate is new, so it has no subscriber yet.
	_, _ = gate.Subscribe(d.onSettled)
}

func (d *DeferredImp[T]) Resolve(value T) {
	d.init()
	d.settle(settlement[T]{value: value, state: resolved})
}

func (d *DeferredImp[T]) Reject(err error) {
	d.init()
	d.settle(settlement[T]{err: err, state: rejected})
}

func (d *DeferredImp[T]) IsPending() bool {
	return d.result.state == pending
}

func (d *DeferredImp[T]) onSettled(s settlement[T]) {
	d.result = s
	for _, h := range d.handlers {
		d.dispatch(h)
	}
}

func (d *DeferredImp[T]) resolveAny(v any) {
	var t T
	if v != nil {
		t = v.(T)
	}
	d.Resolve(t)
}

func (d *DeferredImp[T]) rejectAny(err error) {
	d.Reject(err)
}

func (d *DeferredImp[T]) addHandler(h handler[T]) {
	d.handlers = append(d.handlers, h)
	if d.result.state != pending {
		d.dispatch(h)
	}
}

func (d *DeferredImp[T]) Then(onSuccess func(T) (any, error), onError func(error) (any, error)) Deferred[any] {
	next := New[any]()
	d.addHandler(handler[T]{
		onSuccess: onSuccess,
		onError:   onError,
		next:      next,
	})
	return next
}

// Then registers typed callbacks.
//
// A value returned by either callback resolves the next deferred; an error
// rejects it. It is a free function because Go methods cannot declare type
// parameters, and it keeps R concrete through the chain.
func Then[T, R any](d *DeferredImp[T], onSuccess func(T) (R, error), onError func(error) (R, error)) *DeferredImp[R] {
	next := New[R]()
	d.addHandler(handler[T]{
		onSuccess: func(v T) (any, error) { return onSuccess(v) },
		onError:   func(err error) (any, error) { return onError(err) },
		next:      next,
	})
	return next
}

func (d *DeferredImp[T]) dispatch(h handler[T]) {
	var result any
	var err error
	if d.result.state == resolved {
		result, err = h.onSuccess(d.result.value)
	} else {
		result, err = h.onError(d.result.err)
	}
	if err == nil {
		h.next.resolveAny(result)
		return
	}
	d.occurredErr = multierror.Append(d.occurredErr, err)
	h.next.rejectAny(err)
}

// OccurredErr collects the errors returned by handlers of d and of every
// deferred chained after it.
func (d *DeferredImp[T]) OccurredErr() error {
	err := d.occurredErr
	for _, h := range d.handlers {
		if nestedErr := h.next.OccurredErr(); nestedErr != nil {
			err = multierror.Append(err, nestedErr)
		}
	}
	return err
}

// All resolves with every value in input order, or rejects with the first error.
func All[T any](deferreds []Deferred[T]) *DeferredImp[[]T] {
	result := New[[]T]()

	if len(deferreds) == 0 {
		result.Resolve([]T{})
		return result
	}

	values := make([]T, len(deferreds))
	remaining := len(deferreds)

	for i, d := range deferreds {
		idx := i
		d.Then(func(value T) (any, error) {
			values[idx] = value
			remaining--
			if remaining == 0 {
				result.Resolve(values)
			}
			return nil, nil
		}, func(err error) (any, error) {
			result.Reject(err)
			return nil, nil
		})
	}

	return result
}
