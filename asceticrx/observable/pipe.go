package observable

import "context"

// Operator derives one Observable from another.
type Operator[T, R any] func(Observable[T]) Observable[R]

// Pipe folds o through operators left to right.
func (o Observable[T]) Pipe(operators ...Operator[T, T]) Observable[T] {
	result := o
	for _, operator := range operators {
		result = operator(result)
	}
	return result
}

// Pipe applies a type-changing operator. It is a free function because Go
// methods cannot declare their own type parameters.
func Pipe[T, R any](source Observable[T], operator Operator[T, R]) Observable[R] {
	return operator(source)
}

// Compose chains two operators into one, first applied first.
func Compose[A, B, C any](first Operator[A, B], second Operator[B, C]) Operator[A, C] {
	return func(source Observable[A]) Observable[C] {
		return second(first(source))
	}
}

func Map[T, R any](project func(T) R) Operator[T, R] {
	return func(source Observable[T]) Observable[R] {
		return NewWithContext(func(lifetime context.Context, next func(R), fail func(error), complete func()) Cleanup {
			return source.SubscribeContext(lifetime, func(value T) {
				next(project(value))
			}, fail, complete).Dispose
		})
	}
}

func Filter[T any](predicate func(T) bool) Operator[T, T] {
	return func(source Observable[T]) Observable[T] {
		return NewWithContext(func(lifetime context.Context, next func(T), fail func(error), complete func()) Cleanup {
			return source.SubscribeContext(lifetime, func(value T) {
				if predicate(value) {
					next(value)
				}
			}, fail, complete).Dispose
		})
	}
}

// Take forwards the first count values and then completes.
func Take[T any](count int) Operator[T, T] {
	return func(source Observable[T]) Observable[T] {
		return NewWithContext(func(lifetime context.Context, next func(T), fail func(error), complete func()) Cleanup {
			if count <= 0 {
				complete()
				return nil
			}
			taken := 0
			return source.SubscribeContext(lifetime, func(value T) {
				if taken >= count {
					return
				}
				taken++
				next(value)
				if taken == count {
					complete()
				}
			}, fail, complete).Dispose
		})
	}
}
