package option

import "fmt"

// Option holds a value of T or nothing. The zero Option is Nothing.
type Option[T any] struct {
	val   T
	valid bool
}

func Some[T any](val T) Option[T] {
	return Option[T]{val: val, valid: true}
}

func Nothing[T any]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) IsSome() bool {
	return o.valid
}

func (o Option[T]) IsNothing() bool {
	return !o.valid
}

// Get returns the held value and whether there was one.
func (o Option[T]) Get() (T, bool) {
	return o.val, o.valid
}

// Unwrap panics on Nothing.
func (o Option[T]) Unwrap() T {
	if !o.valid {
		panic("option: Unwrap called on Nothing")
	}
	return o.val
}

func (o Option[T]) UnwrapOr(def T) T {
	if o.valid {
		return o.val
	}
	return def
}

func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if o.valid {
		return Some(f(o.val))
	}
	return Nothing[U]()
}

func (o Option[T]) String() string {
	if o.valid {
		return fmt.Sprintf("Some(%v)", o.val)
	}
	return "Nothing"
}
