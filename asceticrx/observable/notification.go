package observable

import "fmt"

type Kind int

const (
	KindNext Kind = iota + 1
	KindError
	KindComplete
)

func (k Kind) String() string {
	switch k {
	case KindNext:
		return "next"
	case KindError:
		return "error"
	case KindComplete:
		return "complete"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Notification is one signal of a stream reified as a value.
type Notification[T any] struct {
	Kind  Kind
	Value T
	Err   error
}

func Next[T any](value T) Notification[T] {
	return Notification[T]{Kind: KindNext, Value: value}
}

func Error[T any](err error) Notification[T] {
	return Notification[T]{Kind: KindError, Err: err}
}

func Complete[T any]() Notification[T] {
	return Notification[T]{Kind: KindComplete}
}

func (n Notification[T]) IsTerminal() bool {
	return n.Kind == KindError || n.Kind == KindComplete
}

// Accept calls the observer callback matching n's kind. Nil callbacks are skipped.
func (n Notification[T]) Accept(o Observer[T]) {
	switch n.Kind {
	case KindNext:
		if o.Next != nil {
			o.Next(n.Value)
		}
	case KindError:
		if o.Error != nil {
			o.Error(n.Err)
		}
	case KindComplete:
		if o.Complete != nil {
			o.Complete()
		}
	}
}

func (n Notification[T]) String() string {
	switch n.Kind {
	case KindNext:
		return fmt.Sprintf("next(%v)", n.Value)
	case KindError:
		return fmt.Sprintf("error(%v)", n.Err)
	default:
		return n.Kind.String() + "()"
	}
}
