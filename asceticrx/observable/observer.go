package observable

// Observer is the callback triple a subscription delivers to.
// Any field may be nil.
type Observer[T any] struct {
	Next     func(T)
	Error    func(error)
	Complete func()
}

func (o Observer[T]) withDefaults() Observer[T] {
	if o.Next == nil {
		o.Next = func(T) {}
	}
	if o.Error == nil {
		o.Error = func(error) {}
	}
	if o.Complete == nil {
		o.Complete = func() {}
	}
	return o
}
