package observable

type recorder[T any] struct {
	events []Notification[T]
}

func (r *recorder[T]) observer() Observer[T] {
	return Observer[T]{
		Next:     func(v T) { r.events = append(r.events, Next(v)) },
		Error:    func(err error) { r.events = append(r.events, Error[T](err)) },
		Complete: func() { r.events = append(r.events, Complete[T]()) },
	}
}

func (r *recorder[T]) subscribe(o Observable[T]) func() {
	return o.SubscribeObserver(r.observer()).Dispose
}

// controlled exposes the callbacks of its most recent activation.
type controlled[T any] struct {
	next       func(T)
	fail       func(error)
	complete   func()
	subscribed int
	cleanedUp  int
}

func (c *controlled[T]) observable() Observable[T] {
	return New(func(next func(T), fail func(error), complete func()) Cleanup {
		c.next, c.fail, c.complete = next, fail, complete
		c.subscribed++
		return func() { c.cleanedUp++ }
	})
}
