package signals

import (
	"reflect"
	"slices"
	"sync"

	"github.com/krew-solutions/ascetic-rx-go/asceticrx/disposable"
)

type entry[E any] struct {
	id       any
	observer Observer[E]
}

// SignalImp notifies observers in attach order.
//
// Notify works on a snapshot taken when it is called, so observers may attach
// or detach (themselves or others) from inside a notification. Observers
// attached during a Notify are not called by it. The lock is never held while
// an observer runs.
type SignalImp[E any] struct {
	mu        sync.Mutex
	observers []entry[E]
}

func NewSignal[E any]() *SignalImp[E] {
	return &SignalImp[E]{}
}

// Attach registers observer under observerID, or under the observer's
// function pointer when no id is given. Attaching an id twice keeps the first
// observer, and the second Attach returns a disposable that does nothing.
func (s *SignalImp[E]) Attach(observer Observer[E], observerID ...any) disposable.Disposable {
	id := resolveID(observer, observerID)
	s.mu.Lock()
	if s.contains(id) {
		s.mu.Unlock()
		return disposable.Empty()
	}
	s.observers = append(s.observers, entry[E]{id: id, observer: observer})
	s.mu.Unlock()
	return disposable.NewDisposable(func() {
		s.Detach(observer, id)
	})
}

func (s *SignalImp[E]) Detach(observer Observer[E], observerID ...any) {
	id := resolveID(observer, observerID)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = slices.DeleteFunc(s.observers, func(e entry[E]) bool {
		return e.id == id
	})
}

func (s *SignalImp[E]) Notify(event E) {
	s.mu.Lock()
	snapshot := slices.Clone(s.observers)
	s.mu.Unlock()

	for _, e := range snapshot {
		e.observer(event)
	}
}

func (s *SignalImp[E]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.observers)
}

func (s *SignalImp[E]) contains(id any) bool {
	for _, e := range s.observers {
		if e.id == id {
			return true
		}
	}
	return false
}

func resolveID[E any](observer Observer[E], observerID []any) any {
	if len(observerID) > 0 {
		return observerID[0]
	}
	return makeID(observer)
}

func makeID[E any](observer Observer[E]) uintptr {
	return reflect.ValueOf(observer).Pointer()
}
