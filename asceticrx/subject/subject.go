// Package subject provides a multicast hub over the observable core.
package subject

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"github.com/krew-solutions/ascetic-rx-go/asceticrx/observable"
	"github.com/krew-solutions/ascetic-rx-go/asceticrx/option"
	"github.com/krew-solutions/ascetic-rx-go/asceticrx/signals"
)

// Subject broadcasts what its producer side receives to every current
// subscriber of Stream.
//
// Each broadcast goes to the subscribers registered when it starts, in the
// order they subscribed. Subscribers that subscribe during a broadcast miss
// it; subscribers disposed during a broadcast receive nothing further.
// A subscriber leaves the registry when it is disposed or once it has
// received error or complete.
//
// After Error or Complete the Subject is stopped: Next is ignored and new
// subscribers receive the same terminal notification straight away.
type Subject[T any] struct {
	id          uuid.UUID
	log         *slog.Logger
	subscribers *signals.SignalImp[observable.Notification[T]]
	stream      observable.Observable[T]

	mu       sync.Mutex
	terminal option.Option[observable.Notification[T]]
}

func New[T any](opts ...Option) *Subject[T] {
	cfg := newConfig(opts)
	s := &Subject[T]{
		id:          uuid.New(),
		subscribers: signals.NewSignal[observable.Notification[T]](),
	}
	s.log = cfg.log.With("subject", s.id.String())
	s.stream = observable.New(s.attach)
	return s
}

func (s *Subject[T]) ID() uuid.UUID {
	return s.id
}

// Stream is the subscriber side of the Subject.
func (s *Subject[T]) Stream() observable.Observable[T] {
	return s.stream
}

// Observer returns the producer side as an observer, so the Subject can
// subscribe to another Observable and multicast it.
func (s *Subject[T]) Observer() observable.Observer[T] {
	return observable.Observer[T]{Next: s.Next, Error: s.Error, Complete: s.Complete}
}

func (s *Subject[T]) Next(value T) {
	s.mu.Lock()
	stopped := s.terminal.IsSome()
	s.mu.Unlock()
	if stopped {
		return
	}
	s.subscribers.Notify(observable.Next(value))
}

func (s *Subject[T]) Error(err error) {
	s.stop(observable.Error[T](err))
}

func (s *Subject[T]) Complete() {
	s.stop(observable.Complete[T]())
}

// Len reports how many subscribers are registered.
func (s *Subject[T]) Len() int {
	return s.subscribers.Len()
}

func (s *Subject[T]) stop(n observable.Notification[T]) {
	s.mu.Lock()
	if s.terminal.IsSome() {
		s.mu.Unlock()
		return
	}
	s.terminal = option.Some(n)
	s.mu.Unlock()

	s.log.Debug("Subject stopped", "notification", n.Kind, "subscribers", s.subscribers.Len())
	s.subscribers.Notify(n)
}

func (s *Subject[T]) attach(next func(T), fail func(error), complete func()) observable.Cleanup {
	observer := observable.Observer[T]{Next: next, Error: fail, Complete: complete}

	s.mu.Lock()
	if n, stopped := s.terminal.Get(); stopped {
		s.mu.Unlock()
		s.log.Debug("Replaying terminal notification to late subscriber", "notification", n.Kind)
		n.Accept(observer)
		return nil
	}
	id := ulid.Make()
	registration := s.subscribers.Attach(func(n observable.Notification[T]) {
		n.Accept(observer)
	}, id)
	s.mu.Unlock()

	s.log.Debug("Subscriber attached", "subscriber", id.String())
	return func() {
		registration.Dispose()
		s.log.Debug("Subscriber detached", "subscriber", id.String())
	}
}
