// Package single provides a gate that delivers one value to one listener, once.
package single

import (
	"errors"
	"sync"

	"github.com/krew-solutions/ascetic-rx-go/asceticrx/disposable"
)

var ErrAlreadySubscribed = errors.New("single: channel already has a subscriber")

// Setter fires a Channel. Only the first call has any effect.
type Setter[T any] func(T)

// Channel is a single-fire gate.
//
// The first call of the setter consumes the channel: the value is handed to
// the listener attached at that moment, if any, and every later call is
// ignored. Values are not buffered, so a listener attached after the channel
// fired never hears anything.
type Channel[T any] struct {
	mu         sync.Mutex
	listener   func(T)
	subscribed bool
	fired      bool
}

// New creates a Channel and passes its setter to register before returning.
func New[T any](register func(set Setter[T])) *Channel[T] {
	c := &Channel[T]{}
	register(c.set)
	return c
}

// Subscribe attaches the only listener the channel will ever have.
// Disposing the returned value detaches it; that is a no-op after delivery.
func (c *Channel[T]) Subscribe(onValue func(T)) (disposable.Disposable, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.subscribed {
		return nil, ErrAlreadySubscribed
	}
	c.subscribed = true
	if !c.fired {
		c.listener = onValue
	}
	return disposable.NewDisposable(c.detach), nil
}

// Fired reports whether the setter has been called.
func (c *Channel[T]) Fired() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fired
}

func (c *Channel[T]) set(value T) {
	c.mu.Lock()
	if c.fired {
		c.mu.Unlock()
		return
	}
	c.fired = true
	listener := c.listener
	c.listener = nil
	c.mu.Unlock()

	if listener != nil {
		listener(value)
	}
}

func (c *Channel[T]) detach() {
	c.mu.Lock()
	c.listener = nil
	c.mu.Unlock()
}
