package disposable

import "sync"

// CompositeDisposableImp disposes its delegates in the order they were added.
// Delegates added after Dispose are disposed immediately.
type CompositeDisposableImp struct {
	mu        sync.Mutex
	delegates []Disposable
	disposed  bool
}

func NewCompositeDisposable(delegates ...Disposable) *CompositeDisposableImp {
	return &CompositeDisposableImp{delegates: delegates}
}

func (c *CompositeDisposableImp) Add(delegate Disposable) {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		delegate.Dispose()
		return
	}
	c.delegates = append(c.delegates, delegate)
	c.mu.Unlock()
}

func (c *CompositeDisposableImp) Dispose() {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return
	}
	c.disposed = true
	delegates := c.delegates
	c.delegates = nil
	c.mu.Unlock()

	for _, d := range delegates {
		d.Dispose()
	}
}

func (c *CompositeDisposableImp) IsDisposed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.disposed
}

func (c *CompositeDisposableImp) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.delegates)
}
