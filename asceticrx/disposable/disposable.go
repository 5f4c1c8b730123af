package disposable

import "sync"

// Disposable releases whatever it holds. Dispose is idempotent.
type Disposable interface {
	Dispose()
}

type DisposableImp struct {
	mu       sync.Mutex
	callback func()
	disposed bool
}

func NewDisposable(callback func()) *DisposableImp {
	return &DisposableImp{callback: callback}
}

// Dispose runs the callback the first time it is called.
// A Dispose reached again from inside the callback returns immediately.
func (d *DisposableImp) Dispose() {
	d.mu.Lock()
	if d.disposed {
		d.mu.Unlock()
		return
	}
	d.disposed = true
	callback := d.callback
	d.callback = nil
	d.mu.Unlock()

	if callback != nil {
		callback()
	}
}

func (d *DisposableImp) IsDisposed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.disposed
}

// Empty returns a Disposable that does nothing.
func Empty() Disposable {
	return NewDisposable(nil)
}
