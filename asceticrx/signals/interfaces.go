package signals

import (
	"github.com/krew-solutions/ascetic-rx-go/asceticrx/disposable"
)

type Observer[E any] func(E)

// Signal is an ordered registry of observers keyed by id.
type Signal[E any] interface {
	Attach(observer Observer[E], observerID ...any) disposable.Disposable
	Detach(observer Observer[E], observerID ...any)
	Notify(event E)
	Len() int
}
