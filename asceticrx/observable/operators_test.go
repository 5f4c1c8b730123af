package observable

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOf(t *testing.T) {
	r := &recorder[string]{}
	r.subscribe(Of("x"))
	assert.Equal(t, []Notification[string]{Next("x"), Complete[string]()}, r.events)
}

func TestOf_IsRestartable(t *testing.T) {
	src := Of(7)
	first := &recorder[int]{}
	second := &recorder[int]{}
	first.subscribe(src)
	second.subscribe(src)
	assert.Equal(t, first.events, second.events)
	assert.Len(t, second.events, 2)
}

func TestEmpty(t *testing.T) {
	r := &recorder[int]{}
	r.subscribe(Empty[int]())
	assert.Equal(t, []Notification[int]{Complete[int]()}, r.events)
}

func TestNever(t *testing.T) {
	r := &recorder[int]{}
	dispose := r.subscribe(Never[int]())
	assert.Empty(t, r.events)
	dispose()
	assert.Empty(t, r.events)
}

func TestThrow(t *testing.T) {
	boom := errors.New("boom")
	r := &recorder[int]{}
	r.subscribe(Throw[int](boom))
	assert.Equal(t, []Notification[int]{Error[int](boom)}, r.events)
}

func TestMerge_SynchronousSourcesInDeclarationOrder(t *testing.T) {
	r := &recorder[int]{}
	r.subscribe(Merge(Of(1), Of(2)))
	assert.Equal(t, []Notification[int]{Next(1), Next(2), Complete[int]()}, r.events)
}

func TestMerge_NoSourcesCompletes(t *testing.T) {
	r := &recorder[int]{}
	r.subscribe(Merge[int]())
	assert.Equal(t, []Notification[int]{Complete[int]()}, r.events)
}

func TestMerge_CompletesAfterAllSourcesComplete(t *testing.T) {
	a := &controlled[int]{}
	b := &controlled[int]{}
	r := &recorder[int]{}
	r.subscribe(Merge(a.observable(), b.observable()))

	a.next(1)
	b.next(2)
	a.complete()
	assert.Equal(t, []Notification[int]{Next(1), Next(2)}, r.events)

	b.next(3)
	b.complete()
	assert.Equal(t, []Notification[int]{Next(1), Next(2), Next(3), Complete[int]()}, r.events)
	assert.Equal(t, 1, a.cleanedUp)
	assert.Equal(t, 1, b.cleanedUp)
}

func TestMerge_FirstErrorWinsAndDisposesSources(t *testing.T) {
	a := &controlled[int]{}
	b := &controlled[int]{}
	first := errors.New("first")
	r := &recorder[int]{}
	r.subscribe(Merge(a.observable(), b.observable()))

	a.fail(first)
	b.next(1)
	b.fail(errors.New("second"))
	b.complete()

	assert.Equal(t, []Notification[int]{Error[int](first)}, r.events)
	assert.Equal(t, 1, a.cleanedUp)
	assert.Equal(t, 1, b.cleanedUp)
}

func TestMerge_SynchronousErrorSkipsLaterSources(t *testing.T) {
	boom := errors.New("boom")
	later := &controlled[int]{}
	r := &recorder[int]{}
	r.subscribe(Merge(Of(1), Throw[int](boom), later.observable()))

	assert.Equal(t, []Notification[int]{Next(1), Error[int](boom)}, r.events)
	assert.Equal(t, 0, later.subscribed)
}

func TestMerge_DisposeUnsubscribesEverySource(t *testing.T) {
	a := &controlled[int]{}
	b := &controlled[int]{}
	r := &recorder[int]{}
	dispose := r.subscribe(Merge(a.observable(), b.observable()))

	dispose()
	dispose()
	a.next(1)
	b.complete()

	assert.Empty(t, r.events)
	assert.Equal(t, 1, a.cleanedUp)
	assert.Equal(t, 1, b.cleanedUp)
}

func TestMerge_WithNeverDoesNotComplete(t *testing.T) {
	r := &recorder[int]{}
	r.subscribe(Merge(Of(1), Never[int]()))
	assert.Equal(t, []Notification[int]{Next(1)}, r.events)
}
