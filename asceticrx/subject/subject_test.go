package subject

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krew-solutions/ascetic-rx-go/asceticrx/disposable"
	"github.com/krew-solutions/ascetic-rx-go/asceticrx/observable"
	"github.com/krew-solutions/ascetic-rx-go/asceticrx/utils/testutils"
)

func newSubject(t *testing.T) *Subject[int] {
	t.Helper()
	return New[int](WithLogger(testutils.NewLogger(t)))
}

type trace struct {
	events []string
}

func (tr *trace) observer(name string) observable.Observer[int] {
	return observable.Observer[int]{
		Next:     func(v int) { tr.events = append(tr.events, name+":"+observable.Next(v).String()) },
		Error:    func(err error) { tr.events = append(tr.events, name+":error") },
		Complete: func() { tr.events = append(tr.events, name+":complete") },
	}
}

func TestSubject_FanOutInSubscriptionOrder(t *testing.T) {
	s := newSubject(t)
	tr := &trace{}
	a := s.Stream().SubscribeObserver(tr.observer("A"))
	s.Stream().SubscribeObserver(tr.observer("B"))

	s.Next(5)
	assert.Equal(t, []string{"A:next(5)", "B:next(5)"}, tr.events)

	a.Dispose()
	s.Next(6)
	assert.Equal(t, []string{"A:next(5)", "B:next(5)", "B:next(6)"}, tr.events)
	assert.Equal(t, 1, s.Len())
}

func TestSubject_NextWithoutSubscribers(t *testing.T) {
	s := newSubject(t)
	assert.NotPanics(t, func() { s.Next(1) })
	assert.Equal(t, 0, s.Len())
}

func TestSubject_SelfUnsubscribeDuringBroadcast(t *testing.T) {
	s := newSubject(t)
	var received []int
	var sub disposable.Disposable
	sub = s.Stream().Subscribe(func(v int) {
		received = append(received, v)
		sub.Dispose()
	}, nil, nil)
	tr := &trace{}
	s.Stream().SubscribeObserver(tr.observer("B"))

	assert.NotPanics(t, func() { s.Next(1) })
	s.Next(2)

	assert.Equal(t, []int{1}, received)
	assert.Equal(t, []string{"B:next(1)", "B:next(2)"}, tr.events)
	assert.Equal(t, 1, s.Len())
}

func TestSubject_UnsubscribeOtherDuringBroadcast(t *testing.T) {
	s := newSubject(t)
	tr := &trace{}
	var b disposable.Disposable
	s.Stream().Subscribe(func(v int) {
		tr.events = append(tr.events, "A")
		b.Dispose()
	}, nil, nil)
	b = s.Stream().SubscribeObserver(tr.observer("B"))

	s.Next(1)

	assert.Equal(t, []string{"A"}, tr.events)
}

func TestSubject_SubscribeDuringBroadcastMissesInFlightValue(t *testing.T) {
	s := newSubject(t)
	tr := &trace{}
	subscribed := false
	s.Stream().Subscribe(func(v int) {
		if !subscribed {
			subscribed = true
			s.Stream().SubscribeObserver(tr.observer("late"))
		}
	}, nil, nil)

	s.Next(1)
	s.Next(2)

	assert.Equal(t, []string{"late:next(2)"}, tr.events)
}

func TestSubject_ReentrantNextFromSubscriber(t *testing.T) {
	s := newSubject(t)
	var received []int
	s.Stream().Subscribe(func(v int) {
		received = append(received, v)
		if v < 3 {
			s.Next(v + 1)
		}
	}, nil, nil)

	s.Next(1)

	assert.Equal(t, []int{1, 2, 3}, received)
}

func TestSubject_CompleteRemovesSubscribers(t *testing.T) {
	s := newSubject(t)
	tr := &trace{}
	s.Stream().SubscribeObserver(tr.observer("A"))
	s.Stream().SubscribeObserver(tr.observer("B"))
	require.Equal(t, 2, s.Len())

	s.Complete()
	s.Complete()
	s.Next(1)
	s.Error(errors.New("late"))

	assert.Equal(t, []string{"A:complete", "B:complete"}, tr.events)
	assert.Equal(t, 0, s.Len())
}

func TestSubject_ErrorRemovesSubscribers(t *testing.T) {
	s := newSubject(t)
	boom := errors.New("boom")
	var got []error
	s.Stream().Subscribe(nil, func(err error) { got = append(got, err) }, nil)

	s.Error(boom)

	assert.Equal(t, []error{boom}, got)
	assert.Equal(t, 0, s.Len())
}

func TestSubject_LateSubscriberReceivesTerminal(t *testing.T) {
	s := newSubject(t)
	boom := errors.New("boom")
	s.Error(boom)

	var got error
	sub := s.Stream().Subscribe(func(int) { t.Fatal("unexpected value") }, func(err error) { got = err }, nil)
	sub.Dispose()

	assert.Equal(t, boom, got)
	assert.Equal(t, 0, s.Len())
}

func TestSubject_DisposeIsIdempotent(t *testing.T) {
	s := newSubject(t)
	sub := s.Stream().Subscribe(nil, nil, nil)
	s.Stream().Subscribe(nil, nil, nil)

	sub.Dispose()
	sub.Dispose()

	assert.Equal(t, 1, s.Len())
}

func TestSubject_DisposeAfterCompleteIsSafe(t *testing.T) {
	s := newSubject(t)
	sub := s.Stream().Subscribe(nil, nil, nil)
	s.Complete()

	assert.NotPanics(t, sub.Dispose)
	assert.Equal(t, 0, s.Len())
}

func TestSubject_MulticastsColdSource(t *testing.T) {
	s := newSubject(t)
	tr := &trace{}
	s.Stream().SubscribeObserver(tr.observer("A"))
	s.Stream().SubscribeObserver(tr.observer("B"))

	observable.Merge(observable.Of(1), observable.Of(2)).SubscribeObserver(s.Observer())

	assert.Equal(t, []string{
		"A:next(1)", "B:next(1)",
		"A:next(2)", "B:next(2)",
		"A:complete", "B:complete",
	}, tr.events)
}

func TestSubject_StreamComposesWithOperators(t *testing.T) {
	s := newSubject(t)
	var received []int
	sub := s.Stream().Pipe(
		observable.Filter(func(v int) bool { return v > 1 }),
		observable.Take[int](2),
	).Subscribe(func(v int) { received = append(received, v) }, nil, nil)
	defer sub.Dispose()

	for i := 1; i <= 5; i++ {
		s.Next(i)
	}

	assert.Equal(t, []int{2, 3}, received)
	assert.Equal(t, 0, s.Len())
}

func TestSubject_IDsAreDistinct(t *testing.T) {
	assert.NotEqual(t, New[int]().ID(), New[int]().ID())
}
