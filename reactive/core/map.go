package core

import "sync/atomic"

// Map transforms each value of the upstream flowable with fn, producing a
// flowable of the mapped values. Demand passes through 1:1 — Request and
// Cancel are forwarded to the upstream subscription unchanged, since a map
// neither buffers nor changes item counts. If fn returns an error or panics,
// the upstream run is cancelled and the failure is delivered downstream as
// exactly one OnError; a panic surfaces as ErrPanic.
func Map[A, B any](up Flowable[A], fn func(A) (B, error)) Flowable[B] {
	return &mapFlowable[A, B]{up: up, fn: fn}
}

type mapFlowable[A, B any] struct {
	up Flowable[A]
	fn func(A) (B, error)
}

func (f *mapFlowable[A, B]) Subscribe(sub Subscriber[B]) {
	f.up.Subscribe(&mapSubscriber[A, B]{
		down:  sub,
		fn:    f.fn,
		token: trackObject(),
	})
}

// mapSubscriber sits between upstream and downstream for one run. The
// upstream subscription it keeps is a non-owning back-reference used only to
// cancel after a failed transform.
type mapSubscriber[A, B any] struct {
	down Subscriber[B]
	fn   func(A) (B, error)
	up   Subscription

	terminated atomic.Bool
	token      *lifeToken
}

func (m *mapSubscriber[A, B]) OnSubscribe(s Subscription) {
	m.up = s
	m.down.OnSubscribe(&mapSubscription[A, B]{m: m})
}

func (m *mapSubscriber[A, B]) OnNext(value A) {
	if m.terminated.Load() {
		return
	}
	mapped, err := m.apply(value)
	if err != nil {
		if m.terminated.Swap(true) {
			return
		}
		m.up.Cancel()
		m.token.release()
		m.down.OnError(err)
		return
	}
	m.down.OnNext(mapped)
}

func (m *mapSubscriber[A, B]) OnComplete() {
	if m.terminated.Swap(true) {
		return
	}
	m.token.release()
	m.down.OnComplete()
}

func (m *mapSubscriber[A, B]) OnError(err error) {
	if m.terminated.Swap(true) {
		return
	}
	m.token.release()
	m.down.OnError(err)
}

func (m *mapSubscriber[A, B]) apply(value A) (mapped B, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = NewPanicError(r)
		}
	}()
	return m.fn(value)
}

// mapSubscription forwards demand and cancellation 1:1. It exists so the map
// stage observes downstream cancellation and can release its own lifecycle
// token; it holds no state of its own.
type mapSubscription[A, B any] struct {
	m *mapSubscriber[A, B]
}

func (s *mapSubscription[A, B]) Request(n int64) {
	s.m.up.Request(n)
}

func (s *mapSubscription[A, B]) Cancel() {
	if s.m.terminated.Swap(true) {
		return
	}
	s.m.up.Cancel()
	s.m.token.release()
}
