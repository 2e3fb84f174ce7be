package core

import "sync/atomic"

// Take limits the upstream flowable to its first n values, then completes.
// Downstream demand is forwarded upstream only up to the remaining budget,
// so the stage never over-requests past the bound. Delivering the n-th value
// cancels the upstream run and completes downstream exactly once; upstream
// signals racing with that cancellation are ignored. If n <= 0 the result
// completes immediately without ever subscribing upstream.
func Take[T any](up Flowable[T], n int64) Flowable[T] {
	return &takeFlowable[T]{up: up, n: n}
}

type takeFlowable[T any] struct {
	up Flowable[T]
	n  int64
}

func (f *takeFlowable[T]) Subscribe(sub Subscriber[T]) {
	if f.n <= 0 {
		sub.OnSubscribe(inertSubscription{})
		sub.OnComplete()
		return
	}
	t := &takeSubscriber[T]{
		down:  sub,
		token: trackObject(),
	}
	t.remaining.Store(f.n)
	t.budget.Store(f.n)
	f.up.Subscribe(t)
}

// takeSubscriber counts deliveries for one run. remaining tracks values
// still to deliver downstream; budget tracks demand still allowed to be
// forwarded upstream. Both are owned exclusively by this run.
type takeSubscriber[T any] struct {
	down Subscriber[T]
	up   Subscription

	remaining  atomic.Int64
	budget     atomic.Int64
	terminated atomic.Bool
	token      *lifeToken
}

func (t *takeSubscriber[T]) OnSubscribe(s Subscription) {
	t.up = s
	t.down.OnSubscribe(&takeSubscription[T]{t: t})
}

func (t *takeSubscriber[T]) OnNext(value T) {
	if t.terminated.Load() {
		return
	}
	left := t.remaining.Add(-1)
	if left < 0 {
		// Upstream emitted past the bound; the cancellation is already on
		// its way, drop the excess.
		return
	}
	t.down.OnNext(value)
	if left == 0 {
		if t.terminated.Swap(true) {
			return
		}
		t.up.Cancel()
		t.token.release()
		t.down.OnComplete()
	}
}

func (t *takeSubscriber[T]) OnComplete() {
	if t.terminated.Swap(true) {
		return
	}
	t.token.release()
	t.down.OnComplete()
}

func (t *takeSubscriber[T]) OnError(err error) {
	if t.terminated.Swap(true) {
		return
	}
	t.token.release()
	t.down.OnError(err)
}

// takeSubscription translates downstream demand into capped upstream demand.
type takeSubscription[T any] struct {
	t *takeSubscriber[T]
}

func (s *takeSubscription[T]) Request(n int64) {
	if n <= 0 {
		return
	}
	t := s.t
	for {
		current := t.budget.Load()
		if current == 0 {
			return
		}
		grant := n
		if grant > current {
			grant = current
		}
		if t.budget.CompareAndSwap(current, current-grant) {
			t.up.Request(grant)
			return
		}
	}
}

func (s *takeSubscription[T]) Cancel() {
	t := s.t
	if t.terminated.Swap(true) {
		return
	}
	t.up.Cancel()
	t.token.release()
}
