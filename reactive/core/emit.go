package core

import (
	"math"
	"sync/atomic"
)

// unboundedDemand is the saturation point of the demand counter. A counter
// that has clamped here is treated as unbounded and is no longer decremented
// by emissions.
const unboundedDemand = math.MaxInt64

// Emit creates a Flowable from a step generator. The start function runs
// once per Subscribe call and returns the Step that drives that run, so each
// subscription owns fresh cursor state and independent runs cannot interfere.
func Emit[T any](start func() Step[T]) Flowable[T] {
	return &emitFlowable[T]{start: func() (Step[T], func()) {
		return start(), nil
	}}
}

// EmitWithStop is Emit for sources holding external resources. The stop
// function returned alongside the Step is invoked exactly once when the run
// reaches a terminal state or is cancelled, whichever comes first.
func EmitWithStop[T any](start func() (Step[T], func())) Flowable[T] {
	return &emitFlowable[T]{start: start}
}

type emitFlowable[T any] struct {
	start func() (Step[T], func())
}

func (f *emitFlowable[T]) Subscribe(sub Subscriber[T]) {
	step, stop := f.start()
	s := &emitSubscription[T]{
		step:  step,
		stop:  stop,
		down:  sub,
		token: trackObject(),
	}
	sub.OnSubscribe(s)
	// Give sources that terminate without demand (Empty, Error) their first
	// chance to run; for everything else this pass is a no-op unless the
	// subscriber already requested inside OnSubscribe.
	s.drain()
}

// emitSubscription binds one Step to one Subscriber for one run. It owns the
// only mutable state shared between the two sides: the outstanding-demand
// counter and the cancelled flag. The drain loop serializes all subscriber
// callbacks; concurrent or reentrant Request calls only top up demand and
// the active loop picks the new demand up before parking.
type emitSubscription[T any] struct {
	step Step[T]
	stop func()
	down Subscriber[T]

	demand     atomic.Int64
	cancelled  atomic.Bool
	terminated atomic.Bool
	draining   atomic.Bool
	stopped    atomic.Bool
	token      *lifeToken
}

func (s *emitSubscription[T]) Request(n int64) {
	if n <= 0 || s.cancelled.Load() || s.terminated.Load() {
		return
	}
	addDemand(&s.demand, n)
	s.drain()
}

func (s *emitSubscription[T]) Cancel() {
	if s.cancelled.Swap(true) {
		return
	}
	if s.draining.Load() {
		// The active drain loop observes the flag and tears down.
		return
	}
	s.teardown()
}

// drain runs the step while demand is outstanding. Exactly one goroutine
// holds the draining flag at a time; the re-check after releasing it closes
// the window where demand arrives between the last step and the release.
func (s *emitSubscription[T]) drain() {
	for {
		if !s.draining.CompareAndSwap(false, true) {
			return
		}
		for !s.cancelled.Load() && !s.terminated.Load() {
			requested := s.demand.Load()
			emitted, done := s.step(s, requested)
			if emitted > 0 && requested != unboundedDemand {
				s.demand.Add(-emitted)
			}
			if done {
				s.terminated.Store(true)
				break
			}
			if emitted == 0 {
				// Awaiting demand.
				break
			}
		}
		s.draining.Store(false)
		if s.cancelled.Load() || s.terminated.Load() {
			s.teardown()
			return
		}
		if s.demand.Load() == 0 {
			return
		}
	}
}

func (s *emitSubscription[T]) teardown() {
	if s.stop != nil && !s.stopped.Swap(true) {
		s.stop()
	}
	s.token.release()
}

// Next forwards one value downstream unless the run is already over. The
// cancelled check is what guarantees no new emission starts once the
// subscriber has cancelled, even mid-step.
func (s *emitSubscription[T]) Next(value T) {
	if s.cancelled.Load() || s.terminated.Load() {
		return
	}
	s.down.OnNext(value)
}

func (s *emitSubscription[T]) Complete() {
	if s.cancelled.Load() || s.terminated.Swap(true) {
		return
	}
	s.down.OnComplete()
}

func (s *emitSubscription[T]) Error(err error) {
	if s.cancelled.Load() || s.terminated.Swap(true) {
		return
	}
	s.down.OnError(err)
}

// addDemand adds n to the counter, clamping at unboundedDemand on overflow.
func addDemand(d *atomic.Int64, n int64) {
	for {
		current := d.Load()
		next := current + n
		if next < current {
			next = unboundedDemand
		}
		if d.CompareAndSwap(current, next) {
			return
		}
	}
}

// inertSubscription is handed to subscribers whose run is already decided at
// subscribe time (for example Take with a zero bound).
type inertSubscription struct{}

func (inertSubscription) Request(int64) {}
func (inertSubscription) Cancel()       {}
