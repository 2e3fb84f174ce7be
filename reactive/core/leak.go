package core

import "sync/atomic"

// liveObjects counts subscription-scoped objects currently alive:
// subscriptions and operator-internal subscribers. Flowable descriptions are
// plain immutable values and are not counted. The counter exists so tests
// and diagnostics can assert that a fully terminated pipeline tears every
// per-run object down; a non-zero delta after a run is a lifecycle defect.
var liveObjects atomic.Int64

// LiveObjects returns the number of subscription-scoped objects currently
// alive across the process. Diagnostic only; after any pipeline reaches a
// terminal state or is cancelled, the counter returns to its prior value.
func LiveObjects() int64 {
	return liveObjects.Load()
}

// lifeToken registers one object with the live-object counter. Release is
// idempotent so teardown may race with cancellation without double counting.
type lifeToken struct {
	released atomic.Bool
}

func trackObject() *lifeToken {
	liveObjects.Add(1)
	return &lifeToken{}
}

func (t *lifeToken) release() {
	if t.released.CompareAndSwap(false, true) {
		liveObjects.Add(-1)
	}
}
