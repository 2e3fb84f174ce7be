// Package helpers provides ready-made subscribers for driving flowables in
// application code and tests.
package helpers

import (
	"github.com/lguimbarda/min-reactive/reactive/core"
)

// Collector is a subscriber that gathers every value it receives into a
// slice and records the terminal signal. It requests its configured demand
// in OnSubscribe and keeps the subscription available for topping demand up
// later, which makes it convenient for exercising backpressure by hand.
//
// Collector assumes the synchronous call contract of this library: its
// accessors are meant to be read after Subscribe has returned.
type Collector[T any] struct {
	demand       int64
	subscription core.Subscription

	values    []T
	completed bool
	err       error
	failed    bool
}

var _ core.Subscriber[any] = (*Collector[any])(nil)

// NewCollector returns a Collector that requests the given demand when it is
// subscribed. A non-positive demand requests nothing, leaving all demand
// signalling to the caller via Subscription.
func NewCollector[T any](demand int64) *Collector[T] {
	return &Collector[T]{demand: demand}
}

// OnSubscribe stores the subscription and requests the initial demand.
func (c *Collector[T]) OnSubscribe(s core.Subscription) {
	c.subscription = s
	if c.demand > 0 {
		s.Request(c.demand)
	}
}

// OnNext records one value.
func (c *Collector[T]) OnNext(value T) {
	c.values = append(c.values, value)
}

// OnComplete records normal termination.
func (c *Collector[T]) OnComplete() {
	c.completed = true
}

// OnError records the terminal error.
func (c *Collector[T]) OnError(err error) {
	c.failed = true
	c.err = err
}

// Values returns the values collected so far.
func (c *Collector[T]) Values() []T {
	return c.values
}

// Completed reports whether OnComplete was received.
func (c *Collector[T]) Completed() bool {
	return c.completed
}

// Failed reports whether OnError was received.
func (c *Collector[T]) Failed() bool {
	return c.failed
}

// Err returns the terminal error, or nil if none was received.
func (c *Collector[T]) Err() error {
	return c.err
}

// ErrMsg returns the terminal error's message, or "" if none was received.
func (c *Collector[T]) ErrMsg() string {
	if c.err == nil {
		return ""
	}
	return c.err.Error()
}

// Subscription returns the subscription received in OnSubscribe, for callers
// that want to request further demand or cancel mid-run.
func (c *Collector[T]) Subscription() core.Subscription {
	return c.subscription
}
