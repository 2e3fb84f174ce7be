// Package core defines the producer/consumer protocol for demand-regulated
// streams: flowables, subscribers, and the subscription control channel
// between them. It provides the foundational building blocks on which the
// source factories and operators in the parent package are built.
//
// A Flowable is a cold, repeatable description of a value sequence. Calling
// Subscribe binds it to a Subscriber through a fresh Subscription; the
// subscriber declares how many values it is willing to receive via
// Subscription.Request, and the source emits at most that many OnNext calls
// before one terminal OnComplete or OnError. Subscribing the same Flowable
// twice produces two independent runs.
//
// NOTE: this package should have no dependencies outside the standard
// library, including other min-reactive packages.
package core

// Subscription is the per-run control object a source hands a subscriber in
// OnSubscribe. It carries demand increments and cancellation from the
// subscriber back to the source. Once cancelled or once a terminal signal has
// been delivered, the subscription is inert: Request and Cancel become no-ops
// and no further OnNext occurs.
type Subscription interface {
	// Request declares willingness to receive up to n more values.
	// Cumulative demand saturates at math.MaxInt64 rather than wrapping;
	// n <= 0 is ignored.
	Request(n int64)

	// Cancel stops the run. It is idempotent and may be called at any time
	// after OnSubscribe. No new emission starts after the source observes
	// the cancellation, and no terminal signal follows it.
	Cancel()
}

// Subscriber consumes a Flowable's emissions. The source drives the sequence
// OnSubscribe, zero or more OnNext, then exactly one of OnComplete or
// OnError. Calls for one subscription are totally ordered and never overlap.
type Subscriber[T any] interface {
	// OnSubscribe is invoked exactly once, before any other callback.
	// The subscriber must not call Request before receiving it.
	OnSubscribe(s Subscription)

	// OnNext delivers one value. It is never invoked while outstanding
	// demand is zero.
	OnNext(value T)

	// OnComplete signals normal exhaustion. No calls follow it.
	OnComplete()

	// OnError signals failure, including failures raised by an operator's
	// transform function. No calls follow it.
	OnError(err error)
}

// Flowable is a cold producer of a value sequence ending in a terminal
// signal. Implementations must construct a fresh Subscription per Subscribe
// call and must honor outstanding demand recorded on it.
type Flowable[T any] interface {
	Subscribe(sub Subscriber[T])
}

// Sink is the restricted view of the downstream subscriber handed to a Step.
// Its guards make emission after cancellation or a terminal signal a no-op,
// so a Step never has to re-check the subscription state itself.
type Sink[T any] interface {
	Next(value T)
	Complete()
	Error(err error)
}

// Step drives one round of emission for a single subscription. It is invoked
// with the currently outstanding demand and may call Next at most that many
// times, then Complete or Error at most once. It reports how many values it
// emitted and whether it delivered a terminal signal. A Step invoked with
// zero demand may still terminate (sources like Empty and Error do), but
// must not emit; returning (0, false) means the source is waiting for more
// demand.
//
// Per-run cursor state belongs in the closure produced by the start function
// given to Emit, never in the Flowable itself.
type Step[T any] func(down Sink[T], requested int64) (emitted int64, done bool)
