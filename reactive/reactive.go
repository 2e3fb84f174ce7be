// Package reactive provides demand-regulated, pull-driven value streams
// with deterministic termination and strict per-run lifecycle guarantees.
//
// This package is the primary user-facing API. Most users should only need
// to import this package. The reactive/core subpackage contains the
// low-level producer/consumer protocol that is rarely needed directly.
package reactive

import "github.com/lguimbarda/min-reactive/reactive/core"

// Type aliases for core protocol abstractions.
// These allow users to work with the library without importing core directly.
type (
	// Flowable is a cold, repeatable producer of a value sequence ending
	// in exactly one completion or error.
	Flowable[T any] = core.Flowable[T]

	// Subscriber consumes a Flowable's emissions via callbacks.
	Subscriber[T any] = core.Subscriber[T]

	// Subscription is the per-run control object carrying demand and
	// cancellation from subscriber to source.
	Subscription = core.Subscription

	// Sink is the restricted downstream view handed to a Step.
	Sink[T any] = core.Sink[T]

	// Step drives one round of emission for a single subscription.
	Step[T any] = core.Step[T]
)

// ErrEmptyStream is returned by First when the flowable completes without
// emitting a value.
var ErrEmptyStream = core.ErrEmptyStream

// Emit creates a Flowable from a step generator; the generator runs once per
// Subscribe call so each run owns fresh cursor state.
func Emit[T any](start func() Step[T]) Flowable[T] {
	return core.Emit(start)
}

// EmitWithStop is Emit for sources holding external resources; the stop
// function is invoked exactly once at terminal or cancellation.
func EmitWithStop[T any](start func() (Step[T], func())) Flowable[T] {
	return core.EmitWithStop(start)
}

// Operators.

// Map transforms each value with fn; errors and panics in fn cancel the
// upstream run and surface as a single OnError.
func Map[A, B any](up Flowable[A], fn func(A) (B, error)) Flowable[B] {
	return core.Map(up, fn)
}

// Take limits the flowable to its first n values, then completes.
func Take[T any](up Flowable[T], n int64) Flowable[T] {
	return core.Take(up, n)
}

// Terminal operations.

// Slice collects all values into a slice; the first error aborts the run.
func Slice[T any](f Flowable[T]) ([]T, error) {
	return core.Slice(f)
}

// First returns the first value, consuming no more than one.
func First[T any](f Flowable[T]) (T, error) {
	return core.First(f)
}

// Each invokes fn for every value and returns the terminal error, if any.
func Each[T any](f Flowable[T], fn func(T)) error {
	return core.Each(f, fn)
}

// Run drives the flowable for side effects only.
func Run[T any](f Flowable[T]) error {
	return core.Run(f)
}

// LiveObjects returns the process-wide count of subscription-scoped objects
// currently alive. Diagnostic only; see core.LiveObjects.
func LiveObjects() int64 {
	return core.LiveObjects()
}
