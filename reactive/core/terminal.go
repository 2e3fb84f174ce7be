package core

import "errors"

// Terminal functions drive a flowable to completion with unbounded demand
// and hand the outcome back as ordinary values, the way most callers want to
// consume a finite pipeline. They do not return on flowables that never
// terminate (for example a Cycle without a Take bound).

// ErrEmptyStream is returned by First when the flowable completes without
// emitting a value.
var ErrEmptyStream = errors.New("stream is empty")

// Slice collects every value of the flowable into a slice. The first error
// terminates the run and is returned in place of the values.
func Slice[T any](f Flowable[T]) ([]T, error) {
	d := &driveSubscriber[T]{}
	f.Subscribe(d)
	if d.err != nil {
		return nil, d.err
	}
	return d.values, nil
}

// First returns the first value of the flowable, consuming no more than one
// value from it. An empty flowable yields ErrEmptyStream.
func First[T any](f Flowable[T]) (T, error) {
	var zero T
	values, err := Slice(Take(f, 1))
	if err != nil {
		return zero, err
	}
	if len(values) == 0 {
		return zero, ErrEmptyStream
	}
	return values[0], nil
}

// Each invokes fn for every value of the flowable and returns its terminal
// error, if any.
func Each[T any](f Flowable[T], fn func(T)) error {
	d := &driveSubscriber[T]{each: fn}
	f.Subscribe(d)
	return d.err
}

// Run drives the flowable for its side effects only.
func Run[T any](f Flowable[T]) error {
	return Each(f, func(T) {})
}

// driveSubscriber requests unbounded demand and records the outcome. The
// synchronous call contract means all fields are written before Subscribe
// returns, so no locking is needed.
type driveSubscriber[T any] struct {
	each   func(T)
	values []T
	err    error
}

func (d *driveSubscriber[T]) OnSubscribe(s Subscription) {
	s.Request(unboundedDemand)
}

func (d *driveSubscriber[T]) OnNext(value T) {
	if d.each != nil {
		d.each(value)
		return
	}
	d.values = append(d.values, value)
}

func (d *driveSubscriber[T]) OnComplete() {}

func (d *driveSubscriber[T]) OnError(err error) {
	d.err = err
}
