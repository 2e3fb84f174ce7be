package reactive

import (
	"fmt"

	"github.com/lguimbarda/min-reactive/reactive/core"
)

// Just creates a Flowable that emits the given values in order exactly once,
// then completes. Values are handed downstream as-is; each is emitted a
// single time so no copying takes place between emissions.
func Just[T any](values ...T) Flowable[T] {
	return core.Emit(func() core.Step[T] {
		index := 0
		return func(down core.Sink[T], requested int64) (int64, bool) {
			var emitted int64
			for index < len(values) && emitted < requested {
				down.Next(values[index])
				index++
				emitted++
			}
			if index == len(values) {
				down.Complete()
				return emitted, true
			}
			return emitted, false
		}
	})
}

// Range creates a Flowable that emits the integers start, start+1, ...,
// end-1 in order, then completes. If end <= start the sequence is empty and
// the flowable completes immediately.
func Range(start, end int64) Flowable[int64] {
	return core.Emit(func() core.Step[int64] {
		cursor := start
		return func(down core.Sink[int64], requested int64) (int64, bool) {
			var emitted int64
			for cursor < end && emitted < requested {
				down.Next(cursor)
				cursor++
				emitted++
			}
			if cursor >= end {
				down.Complete()
				return emitted, true
			}
			return emitted, false
		}
	})
}

// Cycle creates a Flowable that emits the given values in order, wrapping
// around indefinitely. Every emission hands downstream its own copy of the
// template element, so a downstream stage mutating one emitted value never
// affects later emissions. For element types that hold references (slices,
// maps, pointers) plain assignment does not produce an independent copy; use
// CycleWith with an explicit clone for those.
//
// An empty template completes immediately.
func Cycle[T any](values ...T) Flowable[T] {
	return CycleWith(values, func(value T) T { return value })
}

// CycleWith is Cycle with an explicit per-emission clone of the template
// element. The template slice is copied up front so later mutation of the
// caller's slice cannot bleed into running or future subscriptions.
func CycleWith[T any](values []T, clone func(T) T) Flowable[T] {
	template := make([]T, len(values))
	copy(template, values)
	return core.Emit(func() core.Step[T] {
		cursor := 0
		return func(down core.Sink[T], requested int64) (int64, bool) {
			if len(template) == 0 {
				down.Complete()
				return 0, true
			}
			var emitted int64
			for emitted < requested {
				down.Next(clone(template[cursor]))
				cursor++
				if cursor == len(template) {
					cursor = 0
				}
				emitted++
			}
			return emitted, false
		}
	})
}

// Error creates a Flowable that calls OnSubscribe and then immediately fails
// with err, emitting no values.
func Error[T any](err error) Flowable[T] {
	return core.Emit(func() core.Step[T] {
		return func(down core.Sink[T], _ int64) (int64, bool) {
			down.Error(err)
			return 0, true
		}
	})
}

// Errorf is Error with the message built from a format string.
func Errorf[T any](format string, args ...any) Flowable[T] {
	return Error[T](fmt.Errorf(format, args...))
}

// Empty creates a Flowable that completes immediately without emitting.
func Empty[T any]() Flowable[T] {
	return core.Emit(func() core.Step[T] {
		return func(down core.Sink[T], _ int64) (int64, bool) {
			down.Complete()
			return 0, true
		}
	})
}
