// Package observe provides observation hooks for flowable pipelines:
// counters, structured logging, and OpenTelemetry metric instruments. All of
// it is signal-preserving — a tapped pipeline delivers exactly the calls the
// untapped one would.
package observe

import (
	"github.com/lguimbarda/min-reactive/reactive/core"
)

// Hooks holds observation callbacks for one pipeline stage.
// All fields are optional - nil means no observation for that event.
// Hooks are invoked synchronously during emission, so they should be fast
// to avoid blocking the pipeline.
type Hooks[T any] struct {
	OnStart    func()      // Run begins (OnSubscribe delivered)
	OnValue    func(T)     // Value passed through
	OnError    func(error) // Terminal error passed through
	OnComplete func()      // Normal completion passed through
}

// Combine merges several hook sets into one that invokes them in FIFO
// order, matching the order they are given.
func Combine[T any](sets ...Hooks[T]) Hooks[T] {
	return Hooks[T]{
		OnStart: func() {
			for _, h := range sets {
				if h.OnStart != nil {
					h.OnStart()
				}
			}
		},
		OnValue: func(value T) {
			for _, h := range sets {
				if h.OnValue != nil {
					h.OnValue(value)
				}
			}
		},
		OnError: func(err error) {
			for _, h := range sets {
				if h.OnError != nil {
					h.OnError(err)
				}
			}
		},
		OnComplete: func() {
			for _, h := range sets {
				if h.OnComplete != nil {
					h.OnComplete()
				}
			}
		},
	}
}

// Tap interposes the hooks between up and its subscribers. Every callback
// and every demand signal is forwarded unchanged; hooks fire before the
// corresponding downstream call.
func Tap[T any](up core.Flowable[T], hooks Hooks[T]) core.Flowable[T] {
	return tapFlowable[T]{up: up, hooks: hooks}
}

type tapFlowable[T any] struct {
	up    core.Flowable[T]
	hooks Hooks[T]
}

func (f tapFlowable[T]) Subscribe(sub core.Subscriber[T]) {
	f.up.Subscribe(&tapSubscriber[T]{down: sub, hooks: f.hooks})
}

type tapSubscriber[T any] struct {
	down  core.Subscriber[T]
	hooks Hooks[T]
}

func (t *tapSubscriber[T]) OnSubscribe(s core.Subscription) {
	if t.hooks.OnStart != nil {
		t.hooks.OnStart()
	}
	t.down.OnSubscribe(s)
}

func (t *tapSubscriber[T]) OnNext(value T) {
	if t.hooks.OnValue != nil {
		t.hooks.OnValue(value)
	}
	t.down.OnNext(value)
}

func (t *tapSubscriber[T]) OnComplete() {
	if t.hooks.OnComplete != nil {
		t.hooks.OnComplete()
	}
	t.down.OnComplete()
}

func (t *tapSubscriber[T]) OnError(err error) {
	if t.hooks.OnError != nil {
		t.hooks.OnError(err)
	}
	t.down.OnError(err)
}
