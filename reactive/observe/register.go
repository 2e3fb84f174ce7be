package observe

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Counter provides thread-safe counting of values, errors, and completions.
type Counter struct {
	values    atomic.Int64
	errors    atomic.Int64
	completes atomic.Int64
}

// Values returns the count of values observed.
func (c *Counter) Values() int64 { return c.values.Load() }

// Errors returns the count of terminal errors observed.
func (c *Counter) Errors() int64 { return c.errors.Load() }

// Completes returns the count of normal completions observed.
func (c *Counter) Completes() int64 { return c.completes.Load() }

// WithCounter builds counting hooks and returns the counter for querying.
func WithCounter[T any]() (Hooks[T], *Counter) {
	counter := &Counter{}
	return Hooks[T]{
		OnValue:    func(T) { counter.values.Add(1) },
		OnError:    func(error) { counter.errors.Add(1) },
		OnComplete: func() { counter.completes.Add(1) },
	}, counter
}

// ErrorCollector collects terminal errors observed across runs.
type ErrorCollector struct {
	mu     sync.Mutex
	errors []error
}

// Errors returns a copy of all collected errors.
func (c *ErrorCollector) Errors() []error {
	c.mu.Lock()
	defer c.mu.Unlock()
	result := make([]error, len(c.errors))
	copy(result, c.errors)
	return result
}

// HasErrors returns true if any errors were collected.
func (c *ErrorCollector) HasErrors() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.errors) > 0
}

// Count returns the number of collected errors.
func (c *ErrorCollector) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.errors)
}

// WithErrorCollector builds error-collecting hooks and returns the collector.
func WithErrorCollector[T any]() (Hooks[T], *ErrorCollector) {
	collector := &ErrorCollector{}
	return Hooks[T]{
		OnError: func(err error) {
			collector.mu.Lock()
			collector.errors = append(collector.errors, err)
			collector.mu.Unlock()
		},
	}, collector
}

// Logging builds hooks that log pipeline events through the given zerolog
// logger. Events are tagged with a stream id so interleaved pipelines can be
// told apart in shared output.
func Logging[T any](logger zerolog.Logger) Hooks[T] {
	log := logger.With().Str("stream_id", uuid.NewString()).Logger()
	return Hooks[T]{
		OnStart: func() {
			log.Debug().Msg("stream subscribed")
		},
		OnValue: func(value T) {
			log.Debug().Interface("value", value).Msg("value")
		},
		OnError: func(err error) {
			log.Error().Err(err).Msg("stream failed")
		},
		OnComplete: func() {
			log.Debug().Msg("stream completed")
		},
	}
}
