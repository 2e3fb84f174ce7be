package observe

import (
	"context"

	"go.opentelemetry.io/otel/metric"

	"github.com/lguimbarda/min-reactive/reactive/core"
)

// Instrument builds hooks that feed OpenTelemetry counters: <prefix>.values
// for values passed through and <prefix>.errors for terminal errors.
func Instrument[T any](meter metric.Meter, prefix string) (Hooks[T], error) {
	values, err := meter.Int64Counter(prefix+".values",
		metric.WithDescription("count of values emitted"))
	if err != nil {
		return Hooks[T]{}, err
	}
	failures, err := meter.Int64Counter(prefix+".errors",
		metric.WithDescription("count of terminal errors"))
	if err != nil {
		return Hooks[T]{}, err
	}
	return Hooks[T]{
		OnValue: func(T) {
			values.Add(context.Background(), 1)
		},
		OnError: func(error) {
			failures.Add(context.Background(), 1)
		},
	}, nil
}

// RegisterLiveGauge exposes the library's live-object counter as an
// observable gauge named reactive.live_objects. The returned registration
// can be used to stop observing.
func RegisterLiveGauge(meter metric.Meter) (metric.Registration, error) {
	gauge, err := meter.Int64ObservableGauge("reactive.live_objects",
		metric.WithDescription("subscription-scoped objects currently alive"))
	if err != nil {
		return nil, err
	}
	return meter.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		o.ObserveInt64(gauge, core.LiveObjects())
		return nil
	}, gauge)
}
