package observe_test

import (
	"errors"
	"testing"

	"github.com/lguimbarda/min-reactive/reactive"
	"github.com/lguimbarda/min-reactive/reactive/helpers"
	"github.com/lguimbarda/min-reactive/reactive/observe"
)

// A tapped pipeline must deliver exactly the calls the untapped one would:
// same values, same terminal, same demand behavior.
func TestTapPreservesSignals(t *testing.T) {
	var seen []int
	tapped := observe.Tap(reactive.Just(1, 2, 3), observe.Hooks[int]{
		OnValue: func(v int) { seen = append(seen, v) },
	})

	got, err := reactive.Slice(tapped)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int{1, 2, 3}
	if len(got) != len(want) || len(seen) != len(want) {
		t.Fatalf("got %v, seen %v, want %v", got, seen, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %v, want %v", i, got[i], want[i])
		}
		if seen[i] != want[i] {
			t.Errorf("seen[%d] = %v, want %v", i, seen[i], want[i])
		}
	}
}

func TestTapRespectsDemand(t *testing.T) {
	var seen int
	tapped := observe.Tap(reactive.Range(0, 100), observe.Hooks[int64]{
		OnValue: func(int64) { seen++ },
	})

	collector := helpers.NewCollector[int64](3)
	tapped.Subscribe(collector)

	if seen != 3 {
		t.Fatalf("hooks saw %d values under demand 3", seen)
	}
	collector.Subscription().Cancel()
}

func TestTapEventOrder(t *testing.T) {
	var events []string
	hooks := observe.Hooks[int]{
		OnStart:    func() { events = append(events, "start") },
		OnValue:    func(int) { events = append(events, "value") },
		OnError:    func(error) { events = append(events, "error") },
		OnComplete: func() { events = append(events, "complete") },
	}

	if _, err := reactive.Slice(observe.Tap(reactive.Just(7), hooks)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"start", "value", "complete"}
	if len(events) != len(want) {
		t.Fatalf("got events %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("events[%d] = %q, want %q", i, events[i], want[i])
		}
	}

	events = nil
	if _, err := reactive.Slice(observe.Tap(reactive.Errorf[int]("boom"), hooks)); err == nil {
		t.Fatal("expected error")
	}
	want = []string{"start", "error"}
	if len(events) != len(want) || events[0] != want[0] || events[1] != want[1] {
		t.Fatalf("got events %v, want %v", events, want)
	}
}

func TestCombineInvokesInOrder(t *testing.T) {
	var order []string
	first := observe.Hooks[int]{
		OnValue: func(int) { order = append(order, "first") },
	}
	second := observe.Hooks[int]{
		OnValue: func(int) { order = append(order, "second") },
	}

	combined := observe.Combine(first, second)
	combined.OnValue(1)

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Fatalf("got order %v, want [first second]", order)
	}
}

func TestCombineSkipsNilCallbacks(t *testing.T) {
	var count int
	counting := observe.Hooks[int]{
		OnValue: func(int) { count++ },
	}

	combined := observe.Combine(observe.Hooks[int]{}, counting)
	combined.OnValue(1)
	combined.OnComplete()
	combined.OnError(errors.New("boom"))

	if count != 1 {
		t.Fatalf("got %d value callbacks, want 1", count)
	}
}
