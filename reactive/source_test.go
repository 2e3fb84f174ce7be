package reactive_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lguimbarda/min-reactive/reactive"
	"github.com/lguimbarda/min-reactive/reactive/helpers"
)

func TestJust(t *testing.T) {
	tests := []struct {
		name string
		in   []int
	}{
		{name: "single value", in: []int{22}},
		{name: "several values", in: []int{12, 34, 56, 98}},
		{name: "no values", in: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reactive.Slice(reactive.Just(tt.in...))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.in) {
				t.Fatalf("got %v, want %v", got, tt.in)
			}
			for i := range tt.in {
				if got[i] != tt.in[i] {
					t.Errorf("got[%d] = %v, want %v", i, got[i], tt.in[i])
				}
			}
		})
	}
}

func TestJustStrings(t *testing.T) {
	got, err := reactive.Slice(reactive.Just("ab", "pq", "yz"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"ab", "pq", "yz"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRange(t *testing.T) {
	tests := []struct {
		name       string
		start, end int64
		want       []int64
	}{
		{
			name:  "ascending range",
			start: 10,
			end:   15,
			want:  []int64{10, 11, 12, 13, 14},
		},
		{
			name:  "empty when end equals start",
			start: 3,
			end:   3,
			want:  []int64{},
		},
		{
			name:  "empty when end precedes start",
			start: 5,
			end:   2,
			want:  []int64{},
		},
		{
			name:  "negative bounds",
			start: -2,
			end:   1,
			want:  []int64{-2, -1, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reactive.Slice(reactive.Range(tt.start, tt.end))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("got[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestCycleOne(t *testing.T) {
	got, err := reactive.Slice(reactive.Take(reactive.Cycle("Payload"), 5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"Payload", "Payload", "Payload", "Payload", "Payload"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCycleList(t *testing.T) {
	got, err := reactive.Slice(reactive.Take(reactive.Cycle("Payload 1", "Payload 2"), 5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"Payload 1", "Payload 2", "Payload 1", "Payload 2", "Payload 1"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

// A transform appending to each emission must never corrupt the template:
// every wrap-around emission starts from the original value.
func TestCycleEmissionsAreIndependent(t *testing.T) {
	i := 0
	pipeline := reactive.Take(reactive.Map(reactive.Cycle("Payload"), func(s string) (string, error) {
		i++
		return fmt.Sprintf("%s %d", s, i), nil
	}), 5)

	got, err := reactive.Slice(pipeline)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"Payload 1", "Payload 2", "Payload 3", "Payload 4", "Payload 5"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for j := range want {
		if got[j] != want[j] {
			t.Errorf("got[%d] = %q, want %q", j, got[j], want[j])
		}
	}
}

func TestCycleListWithTransform(t *testing.T) {
	i := 0
	pipeline := reactive.Take(reactive.Map(reactive.Cycle("Payload 1", "Payload 2"), func(s string) (string, error) {
		i++
		return fmt.Sprintf("%s %d", s, i), nil
	}), 5)

	got, err := reactive.Slice(pipeline)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"Payload 1 1", "Payload 2 2", "Payload 1 3", "Payload 2 4", "Payload 1 5"}
	for j := range want {
		if got[j] != want[j] {
			t.Errorf("got[%d] = %q, want %q", j, got[j], want[j])
		}
	}
}

// CycleWith covers element types where assignment shares storage: a stage
// mutating the emitted slice in place must not poison later emissions.
func TestCycleWithClonesReferenceValues(t *testing.T) {
	template := [][]byte{[]byte("abc")}
	clone := func(b []byte) []byte {
		out := make([]byte, len(b))
		copy(out, b)
		return out
	}

	mutating := reactive.Map(reactive.CycleWith(template, clone), func(b []byte) (string, error) {
		b[0] = 'X' // scribble on the emitted copy
		return string(b), nil
	})

	got, err := reactive.Slice(reactive.Take(mutating, 3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, s := range got {
		if s != "Xbc" {
			t.Errorf("got[%d] = %q, want %q", i, s, "Xbc")
		}
	}
	if string(template[0]) != "abc" {
		t.Fatalf("template mutated to %q", template[0])
	}
}

func TestCycleEmptyTemplateCompletes(t *testing.T) {
	got, err := reactive.Slice(reactive.Cycle[int]())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no values, got %v", got)
	}
}

func TestError(t *testing.T) {
	boom := errors.New("something broke!")
	collector := helpers.NewCollector[int](100)
	reactive.Error[int](boom).Subscribe(collector)

	if len(collector.Values()) != 0 {
		t.Fatalf("expected no values, got %v", collector.Values())
	}
	if collector.Completed() {
		t.Fatal("expected no completion")
	}
	if !collector.Failed() {
		t.Fatal("expected OnError")
	}
	if collector.ErrMsg() != "something broke!" {
		t.Fatalf("got message %q, want %q", collector.ErrMsg(), "something broke!")
	}
}

func TestErrorf(t *testing.T) {
	collector := helpers.NewCollector[int](100)
	reactive.Errorf[int]("something %s!", "broke").Subscribe(collector)

	if collector.Completed() || !collector.Failed() {
		t.Fatal("expected a failed, uncompleted run")
	}
	if collector.ErrMsg() != "something broke!" {
		t.Fatalf("got message %q, want %q", collector.ErrMsg(), "something broke!")
	}
}

func TestErrorDeliversWithoutDemand(t *testing.T) {
	// The terminal signal is not demand-gated: a subscriber that never
	// requests still sees the failure.
	collector := helpers.NewCollector[int](0)
	reactive.Error[int](errors.New("boom")).Subscribe(collector)

	if !collector.Failed() {
		t.Fatal("expected OnError without any demand")
	}
}

func TestEmpty(t *testing.T) {
	collector := helpers.NewCollector[int](0)
	reactive.Empty[int]().Subscribe(collector)

	if len(collector.Values()) != 0 {
		t.Fatalf("expected no values, got %v", collector.Values())
	}
	if !collector.Completed() {
		t.Fatal("expected completion")
	}
	if collector.Failed() {
		t.Fatalf("expected no error, got %v", collector.Err())
	}
}
