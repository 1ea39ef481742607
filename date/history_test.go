package date

import (
	"testing"
	"time"
)

func day(d int) Date { return New(2024, time.June, d) }

func TestHistoryAppendSorts(t *testing.T) {
	var h History[float64]
	h.Append(day(3), 3).Append(day(1), 1).Append(day(2), 2)

	var got []float64
	for _, v := range h.Values() {
		got = append(got, v)
	}
	for i, v := range got {
		if v != float64(i+1) {
			t.Fatalf("values not chronological: %v", got)
		}
	}
}

func TestHistoryAppendOverwrites(t *testing.T) {
	var h History[float64]
	h.Append(day(1), 1).Append(day(1), 10)
	if h.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", h.Len())
	}
	if v, _ := h.Get(day(1)); v != 10 {
		t.Errorf("Get() = %v, want 10 (last write wins)", v)
	}
}

func TestHistoryValueAsOf(t *testing.T) {
	var h History[float64]
	h.Append(day(10), 100).Append(day(20), 200)

	// exact hit
	if v, ok := h.ValueAsOf(day(10)); !ok || v != 100 {
		t.Errorf("ValueAsOf(day 10) = %v, %v", v, ok)
	}
	// gap reads the last known sample
	if v, ok := h.ValueAsOf(day(15)); !ok || v != 100 {
		t.Errorf("ValueAsOf(day 15) = %v, %v, want 100 (forward fill)", v, ok)
	}
	// after the last sample
	if v, ok := h.ValueAsOf(day(25)); !ok || v != 200 {
		t.Errorf("ValueAsOf(day 25) = %v, %v", v, ok)
	}
	// a value never appears before its first observation
	if _, ok := h.ValueAsOf(day(9)); ok {
		t.Error("ValueAsOf(day 9) should not be found before the first sample")
	}
}

func TestHistoryFirstLatest(t *testing.T) {
	var h History[float64]
	if _, v := h.Latest(); v != 0 {
		t.Errorf("Latest() on empty = %v, want 0", v)
	}
	h.Append(day(2), 2).Append(day(1), 1)
	if d, v := h.First(); d != day(1) || v != 1 {
		t.Errorf("First() = %v, %v", d, v)
	}
	if d, v := h.Latest(); d != day(2) || v != 2 {
		t.Errorf("Latest() = %v, %v", d, v)
	}
}
