package store

import (
	"testing"

	"github.com/etnz/fundwatch/date"
)

func open(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open(:memory:) error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAppendAndHistory(t *testing.T) {
	s := open(t)
	if err := s.Append("sha", date.New(2024, 1, 2), 2962.28); err != nil {
		t.Fatal(err)
	}
	if err := s.Append("sha", date.New(2024, 1, 3), 2967.25); err != nil {
		t.Fatal(err)
	}
	if err := s.Append("csi300", date.New(2024, 1, 2), 3322.16); err != nil {
		t.Fatal(err)
	}

	h, err := s.History("sha", date.NewRange(date.New(2024, 1, 1), date.New(2024, 12, 31)))
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if h.Len() != 2 {
		t.Fatalf("History() has %d points, want 2", h.Len())
	}
	day, level := h.First()
	if day != date.New(2024, 1, 2) || level != 2962.28 {
		t.Errorf("first point = %v, %v", day, level)
	}
}

func TestAppendLastWriteWins(t *testing.T) {
	s := open(t)
	day := date.New(2024, 1, 2)
	if err := s.Append("sha", day, 2900); err != nil {
		t.Fatal(err)
	}
	if err := s.Append("sha", day, 2962.28); err != nil {
		t.Fatal(err)
	}
	h, err := s.History("sha", date.NewRange(day, day))
	if err != nil {
		t.Fatal(err)
	}
	if h.Len() != 1 {
		t.Fatalf("History() has %d points, want 1", h.Len())
	}
	if _, level := h.Latest(); level != 2962.28 {
		t.Errorf("level = %v, want the rewritten value", level)
	}
}

func TestHistoryRangeBounds(t *testing.T) {
	s := open(t)
	for d := 1; d <= 5; d++ {
		if err := s.Append("sha", date.New(2024, 1, d), float64(3000+d)); err != nil {
			t.Fatal(err)
		}
	}
	h, err := s.History("sha", date.NewRange(date.New(2024, 1, 2), date.New(2024, 1, 4)))
	if err != nil {
		t.Fatal(err)
	}
	if h.Len() != 3 {
		t.Errorf("History() has %d points, want 3 (bounds inclusive)", h.Len())
	}
}

func TestHistoryUnknownBenchmark(t *testing.T) {
	s := open(t)
	h, err := s.History("nope", date.NewRange(date.New(2024, 1, 1), date.New(2024, 12, 31)))
	if err != nil {
		t.Fatalf("History(unknown) error = %v", err)
	}
	if h.Len() != 0 {
		t.Errorf("History(unknown) has %d points, want 0", h.Len())
	}
}

func TestAppendHistoryAndBenchmarks(t *testing.T) {
	s := open(t)
	h := &date.History[float64]{}
	h.Append(date.New(2024, 1, 2), 3322.16)
	h.Append(date.New(2024, 1, 3), 3316.90)
	if err := s.AppendHistory("csi300", h); err != nil {
		t.Fatalf("AppendHistory() error = %v", err)
	}
	if err := s.Append("sha", date.New(2024, 1, 2), 2962.28); err != nil {
		t.Fatal(err)
	}

	names, err := s.Benchmarks()
	if err != nil {
		t.Fatalf("Benchmarks() error = %v", err)
	}
	if len(names) != 2 || names[0] != "csi300" || names[1] != "sha" {
		t.Errorf("Benchmarks() = %v, want [csi300 sha]", names)
	}
}
