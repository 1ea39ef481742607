package fundwatch

import (
	"sort"

	"github.com/etnz/fundwatch/date"
	"github.com/shopspring/decimal"
)

// DailyRecord is a single day's snapshot of the portfolio: the cumulative
// invested principal, the net-asset-value per unit, and the closing level of
// each benchmark index observed that day.
type DailyRecord struct {
	Date       date.Date
	Principal  decimal.Decimal // cumulative invested capital, non-negative
	ShareValue float64         // NAV per unit, > 0
	Benchmarks map[string]float64
}

// Benchmark returns the level observed for a benchmark name on that day.
func (r DailyRecord) Benchmark(name string) (float64, bool) {
	level, ok := r.Benchmarks[name]
	return level, ok
}

// Series is an ordered, non-empty sequence of daily records with strictly
// ascending dates. It is produced by Normalize and never mutated by the
// engine; it is safe to share between concurrent analysis calls.
type Series []DailyRecord

func (s Series) Len() int { return len(s) }

// First returns the earliest record. It panics on an empty series; callers
// check Len first, as all engine entry points do.
func (s Series) First() DailyRecord { return s[0] }

// Last returns the latest record.
func (s Series) Last() DailyRecord { return s[len(s)-1] }

// Years returns the elapsed time covered by the series in fractional years.
func (s Series) Years() float64 {
	if len(s) < 2 {
		return 0
	}
	return date.Years(s.First().Date, s.Last().Date)
}

// Benchmarks returns the sorted union of benchmark names present anywhere in
// the series.
func (s Series) Benchmarks() []string {
	seen := make(map[string]struct{})
	var names []string
	for _, r := range s {
		for name := range r.Benchmarks {
			if _, ok := seen[name]; !ok {
				seen[name] = struct{}{}
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return names
}

// Returns computes the daily simple returns of the share value. The result
// has Len()-1 values: element i is the return from record i to record i+1.
// A non-positive previous share value degrades to a zero return instead of
// dividing by zero.
func (s Series) Returns() []float64 {
	if len(s) < 2 {
		return nil
	}
	rets := make([]float64, 0, len(s)-1)
	for i := 1; i < len(s); i++ {
		prev := s[i-1].ShareValue
		if prev <= 0 {
			rets = append(rets, 0)
			continue
		}
		rets = append(rets, s[i].ShareValue/prev-1)
	}
	return rets
}

// IndexOn returns the index of the first record on or after d, or -1 when
// every record is earlier.
func (s Series) IndexOn(d date.Date) int {
	for i, r := range s {
		if !r.Date.Before(d) {
			return i
		}
	}
	return -1
}
