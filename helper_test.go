package fundwatch

import (
	"math"
	"testing"

	"github.com/etnz/fundwatch/date"
	"github.com/shopspring/decimal"
)

// rec builds a record with a share value only.
func rec(day string, share float64) DailyRecord {
	return DailyRecord{
		Date:       date.MustParse(day),
		Principal:  decimal.NewFromInt(10000),
		ShareValue: share,
	}
}

// recB builds a record with a share value and benchmark levels.
func recB(day string, share float64, benchmarks map[string]float64) DailyRecord {
	r := rec(day, share)
	r.Benchmarks = benchmarks
	return r
}

// series normalizes records into a Series, failing the test on an empty result.
func series(t *testing.T, records ...DailyRecord) Series {
	t.Helper()
	s := Normalize(records)
	if s.Len() != len(records) {
		t.Fatalf("Normalize() kept %d of %d records", s.Len(), len(records))
	}
	return s
}

// near fails unless got is within tol of want.
func near(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %v, want %v (±%v)", name, got, want, tol)
	}
}
