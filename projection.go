package fundwatch

import (
	"math"

	"github.com/etnz/fundwatch/date"
)

// Projection compares the compounded end value of a hypothetical lump-sum
// investment made at a past date across three alternatives: the fund itself,
// each benchmark index, and a fixed-rate deposit.
type Projection struct {
	Amount     Money
	Start, End date.Date
	Years      float64
	Fund       Money
	Benchmarks map[string]Money // absent when the benchmark lacks a level at either endpoint
	Deposit    Money            // the fixed-rate alternative
	Rate       Percent          // the deposit's nominal annual rate
}

// Project computes the what-if growth of amount invested at the record with
// index start, held until the end of the series. Benchmarks without a valid
// level at both endpoints are skipped. It returns nil when amount is not
// positive or start does not leave at least one later record: there is no
// growth ratio to compound.
func Project(s Series, amount Money, start int, rate Percent) *Projection {
	if !amount.IsPositive() || start < 0 || start >= s.Len()-1 {
		return nil
	}
	from, to := s[start], s.Last()

	p := &Projection{
		Amount:     amount,
		Start:      from.Date,
		End:        to.Date,
		Years:      date.Years(from.Date, to.Date),
		Benchmarks: make(map[string]Money),
		Rate:       rate,
	}
	if from.ShareValue > 0 {
		p.Fund = amount.MulFloat(to.ShareValue / from.ShareValue)
	}
	for _, name := range s.Benchmarks() {
		fromLevel, okFrom := from.Benchmark(name)
		toLevel, okTo := to.Benchmark(name)
		if !okFrom || !okTo || fromLevel <= 0 {
			continue
		}
		p.Benchmarks[name] = amount.MulFloat(toLevel / fromLevel)
	}
	p.Deposit = amount.MulFloat(math.Pow(1+rate.Ratio(), p.Years))
	return p
}

// ProjectFrom is Project with a start date instead of a record index: the
// investment is placed at the first record on or after the date.
func ProjectFrom(s Series, amount Money, from date.Date, rate Percent) *Projection {
	i := s.IndexOn(from)
	if i < 0 {
		return nil
	}
	return Project(s, amount, i, rate)
}
