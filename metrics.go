package fundwatch

import (
	"math"

	"github.com/etnz/fundwatch/date"
	"github.com/shopspring/decimal"
)

// MetricsResult aggregates the headline figures of the dashboard. It is a
// derived value, recomputed on each analysis request.
type MetricsResult struct {
	CurrentValue     float64         // latest share value
	Principal        decimal.Decimal // latest cumulative invested capital
	Years            float64         // span covered by the series
	TotalReturn      Percent
	AnnualizedReturn Percent
	Benchmarks       map[string]Percent // annualized return per benchmark
	Outperformance   Percent            // annualized return minus the benchmark average
}

// CalculateOverallMetrics computes the headline performance figures for a
// series. It returns nil when the series holds fewer than two records, since
// no return can be computed from a single observation.
func CalculateOverallMetrics(s Series) *MetricsResult {
	if s.Len() < 2 {
		return nil
	}
	first, last := s.First(), s.Last()
	if first.ShareValue <= 0 {
		return nil
	}

	ratio := last.ShareValue / first.ShareValue
	res := &MetricsResult{
		CurrentValue:     last.ShareValue,
		Principal:        last.Principal,
		Years:            s.Years(),
		TotalReturn:      Percent((ratio - 1) * 100),
		AnnualizedReturn: annualize(ratio, first.Date, last.Date),
		Benchmarks:       make(map[string]Percent),
	}

	var sum float64
	for _, name := range s.Benchmarks() {
		br, ok := benchmarkAnnualized(s, name)
		if !ok {
			continue
		}
		res.Benchmarks[name] = br
		sum += float64(br)
	}
	if n := len(res.Benchmarks); n > 0 {
		res.Outperformance = res.AnnualizedReturn - Percent(sum/float64(n))
	}
	return res
}

// annualize converts a growth ratio between two dates into a percentage
// return. Spans shorter than a year report the raw total return: compounding
// a rate out of a few months of history would grossly overstate it. Full-year
// and longer spans report the CAGR over the actual elapsed years (365.25-day
// years, not trading days).
func annualize(ratio float64, from, to date.Date) Percent {
	if ratio <= 0 {
		return 0
	}
	days := date.Days(from, to)
	if days <= 0 {
		return Percent((ratio - 1) * 100)
	}
	if days < 365 {
		return Percent((ratio - 1) * 100)
	}
	years := float64(days) / date.YearDays
	return Percent((math.Pow(ratio, 1/years) - 1) * 100)
}

// benchmarkAnnualized computes a benchmark's annualized return between its
// first and last observed levels in the series. It reports false when the
// benchmark was observed on fewer than two distinct days.
func benchmarkAnnualized(s Series, name string) (Percent, bool) {
	firstIdx, lastIdx := -1, -1
	for i, r := range s {
		if level, ok := r.Benchmark(name); ok && level > 0 {
			if firstIdx < 0 {
				firstIdx = i
			}
			lastIdx = i
		}
	}
	if firstIdx < 0 || firstIdx == lastIdx {
		return 0, false
	}
	first, last := s[firstIdx], s[lastIdx]
	ratio := last.Benchmarks[name] / first.Benchmarks[name]
	return annualize(ratio, first.Date, last.Date), true
}
