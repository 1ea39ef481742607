package fundwatch

import (
	"sort"
	"strconv"

	"github.com/etnz/fundwatch/date"
)

// DefaultTopK is the number of periods returned by BestPeriods and
// WorstPeriods when the caller does not ask for a specific count.
const DefaultTopK = 5

// PeriodReturn is the return of one calendar bucket: a month ("2024-03"), a
// quarter ("2024-Q1"), or a year ("2024"). The return is computed from the
// bucket's first and last record.
type PeriodReturn struct {
	Key     string
	Return  Percent
	Records int
}

// AnnualReturn is the return of one calendar year.
type AnnualReturn struct {
	Year   int
	Return Percent
}

// CalculatePeriodReturns groups the series into calendar buckets of the given
// period and computes each bucket's return from its first and last record.
// Buckets with fewer than two records are excluded rather than reported as
// zero. Results are in chronological order.
func CalculatePeriodReturns(s Series, p date.Period) []PeriodReturn {
	type bucket struct {
		first, last DailyRecord
		n           int
	}
	buckets := make(map[string]*bucket)
	var keys []string
	for _, r := range s {
		k := p.Key(r.Date)
		b, ok := buckets[k]
		if !ok {
			b = &bucket{first: r}
			buckets[k] = b
			keys = append(keys, k)
		}
		b.last = r
		b.n++
	}
	sort.Strings(keys) // bucket keys sort chronologically as strings

	var results []PeriodReturn
	for _, k := range keys {
		b := buckets[k]
		if b.n < 2 || b.first.ShareValue <= 0 {
			continue
		}
		results = append(results, PeriodReturn{
			Key:     k,
			Return:  Percent((b.last.ShareValue/b.first.ShareValue - 1) * 100),
			Records: b.n,
		})
	}
	return results
}

// CalculateAnnualReturns computes per-calendar-year returns. A year with
// fewer than two records is excluded.
func CalculateAnnualReturns(s Series) []AnnualReturn {
	periods := CalculatePeriodReturns(s, date.Yearly)
	if periods == nil {
		return nil
	}
	years := make([]AnnualReturn, 0, len(periods))
	for _, p := range periods {
		y, err := strconv.Atoi(p.Key)
		if err != nil {
			continue // cannot happen with Yearly keys
		}
		years = append(years, AnnualReturn{Year: y, Return: p.Return})
	}
	return years
}

// BestPeriods returns the k highest bucket returns for the given period,
// best first. Ties rank the earlier period first, so the result is
// deterministic. k <= 0 means DefaultTopK.
func BestPeriods(s Series, p date.Period, k int) []PeriodReturn {
	return rankPeriods(s, p, k, func(a, b Percent) bool { return a > b })
}

// WorstPeriods returns the k lowest bucket returns for the given period,
// worst first. Ties rank the earlier period first. k <= 0 means DefaultTopK.
func WorstPeriods(s Series, p date.Period, k int) []PeriodReturn {
	return rankPeriods(s, p, k, func(a, b Percent) bool { return a < b })
}

func rankPeriods(s Series, p date.Period, k int, better func(a, b Percent) bool) []PeriodReturn {
	if k <= 0 {
		k = DefaultTopK
	}
	ranked := CalculatePeriodReturns(s, p) // chronological, so a stable sort keeps ties in date order
	sort.SliceStable(ranked, func(i, j int) bool { return better(ranked[i].Return, ranked[j].Return) })
	if len(ranked) > k {
		ranked = ranked[:k]
	}
	return ranked
}
