package fundwatch

import (
	"maps"
	"sort"
)

// Normalize turns freshly parsed records into the canonical Series consumed
// by the engine.
//
// Records are stably sorted by date. Duplicate dates should not occur, but
// when they do the last parsed record wins. For each benchmark channel,
// missing values between two known samples are forward-filled from the most
// recent prior observation (never backward-filled, never interpolated), the
// same way live market-data gaps (holidays, API outages) are handled upstream.
//
// The input slice and its maps are left untouched; the returned Series owns
// fresh copies.
func Normalize(records []DailyRecord) Series {
	if len(records) == 0 {
		return nil
	}

	sorted := make([]DailyRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	out := make(Series, 0, len(sorted))
	for _, r := range sorted {
		r.Benchmarks = maps.Clone(r.Benchmarks)
		if n := len(out); n > 0 && out[n-1].Date == r.Date {
			out[n-1] = r // last write wins on duplicate dates
			continue
		}
		out = append(out, r)
	}

	// Forward-fill each benchmark channel from its first observation on.
	last := make(map[string]float64)
	for i := range out {
		for name, level := range last {
			if _, ok := out[i].Benchmarks[name]; !ok {
				if out[i].Benchmarks == nil {
					out[i].Benchmarks = make(map[string]float64)
				}
				out[i].Benchmarks[name] = level
			}
		}
		for name, level := range out[i].Benchmarks {
			last[name] = level
		}
	}
	return out
}
