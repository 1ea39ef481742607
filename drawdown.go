package fundwatch

import "github.com/etnz/fundwatch/date"

// DrawdownPoint is the percentage decline from the running historical peak of
// the share value at one date. Drawdown is always <= 0; a new peak reads 0.
type DrawdownPoint struct {
	Date     date.Date
	Value    float64
	Drawdown Percent
}

// DrawdownStats summarize the drawdown curve.
type DrawdownStats struct {
	Max     Percent // deepest decline from a peak over the whole series
	Current Percent // drawdown standing at the last record
	// Average is the mean drawdown over strictly negative points only; flat
	// and peak days are excluded so the figure answers "how bad is it when
	// it is bad" without dilution.
	Average        Percent
	TimeInDrawdown float64 // fraction of records below the running peak
}

// DrawdownCurve computes the drawdown at every record. It returns nil when
// the series holds fewer than two records.
func DrawdownCurve(s Series) []DrawdownPoint {
	if s.Len() < 2 {
		return nil
	}
	curve := make([]DrawdownPoint, 0, s.Len())
	peak := s.First().ShareValue
	for _, r := range s {
		if r.ShareValue > peak {
			peak = r.ShareValue
		}
		var dd Percent
		if peak > 0 {
			dd = Percent((r.ShareValue - peak) / peak * 100)
		}
		curve = append(curve, DrawdownPoint{Date: r.Date, Value: r.ShareValue, Drawdown: dd})
	}
	return curve
}

// CalculateDrawdownStats derives the summary figures from the drawdown curve.
// It returns nil when the series holds fewer than two records.
func CalculateDrawdownStats(s Series) *DrawdownStats {
	curve := DrawdownCurve(s)
	if curve == nil {
		return nil
	}
	stats := &DrawdownStats{Current: curve[len(curve)-1].Drawdown}
	var negSum float64
	var negCount int
	for _, p := range curve {
		if p.Drawdown < stats.Max {
			stats.Max = p.Drawdown
		}
		if p.Drawdown < 0 {
			negSum += float64(p.Drawdown)
			negCount++
		}
	}
	if negCount > 0 {
		stats.Average = Percent(negSum / float64(negCount))
	}
	stats.TimeInDrawdown = float64(negCount) / float64(len(curve))
	return stats
}
