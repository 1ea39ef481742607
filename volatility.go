package fundwatch

import (
	"math"

	"github.com/etnz/fundwatch/date"
	"gonum.org/v1/gonum/stat"
)

// TradingDays is the conventional number of trading days in a year, used to
// annualize daily volatility.
const TradingDays = 252

// VolatilityPoint is the annualized volatility of the trailing window ending
// at one date.
type VolatilityPoint struct {
	Date       date.Date
	Volatility Percent
}

// RollingVolatility computes the annualized volatility of daily returns over
// a trailing window of the given size in trading days (callers typically
// offer 30, 60 and 90). It returns nil when the series is shorter than
// window+1 records. A window with fewer than two usable returns reads as 0
// rather than an error.
func RollingVolatility(s Series, window int) []VolatilityPoint {
	if window < 2 || s.Len() < window+1 {
		return nil
	}
	rets := s.Returns() // rets[i] is the return into record i+1
	points := make([]VolatilityPoint, 0, len(rets)-window+1)
	for end := window; end <= len(rets); end++ {
		points = append(points, VolatilityPoint{
			Date:       s[end].Date,
			Volatility: annualizedVolatility(rets[end-window : end]),
		})
	}
	return points
}

// FullVolatility is the annualized volatility of daily returns over the whole
// series, 0 when there are fewer than two returns.
func FullVolatility(s Series) Percent {
	return annualizedVolatility(s.Returns())
}

// annualizedVolatility is the sample standard deviation of daily returns
// scaled by sqrt(252), as a percentage.
func annualizedVolatility(rets []float64) Percent {
	if len(rets) < 2 {
		return 0
	}
	sd := stat.StdDev(rets, nil)
	if math.IsNaN(sd) {
		return 0
	}
	return Percent(sd * math.Sqrt(TradingDays) * 100)
}
