package fundwatch

import "math"

// DefaultRiskFreeRate is the flat nominal annual rate used as the excess
// baseline in risk-adjusted ratios and as the deposit alternative in
// projections. It is an assumption, not a fitted parameter.
const DefaultRiskFreeRate = Percent(2.5)

// RiskMetrics aggregates the risk figures of the dashboard.
type RiskMetrics struct {
	Volatility      Percent // full-period annualized volatility of daily returns
	Sharpe          float64 // (annualized return - risk-free) / volatility
	Sortino         float64 // same numerator over downside deviation only
	MaxDrawdown     Percent
	CurrentDrawdown Percent
	AverageDrawdown Percent
	TimeInDrawdown  float64
}

// CalculateRiskMetrics computes volatility, risk-adjusted ratios and drawdown
// statistics for a series, using DefaultRiskFreeRate as the excess baseline.
// It returns nil when the series holds fewer than three records, the minimum
// for a meaningful deviation of returns.
func CalculateRiskMetrics(s Series) *RiskMetrics {
	return CalculateRiskMetricsRate(s, DefaultRiskFreeRate)
}

// CalculateRiskMetricsRate is CalculateRiskMetrics with an explicit risk-free
// rate.
func CalculateRiskMetricsRate(s Series, riskFree Percent) *RiskMetrics {
	if s.Len() < 3 {
		return nil
	}
	overall := CalculateOverallMetrics(s)
	dd := CalculateDrawdownStats(s)
	if overall == nil || dd == nil {
		return nil
	}

	r := &RiskMetrics{
		Volatility:      FullVolatility(s),
		MaxDrawdown:     dd.Max,
		CurrentDrawdown: dd.Current,
		AverageDrawdown: dd.Average,
		TimeInDrawdown:  dd.TimeInDrawdown,
	}
	excess := float64(overall.AnnualizedReturn - riskFree)
	if r.Volatility > 0 {
		r.Sharpe = excess / float64(r.Volatility)
	}
	if downside := downsideDeviation(s.Returns()); downside > 0 {
		r.Sortino = excess / float64(downside)
	}
	return r
}

// downsideDeviation is the annualized deviation of daily returns below zero:
// positive days count as zero shortfall, so only losses contribute.
func downsideDeviation(rets []float64) Percent {
	if len(rets) < 2 {
		return 0
	}
	shortfalls := make([]float64, len(rets))
	for i, ret := range rets {
		if ret < 0 {
			shortfalls[i] = ret
		}
	}
	// Mean of squared shortfalls, not the sample variance: the target (zero)
	// is fixed, not estimated.
	var sum float64
	for _, v := range shortfalls {
		sum += v * v
	}
	sd := math.Sqrt(sum / float64(len(shortfalls)))
	if sd == 0 || math.IsNaN(sd) {
		return 0
	}
	return Percent(sd * math.Sqrt(TradingDays) * 100)
}
