package fundwatch

import (
	"gonum.org/v1/gonum/stat"
)

// BenchmarkRelation is the single-factor decomposition of portfolio returns
// against one benchmark: how tightly the portfolio tracks it (correlation),
// how much it amplifies its moves (beta), and what is left over once the
// benchmark-driven part is removed (alpha).
type BenchmarkRelation struct {
	Correlation float64 // Pearson correlation of daily returns
	Beta        float64 // covariance(portfolio, benchmark) / variance(benchmark)
	Alpha       Percent // annualized return minus beta times benchmark annualized return
}

// CorrelationData maps each benchmark name to its relation with the
// portfolio.
type CorrelationData map[string]BenchmarkRelation

// CalculateCorrelations computes the relation of the portfolio's daily
// returns to each benchmark's. Benchmarks with fewer than three aligned
// observations, or with zero return variance, are omitted from the result.
// The risk-free rate is not fitted here; projections carry it as a separate
// additive constant.
func CalculateCorrelations(s Series) CorrelationData {
	data := make(CorrelationData)
	if s.Len() < 3 {
		return data
	}
	overall := CalculateOverallMetrics(s)
	if overall == nil {
		return data
	}
	for _, name := range s.Benchmarks() {
		port, bench := alignedReturns(s, name)
		if len(port) < 2 {
			continue
		}
		variance := stat.Variance(bench, nil)
		if variance == 0 {
			continue
		}
		beta := stat.Covariance(port, bench, nil) / variance
		rel := BenchmarkRelation{
			Correlation: stat.Correlation(port, bench, nil),
			Beta:        beta,
		}
		if br, ok := overall.Benchmarks[name]; ok {
			rel.Alpha = overall.AnnualizedReturn - Percent(beta*float64(br))
		}
		data[name] = rel
	}
	return data
}

// alignedReturns collects the portfolio's and one benchmark's daily returns
// over the consecutive record pairs where the benchmark is present on both
// days. After normalization a forward-filled day contributes a zero benchmark
// return, which is the intended reading: a market holiday is not volatility.
func alignedReturns(s Series, name string) (port, bench []float64) {
	for i := 1; i < s.Len(); i++ {
		prevLevel, okPrev := s[i-1].Benchmark(name)
		level, okCur := s[i].Benchmark(name)
		if !okPrev || !okCur || prevLevel <= 0 || s[i-1].ShareValue <= 0 {
			continue
		}
		port = append(port, s[i].ShareValue/s[i-1].ShareValue-1)
		bench = append(bench, level/prevLevel-1)
	}
	return port, bench
}
