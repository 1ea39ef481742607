// Package fundwatch implements the analytics engine behind a personal-finance
// dashboard.
//
// The engine consumes a time series of daily portfolio valuations (cumulative
// invested principal and net-asset-value per unit) together with benchmark
// market-index levels, and derives performance analytics: total and annualized
// returns, drawdown curves, rolling volatility, correlation and beta/alpha
// against each benchmark, calendar-bucketed returns, and what-if growth
// projections.
//
// Data flows one way: raw CSV text is parsed into validated daily records
// (ParseCSV), normalized into the canonical Series (Normalize), and then fed
// to pure, stateless computation functions. The engine never mutates its
// input and holds no state across calls, so any Series can be analyzed
// concurrently from multiple goroutines.
//
// "Not enough history yet" is an expected state for a young portfolio:
// computations that need more records than they are given return nil (or an
// empty slice) rather than an error, and numeric edge cases such as a zero
// share value degrade to zero rather than panicking.
package fundwatch
