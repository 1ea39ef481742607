// Package renderer turns analysis results into markdown reports and PNG
// charts. It holds no computation of its own: every figure comes in already
// calculated.
package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/fundwatch"
	"github.com/etnz/fundwatch/date"
)

// OverviewMarkdown renders the headline performance report.
func OverviewMarkdown(s fundwatch.Series, m *fundwatch.MetricsResult, currency string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Portfolio Overview from %s to %s\n\n", s.First().Date, s.Last().Date)
	if m == nil {
		fmt.Fprintln(&b, "Not enough history to compute returns: at least two records are needed.")
		return b.String()
	}

	fmt.Fprint(&b, "## Performance\n\n")
	fmt.Fprintln(&b, "| Metric | Value |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Invested Principal | %s |\n", fundwatch.NewMoney(m.Principal, currency))
	fmt.Fprintf(&b, "| Share Value | %.4f |\n", m.CurrentValue)
	fmt.Fprintf(&b, "| History | %.1f years |\n", m.Years)
	fmt.Fprintf(&b, "| Total Return | %s |\n", m.TotalReturn.SignedString())
	fmt.Fprintf(&b, "| Annualized Return | %s |\n", m.AnnualizedReturn.SignedString())

	if len(m.Benchmarks) > 0 {
		fmt.Fprint(&b, "\n## Against Benchmarks\n\n")
		fmt.Fprintln(&b, "| Benchmark | Annualized | Fund vs. Benchmark |")
		fmt.Fprintln(&b, "|:---|---:|---:|")
		for _, name := range s.Benchmarks() {
			br, ok := m.Benchmarks[name]
			if !ok {
				continue
			}
			fmt.Fprintf(&b, "| %s | %s | %s |\n",
				name, br.SignedString(), (m.AnnualizedReturn - br).SignedString())
		}
		fmt.Fprintf(&b, "| **%s** | | **%s** |\n", "Average", m.Outperformance.SignedString())
	}
	return b.String()
}

// RiskMarkdown renders the risk report: full-period figures plus the tail of
// the rolling volatility series when one is available.
func RiskMarkdown(r *fundwatch.RiskMetrics, window int, rolling []fundwatch.VolatilityPoint) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Risk Report\n\n")
	if r == nil {
		fmt.Fprintln(&b, "Not enough history to compute risk figures: at least three records are needed.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Metric | Value |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Annualized Volatility | %s |\n", r.Volatility)
	fmt.Fprintf(&b, "| Sharpe Ratio | %.2f |\n", r.Sharpe)
	fmt.Fprintf(&b, "| Sortino Ratio | %.2f |\n", r.Sortino)
	fmt.Fprintf(&b, "| Max Drawdown | %s |\n", r.MaxDrawdown.SignedString())
	fmt.Fprintf(&b, "| Current Drawdown | %s |\n", r.CurrentDrawdown.SignedString())
	fmt.Fprintf(&b, "| Average Drawdown | %s |\n", r.AverageDrawdown.SignedString())
	fmt.Fprintf(&b, "| Time in Drawdown | %.0f%% |\n", r.TimeInDrawdown*100)

	if len(rolling) > 0 {
		fmt.Fprintf(&b, "\n## Rolling %d-day Volatility\n\n", window)
		fmt.Fprintln(&b, "| Date | Volatility |")
		fmt.Fprintln(&b, "|:---|---:|")
		tail := rolling
		if len(tail) > 10 {
			tail = tail[len(tail)-10:]
		}
		for _, p := range tail {
			fmt.Fprintf(&b, "| %s | %s |\n", p.Date, p.Volatility)
		}
	}
	return b.String()
}

// AnnualMarkdown renders per-year returns plus the best and worst buckets of
// the chosen period.
func AnnualMarkdown(years []fundwatch.AnnualReturn, p date.Period, best, worst []fundwatch.PeriodReturn) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Calendar Returns\n\n")
	if len(years) == 0 {
		fmt.Fprintln(&b, "No calendar year holds enough records to compute a return.")
	} else {
		fmt.Fprintln(&b, "| Year | Return |")
		fmt.Fprintln(&b, "|:---|---:|")
		for _, y := range years {
			fmt.Fprintf(&b, "| %d | %s |\n", y.Year, y.Return.SignedString())
		}
	}

	writeRank := func(title string, ranked []fundwatch.PeriodReturn) {
		if len(ranked) == 0 {
			return
		}
		fmt.Fprintf(&b, "\n## %s (%s)\n\n", title, p)
		fmt.Fprintln(&b, "| Period | Return | Records |")
		fmt.Fprintln(&b, "|:---|---:|---:|")
		for _, r := range ranked {
			fmt.Fprintf(&b, "| %s | %s | %d |\n", r.Key, r.Return.SignedString(), r.Records)
		}
	}
	writeRank("Best Periods", best)
	writeRank("Worst Periods", worst)
	return b.String()
}

// CorrelationsMarkdown renders the per-benchmark relation table.
func CorrelationsMarkdown(data fundwatch.CorrelationData, names []string) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Benchmark Relations\n\n")
	if len(data) == 0 {
		fmt.Fprintln(&b, "No benchmark holds enough aligned observations to relate to.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Benchmark | Correlation | Beta | Alpha |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|")
	for _, name := range names {
		rel, ok := data[name]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "| %s | %.2f | %.2f | %s |\n",
			name, rel.Correlation, rel.Beta, rel.Alpha.SignedString())
	}
	return b.String()
}

// ProjectionMarkdown renders the what-if comparison of a past lump-sum
// investment across the fund, each benchmark and a fixed-rate deposit.
func ProjectionMarkdown(p *fundwatch.Projection, names []string) string {
	var b strings.Builder

	fmt.Fprint(&b, "# What-if Projection\n\n")
	if p == nil {
		fmt.Fprintln(&b, "No projection: the amount must be positive and the start date must leave at least one later record.")
		return b.String()
	}

	fmt.Fprintf(&b, "%s invested on %s, held %.1f years until %s:\n\n",
		p.Amount, p.Start, p.Years, p.End)
	fmt.Fprintln(&b, "| Alternative | End Value | Gain |")
	fmt.Fprintln(&b, "|:---|---:|---:|")
	fmt.Fprintf(&b, "| Fund | %s | %s |\n", p.Fund, p.Fund.Sub(p.Amount).SignedString())
	for _, name := range names {
		alt, ok := p.Benchmarks[name]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "| %s | %s | %s |\n", name, alt, alt.Sub(p.Amount).SignedString())
	}
	fmt.Fprintf(&b, "| Deposit at %s | %s | %s |\n",
		p.Rate, p.Deposit, p.Deposit.Sub(p.Amount).SignedString())
	return b.String()
}
