package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fundwatch"
	"github.com/etnz/fundwatch/renderer"
	"github.com/google/subcommands"
)

type riskCmd struct {
	window   int
	riskFree float64
}

func (*riskCmd) Name() string     { return "risk" }
func (*riskCmd) Synopsis() string { return "show volatility, drawdowns and risk-adjusted ratios" }
func (*riskCmd) Usage() string {
	return `fw risk [-window <days>] [-risk-free <rate>]

  Show annualized volatility, Sharpe and Sortino ratios, drawdown statistics,
  and the tail of the rolling volatility series.
`
}

func (c *riskCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.window, "window", 30, "Rolling volatility window in trading days (30, 60 or 90)")
	f.Float64Var(&c.riskFree, "risk-free", float64(fundwatch.DefaultRiskFreeRate), "Risk-free annual rate in percent")
}

func (c *riskCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := loadSeries()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	r := fundwatch.CalculateRiskMetricsRate(s, fundwatch.Percent(c.riskFree))
	rolling := fundwatch.RollingVolatility(s, c.window)
	printMarkdown(renderer.RiskMarkdown(r, c.window, rolling))
	return subcommands.ExitSuccess
}
