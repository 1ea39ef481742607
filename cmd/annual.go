package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fundwatch"
	"github.com/etnz/fundwatch/date"
	"github.com/etnz/fundwatch/renderer"
	"github.com/google/subcommands"
)

type annualCmd struct {
	period string
	top    int
}

func (*annualCmd) Name() string     { return "annual" }
func (*annualCmd) Synopsis() string { return "show calendar returns and the best and worst periods" }
func (*annualCmd) Usage() string {
	return `fw annual [-p monthly|quarterly|yearly] [-top <k>]

  Show per-year returns, plus the best and worst calendar buckets of the
  chosen period.
`
}

func (c *annualCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "monthly", "Period for best/worst ranking: monthly, quarterly or yearly")
	f.IntVar(&c.top, "top", fundwatch.DefaultTopK, "How many best and worst periods to show")
}

func (c *annualCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := date.ParsePeriod(c.period)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	s, err := loadSeries()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	md := renderer.AnnualMarkdown(
		fundwatch.CalculateAnnualReturns(s),
		p,
		fundwatch.BestPeriods(s, p, c.top),
		fundwatch.WorstPeriods(s, p, c.top),
	)
	printMarkdown(md)
	return subcommands.ExitSuccess
}
