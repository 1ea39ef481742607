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

type projectCmd struct {
	amount float64
	from   string
	rate   float64
}

func (*projectCmd) Name() string     { return "project" }
func (*projectCmd) Synopsis() string { return "replay a what-if lump-sum investment" }
func (*projectCmd) Usage() string {
	return `fw project -amount <value> [-from <date>] [-rate <percent>]

  Grow a hypothetical lump sum from a past date to the end of the history,
  and compare against each benchmark and a fixed-rate deposit.
`
}

func (c *projectCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.amount, "amount", 10000, "Amount to invest")
	f.StringVar(&c.from, "from", "", "Investment date (defaults to the first record)")
	f.Float64Var(&c.rate, "rate", float64(fundwatch.DefaultRiskFreeRate), "Deposit nominal annual rate in percent")
}

func (c *projectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := loadSeries()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	from := s.First().Date
	if c.from != "" {
		from, err = date.Parse(c.from)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid -from date: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	p := fundwatch.ProjectFrom(s, fundwatch.M(c.amount, *currency), from, fundwatch.Percent(c.rate))
	printMarkdown(renderer.ProjectionMarkdown(p, s.Benchmarks()))
	return subcommands.ExitSuccess
}
