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

type reportCmd struct{}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "show the portfolio performance overview" }
func (*reportCmd) Usage() string {
	return `fw report

  Show total and annualized returns, and how the portfolio compares to each
  benchmark in the document.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := loadSeries()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	m := fundwatch.CalculateOverallMetrics(s)
	printMarkdown(renderer.OverviewMarkdown(s, m, *currency))
	return subcommands.ExitSuccess
}
