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

type correlationsCmd struct{}

func (*correlationsCmd) Name() string     { return "correlations" }
func (*correlationsCmd) Synopsis() string { return "relate the portfolio to each benchmark" }
func (*correlationsCmd) Usage() string {
	return `fw correlations

  Show correlation, beta and alpha of the portfolio's daily returns against
  each benchmark.
`
}

func (c *correlationsCmd) SetFlags(f *flag.FlagSet) {}

func (c *correlationsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := loadSeries()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	data := fundwatch.CalculateCorrelations(s)
	printMarkdown(renderer.CorrelationsMarkdown(data, s.Benchmarks()))
	return subcommands.ExitSuccess
}
