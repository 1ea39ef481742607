package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/fundwatch"
	"github.com/etnz/fundwatch/agent"
	"github.com/etnz/fundwatch/date"
	"github.com/etnz/fundwatch/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the AI assistant" }
func (*assistCmd) Usage() string {
	return `fw assist [question]

  Start an interactive session with an AI assistant grounded on the
  portfolio's own reports. Requires Gemini API credentials in the
  environment.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	s, err := loadSeries()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	reports := assistReports(s)

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	a := agent.New(os.Stdout, os.Stdin)
	if err := a.Start(ctx, client, reports); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := a.Run(ctx, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// assistReports concatenates every text report, so the assistant sees the
// same numbers the user does.
func assistReports(s fundwatch.Series) string {
	var b strings.Builder
	b.WriteString(renderer.OverviewMarkdown(s, fundwatch.CalculateOverallMetrics(s), *currency))
	b.WriteString("\n")
	b.WriteString(renderer.RiskMarkdown(fundwatch.CalculateRiskMetrics(s), 30, nil))
	b.WriteString("\n")
	b.WriteString(renderer.AnnualMarkdown(
		fundwatch.CalculateAnnualReturns(s),
		date.Monthly,
		fundwatch.BestPeriods(s, date.Monthly, 0),
		fundwatch.WorstPeriods(s, date.Monthly, 0),
	))
	b.WriteString("\n")
	b.WriteString(renderer.CorrelationsMarkdown(fundwatch.CalculateCorrelations(s), s.Benchmarks()))
	return b.String()
}
