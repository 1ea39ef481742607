package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fundwatch/renderer"
	"github.com/google/subcommands"
)

type chartCmd struct {
	output string
	kind   string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "render a PNG chart of the portfolio history" }
func (*chartCmd) Usage() string {
	return `fw chart [-kind growth|drawdown] [-o <file.png>]

  Render the indexed growth of the portfolio and its benchmarks, or the
  drawdown curve, as a PNG image.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "kind", "growth", "Chart to render: growth or drawdown")
	f.StringVar(&c.output, "o", "portfolio.png", "Output PNG file")
}

func (c *chartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := loadSeries()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var img []byte
	switch c.kind {
	case "growth":
		img, err = renderer.GrowthChartPNG(s, "Indexed growth (first record = 100)")
	case "drawdown":
		img, err = renderer.DrawdownChartPNG(s, "Drawdown from peak")
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown chart kind %q\n", c.kind)
		return subcommands.ExitFailure
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering chart: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := os.WriteFile(c.output, img, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Wrote %s chart to %s\n", c.kind, c.output)
	return subcommands.ExitSuccess
}
