package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fundwatch"
	"github.com/google/subcommands"
)

type templateCmd struct {
	format string
	output string
}

func (*templateCmd) Name() string     { return "template" }
func (*templateCmd) Synopsis() string { return "write a starter CSV document" }
func (*templateCmd) Usage() string {
	return `fw template [-format full|simple] [-o <file.csv>]

  Write a starter CSV document in the chosen layout, ready to be filled in.
  Without -o the template is printed to stdout.
`
}

func (c *templateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "full", "Template layout: full or simple")
	f.StringVar(&c.output, "o", "", "Output file (stdout when empty)")
}

func (c *templateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var content string
	switch c.format {
	case "full":
		content = fundwatch.TemplateFull()
	case "simple":
		content = fundwatch.TemplateSimple()
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown template format %q\n", c.format)
		return subcommands.ExitFailure
	}

	if c.output == "" {
		fmt.Print(content)
		return subcommands.ExitSuccess
	}
	if err := os.WriteFile(c.output, []byte(content), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Wrote %s template to %s\n", c.format, c.output)
	return subcommands.ExitSuccess
}
