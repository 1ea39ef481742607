package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fundwatch/date"
	"github.com/etnz/fundwatch/indexapi"
	"github.com/etnz/fundwatch/store"
	"github.com/google/subcommands"
)

const eodhdAPIKeyEnv = "EODHD_API_KEY"

type fetchCmd struct {
	apiKey string
	from   string
	to     string
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "fetch benchmark levels into the local database" }
func (*fetchCmd) Usage() string {
	return `fw fetch [-from <date>] [-to <date>] <name=symbol> ...

  Fetch daily benchmark levels from eodhd.com and store them locally, so
  reports can merge them into the portfolio document. Each argument maps a
  benchmark name to an EODHD symbol, e.g. sha=000001.SHG. A bare symbol is
  named after its lowercased ticker.
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.apiKey, "api-key", "", "EODHD API key. If missing, read from the environment variable "+eodhdAPIKeyEnv+". You can get one at https://eodhd.com/")
	f.StringVar(&c.from, "from", "", "First day to fetch (defaults to one year ago)")
	f.StringVar(&c.to, "to", "", "Last day to fetch (defaults to today)")
}

func (c *fetchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: no benchmark to fetch, want name=symbol arguments")
		return subcommands.ExitUsageError
	}
	if c.apiKey == "" {
		c.apiKey = os.Getenv(eodhdAPIKeyEnv)
	}
	if c.apiKey == "" {
		fmt.Fprintf(os.Stderr, "Error: no API key, set -api-key or %s\n", eodhdAPIKeyEnv)
		return subcommands.ExitUsageError
	}

	span := date.NewRange(date.Today().AddYears(-1), date.Today())
	var err error
	if c.from != "" {
		if span.From, err = date.Parse(c.from); err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid -from date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	if c.to != "" {
		if span.To, err = date.Parse(c.to); err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid -to date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	st, err := store.Open(*storeFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer st.Close()

	client := indexapi.NewClient(c.apiKey)
	for _, arg := range f.Args() {
		name, symbol, err := indexapi.ParseSpec(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		h, err := client.Daily(symbol, span)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		if err := st.AppendHistory(name, h); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Stored %d %s levels from %s\n", h.Len(), name, symbol)
	}
	return subcommands.ExitSuccess
}
