package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/fundwatch/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// shell completion: a no-op unless invoked by the completion machinery.
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() {
	sub := make(map[string]*complete.Command, len(cmd.Commands))
	for _, c := range cmd.Commands {
		sub[c.Name()] = &complete.Command{}
	}
	fw := &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"csv":      predict.Files("*.csv"),
			"store":    predict.Files("*.db"),
			"currency": predict.Set{"CNY", "USD", "EUR"},
		},
	}
	fw.Complete("fw")
}
