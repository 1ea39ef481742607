// Package cmd implements the CLI application to analyze a portfolio document.
package cmd

import (
	"flag"
	"fmt"
	"log"
	"maps"
	"os"

	"github.com/etnz/fundwatch"
	"github.com/etnz/fundwatch/date"
	"github.com/etnz/fundwatch/store"
	"github.com/google/subcommands"
)

// Commands is the list of subcommands a main package registers.
var Commands = []subcommands.Command{
	&reportCmd{},
	&riskCmd{},
	&annualCmd{},
	&correlationsCmd{},
	&projectCmd{},
	&chartCmd{},
	&templateCmd{},
	&fetchCmd{},
	&assistCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

var csvFile = flag.String("csv", "portfolio.csv", "Path to the portfolio CSV document")
var storeFile = flag.String("store", "benchmarks.db", "Path to the benchmark level database")
var currency = flag.String("currency", "CNY", "Currency code used to format monetary amounts")

// loadSeries parses the portfolio document, reports malformed rows as
// warnings, merges stored benchmark levels, and normalizes the result.
func loadSeries() (fundwatch.Series, error) {
	f, err := os.Open(*csvFile)
	if err != nil {
		return nil, fmt.Errorf("opening portfolio document: %w", err)
	}
	defer f.Close()

	records, rowErrs, err := fundwatch.ParseCSV(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", *csvFile, err)
	}
	for _, e := range rowErrs {
		log.Printf("warning: %s: %s", *csvFile, e)
	}
	s := fundwatch.Normalize(records)
	if s.Len() == 0 {
		return nil, fmt.Errorf("%q holds no valid records", *csvFile)
	}
	return mergeStoredBenchmarks(s), nil
}

// mergeStoredBenchmarks fills benchmark levels from the local database into
// records that do not carry them already. Document cells win over stored
// levels. A missing database is not an error: the document stands alone.
func mergeStoredBenchmarks(s fundwatch.Series) fundwatch.Series {
	if _, err := os.Stat(*storeFile); err != nil {
		return s
	}
	st, err := store.Open(*storeFile)
	if err != nil {
		log.Printf("warning: %v", err)
		return s
	}
	defer st.Close()

	names, err := st.Benchmarks()
	if err != nil {
		log.Printf("warning: %v", err)
		return s
	}

	span := date.NewRange(s.First().Date, s.Last().Date)
	merged := make([]fundwatch.DailyRecord, s.Len())
	copy(merged, s)
	for i := range merged {
		merged[i].Benchmarks = maps.Clone(merged[i].Benchmarks)
	}
	for _, name := range names {
		h, err := st.History(name, span)
		if err != nil {
			log.Printf("warning: %v", err)
			continue
		}
		for i := range merged {
			if _, ok := merged[i].Benchmarks[name]; ok {
				continue
			}
			level, ok := h.Get(merged[i].Date)
			if !ok {
				continue
			}
			if merged[i].Benchmarks == nil {
				merged[i].Benchmarks = make(map[string]float64)
			}
			merged[i].Benchmarks[name] = level
		}
	}
	// normalize again so merged levels are forward filled like native ones
	return fundwatch.Normalize(merged)
}
