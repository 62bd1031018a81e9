//go:build !tinygo

// Command blockscov measures which sequencer edges a pulse sequence reaches,
// and searches for sequences that reach all of them.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"blocks/tinyboy/cover"
	"blocks/tinyboy/input"
	"blocks/tinyboy/seq"

	"github.com/samber/lo"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

type options struct {
	mode       string
	seed       int64
	pulses     int
	pulseReads int
	rounds     int
	dice       int
	inputs     []string
	verbose    bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	var o options
	fl := pflag.NewFlagSet("blockscov", pflag.ContinueOnError)
	fl.StringVarP(&o.mode, "mode", "m", "looping", "Sequencer mode: linear or looping.")
	fl.Int64Var(&o.seed, "seed", 1, "Random seed for the search.")
	fl.IntVar(&o.pulses, "pulses", 100, "Pulses per generated sequence.")
	fl.IntVar(&o.pulseReads, "pulse-reads", 1, "Button reads per pulse.")
	fl.IntVar(&o.rounds, "rounds", 20, "Search rounds (0 only measures --input).")
	fl.IntVar(&o.dice, "dice", 4, "Die size for each re-rolled pulse.")
	fl.StringArrayVarP(&o.inputs, "input", "i", nil, "Pulse sequence to measure, e.g. _D_R (repeatable).")
	fl.BoolVarP(&o.verbose, "verbose", "v", false, "Log every evaluated sequence.")
	if err := fl.Parse(args); err != nil {
		return err
	}

	mode, err := seq.ParseMode(o.mode)
	if err != nil {
		return err
	}
	seeds := make([]input.Sequence, 0, len(o.inputs))
	for _, s := range o.inputs {
		in, err := input.Parse(s)
		if err != nil {
			return err
		}
		seeds = append(seeds, in)
	}

	log := zap.NewNop()
	if o.verbose {
		if log, err = zap.NewDevelopment(); err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()
	}

	for _, in := range seeds {
		report(out, "input", cover.Run(mode, in, o.pulseReads))
	}
	if o.rounds <= 0 {
		return nil
	}

	g := cover.NewGenerator(cover.GeneratorConfig{
		Mode:       mode,
		Seed:       o.seed,
		Pulses:     o.pulses,
		PulseReads: o.pulseReads,
		Dice:       o.dice,
		OnResult: func(r cover.Result) {
			log.Debug("evaluated",
				zap.Stringer("input", r.Input),
				zap.Int("edges", len(r.Coverage.Covered())),
				zap.Bool("halted", r.Halted))
		},
	})
	g.AddSeeds(seeds...)
	rep := g.Search(o.rounds)

	report(out, "best", rep.Best)
	fmt.Fprintf(out, "search: %d sequences over %d rounds, %.0f%% of edges reached\n",
		rep.Evaluated, rep.Rounds, rep.Total.Percent())
	if missing := rep.Total.Missing(); len(missing) > 0 {
		fmt.Fprintf(out, "missing: %s\n", edgeList(missing))
	}
	return nil
}

func report(out io.Writer, label string, r cover.Result) {
	fmt.Fprintf(out, "%s %s: %.0f%% (%d presses", label, r.Input, r.Coverage.Percent(), r.Input.Presses())
	if r.Halted {
		fmt.Fprint(out, ", halted")
	}
	fmt.Fprintln(out, ")")
	for _, e := range seq.Edges(r.Coverage.Mode()) {
		fmt.Fprintf(out, "  %-28s %d\n", e, r.Coverage.Hits(e))
	}
}

func edgeList(edges []seq.Edge) string {
	return strings.Join(lo.Map(edges, func(e seq.Edge, _ int) string { return e.String() }), ", ")
}
