// SPDX-License-Identifier: MIT

// Command pqbench times Dijkstra's algorithm with the binary-heap and
// linear-array priority queues on seeded random digraphs of growing size.
//
// Usage:
//
//	pqbench [-min 10] [-max 1000] [-step 100] [-trials 50] [-p 1.0]
//	        [-max-weight 1000] [-seed 17] [-source 0]
//	        [-backends min-heap,queue] [-workers 1]
//	        [-output console|file] [-out results.txt] [-selftest]
//
// With -selftest it prints the CLRS Figure 24.6 graph and the distances
// from vertex 0 under each backend, then exits non-zero if they disagree.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/katalvlaran/pqdijkstra/bench"
	"github.com/katalvlaran/pqdijkstra/pq"
	"github.com/katalvlaran/pqdijkstra/report"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("pqbench: ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatalf("%v", err)
	}
}

// options is the parsed command line.
type options struct {
	cfg      bench.Config
	mode     report.Mode
	outPath  string
	selftest bool
}

// parseArgs turns args into options. Configuration errors are returned
// before any work starts.
func parseArgs(args []string, stderr io.Writer) (options, error) {
	opt := options{cfg: bench.DefaultConfig()}
	fs := flag.NewFlagSet("pqbench", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.Int64Var(&opt.cfg.Seed, "seed", bench.DefaultSeed, "base random seed")
	fs.IntVar(&opt.cfg.MinVertices, "min", bench.DefaultMinVertices, "smallest graph size")
	fs.IntVar(&opt.cfg.MaxVertices, "max", bench.DefaultMaxVertices, "largest graph size")
	fs.IntVar(&opt.cfg.Step, "step", bench.DefaultStep, "graph size increment")
	fs.IntVar(&opt.cfg.Trials, "trials", bench.DefaultTrials, "graphs per size")
	fs.IntVar(&opt.cfg.Source, "source", bench.DefaultSource, "source vertex")
	fs.Float64Var(&opt.cfg.EdgeProbability, "p", bench.DefaultEdgeProbability, "arc probability in [0,1]")
	fs.Int64Var(&opt.cfg.MaxWeight, "max-weight", bench.DefaultMaxWeight, "weights are drawn from [0,max-weight)")
	fs.IntVar(&opt.cfg.Workers, "workers", bench.DefaultWorkers, "concurrent graph generators")
	backends := fs.String("backends", "min-heap,queue", "comma-separated priority queues to time")
	output := fs.String("output", report.ModeConsole.String(), "output layout: console or file")
	fs.StringVar(&opt.outPath, "out", "results.txt", "output path when -output=file")
	fs.BoolVar(&opt.selftest, "selftest", false, "check both backends on the CLRS example and exit")

	if err := fs.Parse(args); err != nil {
		return opt, err
	}
	if fs.NArg() > 0 {
		return opt, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	opt.cfg.Backends = opt.cfg.Backends[:0]
	for _, name := range strings.Split(*backends, ",") {
		k, err := pq.ParseKind(strings.TrimSpace(name))
		if err != nil {
			return opt, err
		}
		opt.cfg.Backends = append(opt.cfg.Backends, k)
	}

	mode, err := report.ParseMode(*output)
	if err != nil {
		return opt, err
	}
	opt.mode = mode

	return opt, opt.cfg.Validate()
}

// run executes the command. Console output goes to stdout; file output to opt.outPath.
func run(ctx context.Context, args []string, stdout io.Writer) (err error) {
	opt, err := parseArgs(args, os.Stderr)
	if err != nil {
		return err
	}
	if opt.selftest {
		return selfTest(stdout)
	}

	out := stdout
	if opt.mode == report.ModeFile {
		var f *os.File
		if f, err = os.Create(opt.outPath); err != nil {
			return fmt.Errorf("open output: %w", err)
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		out = f
		log.Printf("writing results to %s", opt.outPath)
	}

	w := report.NewWriter(out, opt.mode, opt.cfg.Backends)
	w.WriteHeader()
	_, err = bench.Run(ctx, opt.cfg, bench.WithProgress(func(r bench.Row) {
		w.WriteRow(r)
		// Flush per row so long sweeps show progress.
		_ = w.Flush()
	}))
	if err != nil {
		return err
	}
	w.WriteFooter()

	return w.Flush()
}
