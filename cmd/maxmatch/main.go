// maxmatch reads a graph from a file (or stdin), computes a
// maximum-cardinality matching and prints the matched pairs, the
// cardinality, a validation verdict and the solve time.
//
// Usage:
//
//	maxmatch [--algo=phased|single] [--bootstrap=none|index|degree] [--quiet] [FILE]
//
// Exit status is 0 on success and 1 on a malformed input or a failed
// validation.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jessevdk/go-flags"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/maxmatch/core"
	"github.com/katalvlaran/maxmatch/graphio"
	"github.com/katalvlaran/maxmatch/matching"
)

// Config is parsed from flags and environment by go-flags.
var Config = new(struct {
	Algo      string `long:"algo" env:"MAXMATCH_ALGO" default:"phased" choice:"phased" choice:"single" description:"Solver variant"`
	Bootstrap string `long:"bootstrap" env:"MAXMATCH_BOOTSTRAP" default:"index" choice:"none" choice:"index" choice:"degree" description:"Greedy seeding mode"`
	Quiet     bool   `long:"quiet" short:"q" description:"Suppress the matched-pair listing, print the summary only"`
	Verbose   bool   `long:"verbose" short:"v" description:"Log per-phase progress to stderr"`

	Args struct {
		File string `positional-arg-name:"FILE" description:"Input graph ('-' or empty for stdin)"`
	} `positional-args:"yes"`
})

var bootstrapModes = map[string]matching.BootstrapMode{
	"none":   matching.BootstrapNone,
	"index":  matching.BootstrapIndex,
	"degree": matching.BootstrapDegree,
}

func main() {
	parser := flags.NewParser(Config, flags.Default)
	parser.LongDescription = `Computes a maximum-cardinality matching of a general undirected graph.
The input is a "<n> <m>" header line followed by m "u v" edge lines.`

	if _, err := parser.Parse(); err != nil {
		os.Exit(1)
	}
	log.SetOutput(os.Stderr)

	if err := run(); err != nil {
		log.WithField("err", err).Error("maxmatch failed")
		os.Exit(1)
	}
}

func run() error {
	g, err := readGraph(Config.Args.File)
	if err != nil {
		return fmt.Errorf("cannot parse input: %w", err)
	}
	log.WithFields(log.Fields{
		"vertices": g.VertexCount(),
		"edges":    g.EdgeCount(),
		"algo":     Config.Algo,
	}).Info("graph loaded")

	opts := []matching.Option{matching.WithBootstrap(bootstrapModes[Config.Bootstrap])}
	if Config.Verbose {
		opts = append(opts, matching.WithOnPhase(func(phase, matched int) {
			log.WithFields(log.Fields{"phase": phase, "matched": matched}).Info("phase complete")
		}))
	}

	solve := matching.Phased
	if Config.Algo == "single" {
		solve = matching.SinglePath
	}

	// Time the solve only; parsing and printing are excluded.
	start := time.Now()
	res, err := solve(g, opts...)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	return report(os.Stdout, g, res, elapsed)
}

// readGraph opens the named file, or falls through to stdin.
func readGraph(path string) (*core.Graph, error) {
	if path == "" || path == "-" {
		return graphio.Read(os.Stdin)
	}

	return graphio.ReadFile(path)
}

// report prints the pair listing, summary and validation verdict. A
// failed validation renders the full diagnostic report and is an error.
func report(w io.Writer, g *core.Graph, res *matching.Result, elapsed time.Duration) error {
	if !Config.Quiet {
		if err := graphio.WritePairs(w, res.Matching); err != nil {
			return err
		}
	}

	rep := matching.Validate(g, res.Matching)
	fmt.Fprintf(w, "Matching size: %d\n", res.Matching.Size())
	if rep.OK() {
		fmt.Fprintln(w, rep.Verdict())
	} else {
		fmt.Fprintln(w, rep)
	}
	fmt.Fprintf(w, "Time: %d ms\n", elapsed.Milliseconds())

	log.WithFields(log.Fields{
		"size":          res.Matching.Size(),
		"phases":        res.Phases,
		"augmentations": res.Augmentations,
		"elapsed":       elapsed,
	}).Info("solve finished")

	if !rep.OK() {
		return fmt.Errorf("validation failed: %d bad edges, %d conflicted vertices",
			len(rep.BadEdges), len(rep.Conflicted))
	}

	return nil
}
