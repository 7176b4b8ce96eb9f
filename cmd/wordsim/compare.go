package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/simtools/wordsim/internal/config"
	"github.com/simtools/wordsim/internal/matrix"
	"github.com/simtools/wordsim/internal/report"
	"github.com/simtools/wordsim/internal/watch"
	"github.com/simtools/wordsim/internal/wordlist"
)

// compareOptions is the fully resolved input of one comparison run:
// config file values with CLI flag overrides applied, min-match already
// converted from a percentage to a fraction.
type compareOptions struct {
	Input           string
	Output          string
	MinMatch        float64
	Workers         int
	Algorithm       matrix.Algorithm
	Stem            bool
	StreamThreshold int
	Quiet           bool
}

// resolveOptions merges the config file with CLI flags. Flags win, but only
// when actually set on the command line.
func resolveOptions(c *cli.Context) (compareOptions, *config.Config, error) {
	if c.NArg() != 2 {
		return compareOptions{}, nil, errors.New("usage: wordsim [options] INPUT OUTPUT")
	}

	cfg, err := config.Load(c.String("config-dir"))
	if err != nil {
		return compareOptions{}, nil, err
	}
	if c.IsSet("min-match") {
		cfg.Compare.MinMatch = c.Float64("min-match")
	}
	if c.IsSet("workers") {
		cfg.Compare.Workers = c.Int("workers")
	}
	if c.IsSet("algorithm") {
		cfg.Compare.Algorithm = c.String("algorithm")
	}
	if c.IsSet("stem") {
		cfg.Compare.Stem = c.Bool("stem")
	}
	if c.IsSet("stream-threshold") {
		cfg.Compare.StreamThreshold = c.Int("stream-threshold")
	}

	opts := compareOptions{
		Input:           c.Args().Get(0),
		Output:          c.Args().Get(1),
		MinMatch:        cfg.Compare.MinMatch / 100.0,
		Workers:         cfg.Compare.Workers,
		Algorithm:       matrix.Algorithm(cfg.Compare.Algorithm),
		Stem:            cfg.Compare.Stem,
		StreamThreshold: cfg.Compare.StreamThreshold,
		Quiet:           c.Bool("quiet"),
	}
	return opts, cfg, nil
}

func compareAction(c *cli.Context) error {
	opts, _, err := resolveOptions(c)
	if err != nil {
		return err
	}

	start := time.Now()
	n, err := runCompare(c.Context, opts)
	if err != nil {
		return err
	}
	if !opts.Quiet {
		fmt.Printf("%d matching pairs written to %s\n", n, opts.Output)
		fmt.Printf("Time elapsed: %v\n", time.Since(start))
	}
	return nil
}

// runCompare is the whole pipeline: load, compare, filter, sort, write.
// It returns the number of matching pairs written.
func runCompare(ctx context.Context, opts compareOptions) (int, error) {
	metric, err := matrix.NewMetric(opts.Algorithm)
	if err != nil {
		return 0, err
	}

	words, err := wordlist.LoadFile(opts.Input, wordlist.Options{Stem: opts.Stem},
		newObserver("reading words", opts.Quiet))
	if err != nil {
		return 0, err
	}

	engine := matrix.NewEngine(metric, opts.Workers)
	obs := newObserver("comparing", opts.Quiet)

	var pairs []report.Pair
	if opts.StreamThreshold > 0 && len(words) > opts.StreamThreshold {
		pairs, err = report.Stream(ctx, engine, words, opts.MinMatch, obs)
	} else {
		var m *matrix.Matrix
		m, err = engine.Compute(ctx, words, obs)
		if err == nil {
			pairs = report.Collect(m, words, opts.MinMatch)
		}
	}
	if err != nil {
		return 0, err
	}

	report.Sort(pairs)
	if err := report.WriteFile(opts.Output, pairs); err != nil {
		return 0, err
	}
	return len(pairs), nil
}

func watchAction(c *cli.Context) error {
	opts, cfg, err := resolveOptions(c)
	if err != nil {
		return err
	}
	debounce := time.Duration(cfg.Watch.DebounceMs) * time.Millisecond
	if c.IsSet("debounce-ms") {
		debounce = time.Duration(c.Int("debounce-ms")) * time.Millisecond
	}

	run := func() error {
		n, err := runCompare(context.Background(), opts)
		if err != nil {
			return err
		}
		log.Printf("%d matching pairs written to %s", n, opts.Output)
		return nil
	}

	// The initial run fails fast on bad input; later failures only log so a
	// half-saved file does not kill the loop.
	if err := run(); err != nil {
		return err
	}

	w, err := watch.New(opts.Input, debounce, run)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("watching %s (Ctrl-C to stop)", opts.Input)
	return w.Start(ctx)
}
