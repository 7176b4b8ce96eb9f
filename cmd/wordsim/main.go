package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/simtools/wordsim/internal/version"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:                   "wordsim",
		Usage:                  "Calculates similarity percentages between word pairs",
		Version:                version.Version,
		UseShortOptionHandling: true,
		ArgsUsage:              "INPUT OUTPUT",
		Flags:                  compareFlags(),
		Action:                 compareAction,
		Commands: []*cli.Command{
			{
				Name:      "compare",
				Usage:     "Compare all word pairs and write the similarity report (the default command)",
				ArgsUsage: "INPUT OUTPUT",
				Flags:     compareFlags(),
				Action:    compareAction,
			},
			{
				Name:      "watch",
				Usage:     "Recompute the report whenever the input file changes",
				ArgsUsage: "INPUT OUTPUT",
				Flags: append(compareFlags(), &cli.IntFlag{
					Name:  "debounce-ms",
					Usage: "Quiet period after the last change before recomputing",
				}),
				Action: watchAction,
			},
			configCommand(),
		},
	}
}

func compareFlags() []cli.Flag {
	return []cli.Flag{
		&cli.Float64Flag{
			Name:    "min-match",
			Aliases: []string{"m"},
			Usage:   "Minimum match percentage to report",
			Value:   80,
		},
		&cli.IntFlag{
			Name:  "workers",
			Usage: "Comparison workers (0 = one per CPU)",
		},
		&cli.StringFlag{
			Name:    "algorithm",
			Aliases: []string{"a"},
			Usage:   "Similarity algorithm: levenshtein, damerau-levenshtein, jaro, jaro-winkler, cosine",
		},
		&cli.BoolFlag{
			Name:  "stem",
			Usage: "Porter2-stem tokens before comparing",
		},
		&cli.IntFlag{
			Name:  "stream-threshold",
			Usage: "Stream filtered pairs row by row above this many words (0 = never)",
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "Suppress progress bars and the summary line",
		},
		&cli.StringFlag{
			Name:    "config-dir",
			Aliases: []string{"C"},
			Usage:   "Directory searched for .wordsim.kdl / wordsim.toml",
			Value:   ".",
		},
	}
}
