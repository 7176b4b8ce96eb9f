package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/simtools/wordsim/internal/config"
)

func configCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Subcommands: []*cli.Command{
			{
				Name:  "init",
				Usage: "Write a starter " + config.KDLFileName,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path",
						Value:   config.KDLFileName,
					},
					&cli.BoolFlag{
						Name:  "force",
						Usage: "Overwrite an existing configuration file",
					},
				},
				Action: configInitAction,
			},
			{
				Name:  "show",
				Usage: "Show the resolved configuration",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config-dir",
						Aliases: []string{"C"},
						Usage:   "Directory searched for " + config.KDLFileName + " / " + config.TOMLFileName,
						Value:   ".",
					},
				},
				Action: configShowAction,
			},
		},
	}
}

func configInitAction(c *cli.Context) error {
	output := c.String("output")
	if !c.Bool("force") {
		if _, err := os.Stat(output); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", output)
		}
	}
	if err := os.WriteFile(output, []byte(config.Template), 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	fmt.Printf("Configuration file created: %s\n", output)
	return nil
}

func configShowAction(c *cli.Context) error {
	cfg, err := config.Load(c.String("config-dir"))
	if err != nil {
		return err
	}

	fmt.Printf("Compare settings:\n")
	fmt.Printf("  Min match:         %.2f%%\n", cfg.Compare.MinMatch)
	fmt.Printf("  Workers:           %d (0 = one per CPU)\n", cfg.Compare.Workers)
	fmt.Printf("  Algorithm:         %s\n", cfg.Compare.Algorithm)
	fmt.Printf("  Stem:              %t\n", cfg.Compare.Stem)
	fmt.Printf("  Stream threshold:  %d words\n", cfg.Compare.StreamThreshold)
	fmt.Printf("\n")
	fmt.Printf("Watch settings:\n")
	fmt.Printf("  Debounce:          %d ms\n", cfg.Watch.DebounceMs)
	return nil
}
