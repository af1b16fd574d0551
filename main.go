// ABOUTME: Entry point for rankcraft
// ABOUTME: Handles command-line parsing, profiling, and routing to the rank and view commands

// Package main provides the entry point for rankcraft, a win/loss ranking
// optimizer built on simulated annealing and sliding local search.
package main

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/urfave/cli/v2"

	"github.com/stojg/rankcraft/internal/config"
	"github.com/stojg/rankcraft/internal/debuglog"
	"github.com/stojg/rankcraft/internal/games"
	"github.com/stojg/rankcraft/internal/ranking"
	"github.com/stojg/rankcraft/internal/render"
	"github.com/stojg/rankcraft/internal/tui"
)

func main() {
	os.Exit(run())
}

func run() int {
	app := &cli.App{
		Name:  "rankcraft",
		Usage: "compute a consistency-optimal ranking from win/loss game records",
		Commands: []*cli.Command{
			rankCommand,
			viewCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Printf("rankcraft error: %v", err)
		return 1
	}

	return 0
}

var rankCommand = &cli.Command{
	Name:      "rank",
	Usage:     "optimize a ranking from a games file",
	ArgsUsage: "<games.json>",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "path to a TOML parameters file (default: internal/config.GetConfigPath's search order)"},
		&cli.StringFlag{Name: "filter", Aliases: []string{"f"}, Usage: "path to a JSON array of competitors to restrict the final ranking to"},
		&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "write the result JSON here instead of stdout"},
		&cli.StringFlag{Name: "format", Value: "json", Usage: "stdout rendering when --output is not set: json, table, or csv"},
		&cli.StringFlag{Name: "cpuprofile", Usage: "write a CPU profile to this file"},
		&cli.StringFlag{Name: "memprofile", Usage: "write a memory profile to this file"},
		&cli.BoolFlag{Name: "debug", Usage: "enable debug logging to rankcraft-debug.log"},
		&cli.BoolFlag{Name: "progress", Usage: "print a line per annealing checkpoint as the search runs"},
	},
	Action: func(c *cli.Context) error {
		if c.Args().Len() != 1 {
			return fmt.Errorf("expected exactly one argument: a games.json path")
		}
		gamesPath := c.Args().First()

		if c.Bool("debug") {
			if err := debuglog.Init("rankcraft-debug.log"); err != nil {
				return fmt.Errorf("failed to set up debug log: %w", err)
			}
		}

		if c.String("cpuprofile") != "" {
			stop, err := startCPUProfile(c.String("cpuprofile"))
			if err != nil {
				return err
			}
			defer stop()
		}
		if c.String("memprofile") != "" {
			defer writeMemoryProfile(c.String("memprofile"))
		}

		configPath := c.String("config")
		if configPath == "" {
			configPath = config.GetConfigPath()
		}
		params, err := config.Load(configPath)
		if err != nil {
			return err
		}

		gameList, err := games.ReadGames(gamesPath)
		if err != nil {
			return err
		}

		var filter []string
		if c.String("filter") != "" {
			filter, err = games.ReadFilter(c.String("filter"))
			if err != nil {
				return err
			}
		}

		var result ranking.Result
		if c.Bool("progress") {
			reporter := newProgressReporter()
			result = ranking.RunWithProgress(gameList, params, filter, reporter.report)
		} else {
			result = ranking.Run(gameList, params, filter)
		}

		if c.String("output") != "" {
			return games.WriteResult(c.String("output"), result)
		}

		switch c.String("format") {
		case "table":
			render.Table(os.Stdout, result)
			return nil
		case "csv":
			return render.CSV(os.Stdout, result)
		default:
			return games.EncodeResult(os.Stdout, result)
		}
	},
}

var viewCommand = &cli.Command{
	Name:      "view",
	Usage:     "interactively watch a result JSON file for changes and browse it",
	ArgsUsage: "<result.json>",
	Flags: []cli.Flag{
		&cli.BoolFlag{Name: "debug", Usage: "enable debug logging to rankcraft-debug.log"},
	},
	Action: func(c *cli.Context) error {
		if c.Args().Len() != 1 {
			return fmt.Errorf("expected exactly one argument: a result.json path")
		}

		if c.Bool("debug") {
			if err := debuglog.Init("rankcraft-debug.log"); err != nil {
				return fmt.Errorf("failed to set up debug log: %w", err)
			}
		}

		return tui.Run(c.Args().First())
	},
}

func startCPUProfile(filename string) (func(), error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("could not create CPU profile: %w", err)
	}

	if err := pprof.StartCPUProfile(f); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("could not start CPU profile: %w", err)
	}

	return func() {
		pprof.StopCPUProfile()
		if err := f.Close(); err != nil {
			log.Printf("warning: failed to close CPU profile: %v", err)
		}
	}, nil
}

func writeMemoryProfile(filename string) {
	f, err := os.Create(filename)
	if err != nil {
		log.Printf("could not create memory profile: %v", err)
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("warning: failed to close memory profile: %v", err)
		}
	}()

	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		log.Printf("could not write memory profile: %v", err)
	}
}
