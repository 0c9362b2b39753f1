package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/name-atlas/internal/history"
	"github.com/dtnitsch/name-atlas/internal/run"
)

func main() {
	app := &cli.App{
		Name:  "nameatlas",
		Usage: "scrape per-country surname/forename counts and render a choropleth world map",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: "config.yaml",
				Usage: "path to an optional YAML config overlaying the defaults",
			},
			&cli.BoolFlag{
				Name:  "force-fetch",
				Usage: "scrape even when a cache file is present",
			},
			&cli.BoolFlag{
				Name:  "quiet",
				Usage: "only log errors",
			},
		},
		Action: run.Action,
		Commands: []*cli.Command{
			{
				Name:  "runs",
				Usage: "list past pipeline runs",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "config",
						Value: "config.yaml",
						Usage: "path to an optional YAML config overlaying the defaults",
					},
					&cli.IntFlag{
						Name:  "limit",
						Value: 20,
						Usage: "maximum number of runs to show",
					},
				},
				Action: history.RunsAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
