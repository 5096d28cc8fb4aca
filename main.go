package main

import (
	"fmt"
	"os"

	"github.com/dtnitsch/wiki-fetch/internal/fetch"
	"github.com/dtnitsch/wiki-fetch/internal/history"
	"github.com/urfave/cli/v2"
)

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "YAML config file (defaults to pt.wikipedia.org settings)",
	}
}

func dbFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "db",
		Usage: "fetch history database path (default: next to the binary)",
	}
}

func fetchFlags() []cli.Flag {
	return []cli.Flag{
		configFlag(),
		dbFlag(),
		&cli.StringFlag{
			Name:    "title",
			Aliases: []string{"t"},
			Usage:   "article title, spaces allowed",
		},
		&cli.StringFlag{
			Name:    "url",
			Aliases: []string{"u"},
			Usage:   "full article URL (takes precedence over --title)",
		},
		&cli.IntFlag{
			Name:    "paragraphs",
			Aliases: []string{"n"},
			Value:   0,
			Usage:   "number of paragraphs to return, 0 for all",
		},
		&cli.StringFlag{
			Name:  "format",
			Value: "text",
			Usage: "output format: text or yaml",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "write the result to a file instead of stdout",
		},
		&cli.StringFlag{
			Name:  "locale",
			Usage: "wikipedia language prefix, e.g. pt, en",
		},
		&cli.BoolFlag{
			Name:  "readability",
			Usage: "fall back to readability extraction when the content container is missing",
		},
		&cli.BoolFlag{
			Name:  "detect-language",
			Usage: "detect the language of the extracted text",
		},
		&cli.BoolFlag{
			Name:  "no-history",
			Usage: "don't record this fetch in the history database",
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "only log errors",
		},
	}
}

func main() {
	app := &cli.App{
		Name:      "wikifetch",
		Usage:     "fetch the body text of a Wikipedia article",
		ArgsUsage: "[title words]",
		Flags:     fetchFlags(),
		Action:    fetch.FetchAction,
		Commands: []*cli.Command{
			{
				Name:      "fetch",
				Usage:     "fetch one article (prompts for a query when no title or url is given)",
				ArgsUsage: "[title words]",
				Flags:     fetchFlags(),
				Action:    fetch.FetchAction,
			},
			{
				Name:  "history",
				Usage: "list recorded fetches, most recent first",
				Flags: []cli.Flag{
					configFlag(),
					dbFlag(),
					&cli.IntFlag{
						Name:  "limit",
						Value: 20,
						Usage: "maximum number of fetches to list, 0 for all",
					},
					&cli.BoolFlag{
						Name:  "failed-only",
						Usage: "only list failed fetches",
					},
				},
				Action: history.HistoryAction,
			},
			{
				Name:      "show",
				Usage:     "show one recorded fetch as YAML",
				ArgsUsage: "<fetch-id>",
				Flags:     []cli.Flag{configFlag(), dbFlag()},
				Action:    history.ShowAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
