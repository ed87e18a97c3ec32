// Package harvest wires the crawl, ranking, mutation and presentation steps
// behind the wordharvest command line.
package harvest

import (
	"github.com/dtnitsch/wordharvest/pkg/fetcher"
	"github.com/urfave/cli/v2"
)

// NewApp builds the wordharvest command.
func NewApp() *cli.App {
	return &cli.App{
		Name:      "wordharvest",
		Usage:     "Rank the words of a web page and derive password guesses from them",
		UsageText: "wordharvest --url https://example.com [--depth 2] [--length 5] [--passwd] [--output words.txt]",
		Flags:     Flags(),
		Action:    HarvestAction,
	}
}

// Flags returns the command line flags.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "url",
			Aliases: []string{"u"},
			Usage:   "URL of webpage to extract from (prompted when omitted)",
		},
		&cli.IntFlag{
			Name:    "length",
			Aliases: []string{"l"},
			Value:   0,
			Usage:   "Minimum word length (0 = no limit)",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Save the output to a file instead of stdout",
		},
		&cli.BoolFlag{
			Name:    "passwd",
			Aliases: []string{"p"},
			Usage:   "Add common password mutation to the words fetched",
		},
		&cli.IntFlag{
			Name:    "depth",
			Aliases: []string{"d"},
			Value:   0,
			Usage:   "Number of linked pages to crawl beyond the seed (prompted when omitted)",
		},
		&cli.IntFlag{
			Name:    "top",
			Aliases: []string{"t"},
			Value:   0,
			Usage:   "Only keep the N most frequent words (0 = all)",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Value:   "table",
			Usage:   "Output format: table, json or yaml",
		},
		&cli.BoolFlag{
			Name:  "skip-common",
			Usage: "Skip common English and web UI words",
		},
		&cli.BoolFlag{
			Name:  "capitalize",
			Usage: "Upper-case the first letter of each word before mutating it",
		},
		&cli.Int64Flag{
			Name:  "seed",
			Usage: "Seed for password mutation, for reproducible output",
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Value: fetcher.DefaultTimeout,
			Usage: "Per-request timeout (0 = none)",
		},
		&cli.StringFlag{
			Name:  "user-agent",
			Value: fetcher.DefaultUserAgent,
			Usage: "User-Agent header sent with every request",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "Log progress as JSON on stderr",
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "Only log errors",
		},
	}
}
