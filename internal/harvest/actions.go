package harvest

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/dtnitsch/wordharvest/internal/common"
	"github.com/dtnitsch/wordharvest/internal/prompt"
	"github.com/dtnitsch/wordharvest/models"
	"github.com/dtnitsch/wordharvest/pkg/analytics"
	"github.com/dtnitsch/wordharvest/pkg/crawler"
	"github.com/dtnitsch/wordharvest/pkg/fetcher"
	"github.com/dtnitsch/wordharvest/pkg/mapreduce"
	"github.com/dtnitsch/wordharvest/pkg/mutator"
	"github.com/dtnitsch/wordharvest/pkg/presenter"
	"github.com/dtnitsch/wordharvest/pkg/storage"
	"github.com/urfave/cli/v2"
)

// Exit codes returned by the binary.
const (
	ExitOK        = 0
	ExitBadStatus = 1
	ExitFailure   = 2
)

// HarvestAction crawls the seed URL, ranks the words found and presents them.
func HarvestAction(c *cli.Context) error {
	logger := newLogger(c)

	config, err := buildConfig(c)
	if err != nil {
		return err
	}
	format, err := presenter.ParseFormat(config.Format)
	if err != nil {
		return err
	}
	logger.Info("Harvest starting", "url", config.URL, "depth", config.Depth, "min_length", config.MinLength, "passwords", config.Passwords)

	f := fetcher.NewFetcher(
		fetcher.WithTimeout(config.Timeout),
		fetcher.WithUserAgent(config.UserAgent),
	)
	result, err := crawler.New(f, logger).Crawl(c.Context, config.URL, config.Depth)
	if err != nil {
		return err
	}

	opts := analytics.Options{
		MinLength:     config.MinLength,
		SkipStopwords: config.SkipCommon,
	}
	ranked := analytics.Limit(analytics.Rank(mapreduce.Reduce(mapreduce.MapPages(result, opts))), config.Top)
	logger.Info("Ranking complete", "pages", len(result.Pages), "distinct_words", len(ranked), "top_keywords", mapreduce.TopKeywords(ranked, 10))

	report := models.Report{Words: models.Words(ranked)}
	if config.Passwords {
		mutOpts := []mutator.Option{mutator.WithCapitalize(config.Capitalize)}
		if config.Seeded {
			mutOpts = append(mutOpts, mutator.WithSeed(config.Seed))
		}
		report.Passwords = mutator.New(mutOpts...).Mutate(ranked)
	}

	p := presenter.New(c.App.Writer, &storage.Storage{})
	if err := p.Present(report, config.Output, format); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if config.Output != "" {
		logger.Info("Output written", "path", config.Output)
	}
	return nil
}

func newLogger(c *cli.Context) *slog.Logger {
	logLevel := slog.LevelWarn
	if c.Bool("verbose") {
		logLevel = slog.LevelInfo
	}
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(c.App.ErrWriter, &slog.HandlerOptions{Level: logLevel}))
}

// buildConfig collects flags into a HarvestConfig, prompting for the URL and
// depth when they were not given.
func buildConfig(c *cli.Context) (*models.HarvestConfig, error) {
	config := &models.HarvestConfig{
		URL:        c.String("url"),
		Depth:      c.Int("depth"),
		MinLength:  c.Int("length"),
		Top:        c.Int("top"),
		Output:     c.String("output"),
		Format:     c.String("format"),
		Passwords:  c.Bool("passwd"),
		Capitalize: c.Bool("capitalize"),
		SkipCommon: c.Bool("skip-common"),
		Seed:       c.Int64("seed"),
		Seeded:     c.IsSet("seed"),
		Timeout:    c.Duration("timeout"),
		UserAgent:  c.String("user-agent"),
	}

	ask := prompt.New(c.App.Reader, c.App.Writer)
	if !c.IsSet("url") {
		answer, err := ask.String("Web Url")
		if err != nil {
			return nil, fmt.Errorf("no URL given: %w", err)
		}
		config.URL = answer
	}
	if !c.IsSet("depth") {
		depth, err := ask.Int("Depth", 0)
		if err != nil {
			return nil, err
		}
		config.Depth = depth
	}

	seed, err := common.NormalizeURL(config.URL)
	if err != nil {
		return nil, err
	}
	config.URL = seed

	if config.Depth < 0 {
		return nil, fmt.Errorf("depth must be non-negative, got %d", config.Depth)
	}
	if config.MinLength < 0 {
		return nil, fmt.Errorf("length must be non-negative, got %d", config.MinLength)
	}
	if config.Top < 0 {
		return nil, fmt.Errorf("top must be non-negative, got %d", config.Top)
	}
	return config, nil
}

// HandleError reports err and returns the process exit code. A page answering
// with a non-200 status prints the status line on stdout and maps to
// ExitBadStatus; anything else goes to stderr as ExitFailure.
func HandleError(stdout, stderr io.Writer, err error) int {
	if err == nil {
		return ExitOK
	}
	var statusErr *fetcher.StatusError
	if errors.As(err, &statusErr) {
		fmt.Fprintf(stdout, "HTTP status code of %d returned, expected 200...Exiting.\n", statusErr.StatusCode)
		return ExitBadStatus
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return ExitFailure
}
