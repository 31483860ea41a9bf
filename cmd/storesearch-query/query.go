package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/llehouerou/storesearch/internal/config"
	"github.com/llehouerou/storesearch/internal/itunes"
	"github.com/llehouerou/storesearch/internal/locale"
	"github.com/llehouerou/storesearch/internal/log"
	"github.com/llehouerou/storesearch/internal/session"
)

// errSearchFailed is returned when the search did not succeed. The cause is
// in the log.
var errSearchFailed = errors.New("search failed")

type queryOptions struct {
	term     string
	category itunes.Category
	baseURL  string
	limit    int
	lang     string
	country  string
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:      "storesearch-query",
		Usage:     "Search the iTunes store and print the results",
		ArgsUsage: "term...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "category",
				Usage: "all, music, software or ebooks",
				Value: "all",
			},
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of results (default from config)",
			},
			&cli.StringFlag{
				Name:  "lang",
				Usage: "Language hint, e.g. en_US (default from locale)",
			},
			&cli.StringFlag{
				Name:  "country",
				Usage: "Country hint, e.g. US (default from locale)",
			},
			&cli.StringFlag{
				Name:  "base-url",
				Usage: "Search endpoint host (default from config)",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			term := strings.Join(c.Args().Slice(), " ")
			if strings.TrimSpace(term) == "" {
				return errors.New("missing search term")
			}
			category, err := itunes.ParseCategory(c.String("category"))
			if err != nil {
				return err
			}

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			log.SetGlobalDebug(cfg.Debug || c.Bool("debug"))

			ic := cfg.GetITunesConfig()
			opts := queryOptions{
				term:     term,
				category: category,
				baseURL:  ic.BaseURL,
				limit:    ic.Limit,
				lang:     cfg.Locale.Language,
				country:  cfg.Locale.Country,
			}
			if v := c.String("base-url"); v != "" {
				opts.baseURL = v
			}
			if v := c.Int("limit"); v > 0 {
				opts.limit = v
			}
			if v := c.String("lang"); v != "" {
				opts.lang = v
			}
			if v := c.String("country"); v != "" {
				opts.country = v
			}

			client := itunes.New(
				itunes.WithBaseURL(opts.baseURL),
				itunes.WithTimeout(ic.Timeout()),
				itunes.WithRateLimit(ic.RequestsPerMinute),
			)
			return query(ctx, c.Writer, client, opts)
		},
	}
}

// query runs one search on an event loop and prints the outcome to w.
func query(ctx context.Context, w io.Writer, fetcher session.Fetcher, opts queryOptions) error {
	loop := session.NewLoop()
	defer loop.Close()

	sess := session.New(fetcher, session.Options{
		BaseURL:  opts.baseURL,
		Limit:    opts.limit,
		Locale:   locale.Detect().WithOverrides(opts.lang, opts.country),
		Executor: loop,
	})

	type outcome struct {
		success bool
		state   session.State
	}
	done := make(chan outcome, 1)

	loop.Call(func() {
		sess.PerformSearch(opts.term, opts.category, func(success bool) {
			done <- outcome{success: success, state: sess.State()}
		})
	})

	select {
	case <-ctx.Done():
		loop.Call(sess.Close)
		return ctx.Err()
	case o := <-done:
		if !o.success {
			return errSearchFailed
		}
		return printState(w, o.state)
	}
}

func printState(w io.Writer, s session.State) error {
	if s.Kind() == session.KindNoResults {
		_, err := fmt.Fprintln(w, "No results.")
		return err
	}
	for _, r := range s.Results() {
		if _, err := fmt.Fprintln(w, formatResult(r)); err != nil {
			return err
		}
	}
	return nil
}

func formatResult(r itunes.Result) string {
	details := []string{r.DisplayType()}
	if g := r.Genre(); g != "" {
		details = append(details, g)
	}
	details = append(details, itunes.FormatPrice(r.Price(), r.Currency))
	return fmt.Sprintf("%s — %s (%s)", r.Name(), r.ArtistName, strings.Join(details, ", "))
}
