package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/storesearch/internal/app"
	"github.com/llehouerou/storesearch/internal/artwork"
	"github.com/llehouerou/storesearch/internal/config"
	"github.com/llehouerou/storesearch/internal/errmsg"
	"github.com/llehouerou/storesearch/internal/history"
	"github.com/llehouerou/storesearch/internal/itunes"
	"github.com/llehouerou/storesearch/internal/locale"
	"github.com/llehouerou/storesearch/internal/log"
	"github.com/llehouerou/storesearch/internal/session"
)

var logger = log.ForService("main")

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// The TUI owns stdout; logs go to a file.
	if f, err := log.OpenFile(); err == nil {
		defer f.Close()
	}
	log.SetGlobalDebug(cfg.Debug)

	ic := cfg.GetITunesConfig()
	loc := locale.Detect().WithOverrides(cfg.Locale.Language, cfg.Locale.Country)
	logger.Infof("starting: base=%s lang=%s country=%s", ic.BaseURL, loc.Language, loc.Country)

	client := itunes.New(
		itunes.WithBaseURL(ic.BaseURL),
		itunes.WithTimeout(ic.Timeout()),
		itunes.WithRateLimit(ic.RequestsPerMinute),
	)
	sess := session.New(client, session.Options{
		BaseURL: ic.BaseURL,
		Limit:   ic.Limit,
		Locale:  loc,
	})
	defer sess.Close()

	deps := app.Deps{Session: sess}

	if cfg.HistoryEnabled() {
		store, err := history.Open(cfg.HistorySize())
		if err != nil {
			logger.Warnf("%s", errmsg.Format(errmsg.OpInitialize, err))
		} else {
			defer store.Close()
			deps.History = store
		}
	}

	if cfg.ArtworkEnabled() {
		cache, err := artwork.NewCache(cfg.Artwork.CacheDir)
		if err != nil {
			logger.Warnf("artwork cache disabled: %v", err)
		}
		// Artwork has its own client so thumbnails never eat into the search
		// rate limit.
		images := itunes.New(itunes.WithTimeout(ic.Timeout()), itunes.WithRateLimit(0))
		deps.Artwork = artwork.NewLoader(images, cache, artwork.Detect())
	}

	p := tea.NewProgram(app.New(deps), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
