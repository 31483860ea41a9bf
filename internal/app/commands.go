package app

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/storesearch/internal/history"
	"github.com/llehouerou/storesearch/internal/itunes"
	"github.com/llehouerou/storesearch/internal/session"
)

const historyTimeout = 5 * time.Second

// runSearchCmd runs req off the update loop and reports back with
// SearchDoneMsg.
func runSearchCmd(req *session.Request) tea.Cmd {
	return func() tea.Msg {
		return SearchDoneMsg{Req: req, Outcome: req.Run()}
	}
}

func saveHistoryCmd(store *history.Store, query string, category itunes.Category) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), historyTimeout)
		defer cancel()
		return HistorySavedMsg{Err: store.Add(ctx, query, category)}
	}
}

func clearHistoryCmd(store *history.Store) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), historyTimeout)
		defer cancel()
		return HistoryClearedMsg{Err: store.Clear(ctx)}
	}
}

// openBrowser is swapped out in tests.
var openBrowser = OpenBrowser

func openStoreCmd(url string) tea.Cmd {
	return func() tea.Msg {
		return StoreOpenedMsg{URL: url, Err: openBrowser(url)}
	}
}

// OpenBrowser opens the given URL in the default browser.
func OpenBrowser(url string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux", "freebsd", "openbsd", "netbsd":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	return cmd.Start()
}
