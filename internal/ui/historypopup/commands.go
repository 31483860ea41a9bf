package historypopup

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/storesearch/internal/history"
)

const loadTimeout = 5 * time.Second

// Load reads the recent searches from store.
func Load(store *history.Store) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		entries, err := store.Recent(ctx, 0)
		return LoadedMsg{Entries: entries, Err: err}
	}
}
