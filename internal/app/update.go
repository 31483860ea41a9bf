package app

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/storesearch/internal/app/popupctl"
	"github.com/llehouerou/storesearch/internal/errmsg"
	"github.com/llehouerou/storesearch/internal/itunes"
	"github.com/llehouerou/storesearch/internal/log"
	"github.com/llehouerou/storesearch/internal/ui/action"
	"github.com/llehouerou/storesearch/internal/ui/detail"
	"github.com/llehouerou/storesearch/internal/ui/historypopup"
)

var logger = log.ForService("app")

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.ResizeComponents()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case action.Msg:
		return m.handleAction(msg)

	case SearchDoneMsg:
		return m.handleSearchDone(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Results, cmd = m.Results.Update(msg)
		return m, cmd

	case detail.ArtworkMsg:
		if msg.Err != nil && !errors.Is(msg.Err, context.Canceled) {
			logger.Debugf("%s", errmsg.FormatWith(errmsg.OpArtworkLoad, msg.URL, msg.Err))
		}
		return m, m.Popups.Update(popupctl.Detail, msg)

	case historypopup.LoadedMsg:
		if msg.Err != nil {
			logger.Warnf("%s", errmsg.Format(errmsg.OpHistoryLoad, msg.Err))
		}
		return m, m.Popups.Update(popupctl.History, msg)

	case HistorySavedMsg:
		if msg.Err != nil {
			m.ErrorMsg = errmsg.Format(errmsg.OpHistorySave, msg.Err)
			logger.Warnf("%s", m.ErrorMsg)
		}
		return m, nil

	case HistoryClearedMsg:
		if msg.Err != nil {
			m.ErrorMsg = errmsg.Format(errmsg.OpHistoryClear, msg.Err)
			logger.Warnf("%s", m.ErrorMsg)
		} else {
			m.Status = "Recent searches cleared"
		}
		return m, nil

	case StoreOpenedMsg:
		if msg.Err != nil {
			m.ErrorMsg = errmsg.FormatWith(errmsg.OpOpenStore, msg.URL, msg.Err)
			logger.Warnf("%s", m.ErrorMsg)
		}
		return m, nil
	}

	// Cursor blink and other input messages.
	var cmd tea.Cmd
	m.SearchBar, cmd = m.SearchBar.Update(msg)
	return m, cmd
}

// startSearch begins a search for text in category and returns the command
// that runs it. Loading is shown before the command is returned.
func (m *Model) startSearch(text string, category itunes.Category) tea.Cmd {
	req := m.Session.Begin(text, category)
	if req == nil {
		return nil
	}
	m.ErrorMsg = ""
	m.Status = ""
	tick := m.Results.SetState(m.Session.State())
	return tea.Batch(tick, runSearchCmd(req))
}

func (m Model) handleSearchDone(msg SearchDoneMsg) (tea.Model, tea.Cmd) {
	success, applied := m.Session.Finish(msg.Req, msg.Outcome)
	if !applied {
		return m, nil
	}
	m.Results.SetState(m.Session.State())

	if !success {
		m.ErrorMsg = errmsg.FormatWith(errmsg.OpSearch, msg.Req.Text, msg.Outcome.Err)
		return m, nil
	}
	if m.History == nil {
		return m, nil
	}
	return m, saveHistoryCmd(m.History, msg.Req.Text, msg.Req.Category)
}
