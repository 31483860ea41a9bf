// Package app wires the search session to the terminal UI.
package app

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/storesearch/internal/app/popupctl"
	"github.com/llehouerou/storesearch/internal/artwork"
	"github.com/llehouerou/storesearch/internal/history"
	"github.com/llehouerou/storesearch/internal/session"
	"github.com/llehouerou/storesearch/internal/ui/results"
	"github.com/llehouerou/storesearch/internal/ui/searchbar"
)

// FocusTarget is the component taking keys when no popup is open.
type FocusTarget int

const (
	FocusSearch FocusTarget = iota
	FocusResults
)

// Deps are the services the UI runs on. History and Artwork may be nil.
type Deps struct {
	Session *session.Session
	History *history.Store
	Artwork *artwork.Loader
}

// Model is the root application model.
type Model struct {
	Session *session.Session
	History *history.Store
	Artwork *artwork.Loader

	SearchBar searchbar.Model
	Results   results.Model
	Popups    *popupctl.Manager
	Help      help.Model

	Focus    FocusTarget
	ErrorMsg string
	Status   string
	Width    int
	Height   int
}

// New creates the root model with the search bar focused.
func New(deps Deps) Model {
	bar := searchbar.New()
	bar.SetFocused(true)

	h := help.New()
	h.ShortSeparator = " · "

	return Model{
		Session:   deps.Session,
		History:   deps.History,
		Artwork:   deps.Artwork,
		SearchBar: bar,
		Results:   results.New(),
		Popups:    popupctl.New(),
		Help:      h,
		Focus:     FocusSearch,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.SearchBar.Focus()
}
