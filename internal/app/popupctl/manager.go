// Package popupctl keeps track of the modal popups drawn over the main view.
package popupctl

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/storesearch/internal/artwork"
	"github.com/llehouerou/storesearch/internal/itunes"
	"github.com/llehouerou/storesearch/internal/ui/detail"
	"github.com/llehouerou/storesearch/internal/ui/help"
	"github.com/llehouerou/storesearch/internal/ui/historypopup"
	"github.com/llehouerou/storesearch/internal/ui/popup"
)

// Manager manages all modal popups.
type Manager struct {
	popups map[Type]popup.Popup
	sizes  map[Type]popup.SizeConfig
	width  int
	height int
}

// New creates an empty Manager.
func New() *Manager {
	return &Manager{
		popups: make(map[Type]popup.Popup),
		sizes: map[Type]popup.SizeConfig{
			History: popup.SizeMedium,
			// All others default to SizeAuto
		},
	}
}

// SetSize updates the screen dimensions and resizes open popups.
func (p *Manager) SetSize(width, height int) {
	p.width = width
	p.height = height
	for t, pop := range p.popups {
		pop.SetSize(p.contentSize(p.sizes[t]))
	}
}

// IsVisible reports whether a popup of type t is shown.
func (p *Manager) IsVisible(t Type) bool {
	return t != None && p.popups[t] != nil
}

// ActivePopup returns the popup that receives keys.
func (p *Manager) ActivePopup() Type {
	for _, t := range Priority {
		if p.IsVisible(t) {
			return t
		}
	}
	return None
}

// Show displays pop as a popup of type t, replacing any previous one.
func (p *Manager) Show(t Type, pop popup.Popup) tea.Cmd {
	pop.SetSize(p.contentSize(p.sizes[t]))
	p.popups[t] = pop
	return pop.Init()
}

// Hide removes the popup of type t.
func (p *Manager) Hide(t Type) {
	if d, ok := p.popups[t].(*detail.Model); ok {
		d.Close()
	}
	delete(p.popups, t)
}

// Get returns the popup of type t, or nil.
func (p *Manager) Get(t Type) popup.Popup {
	return p.popups[t]
}

// Update sends msg to the popup of type t.
func (p *Manager) Update(t Type, msg tea.Msg) tea.Cmd {
	pop := p.popups[t]
	if pop == nil {
		return nil
	}
	updated, cmd := pop.Update(msg)
	p.popups[t] = updated
	return cmd
}

// Overlay draws the visible popups over base.
func (p *Manager) Overlay(base string) string {
	for _, t := range RenderOrder {
		pop := p.popups[t]
		if pop == nil {
			continue
		}
		content := pop.View()
		if content == "" {
			continue
		}
		box := popup.RenderBordered(content, p.width, p.height, p.sizes[t])
		base = popup.Compose(base, box, p.width)
	}
	return base
}

func (p *Manager) contentSize(size popup.SizeConfig) (width, height int) {
	if size.WidthPct > 0 {
		return p.width * size.WidthPct / 100, p.height * size.HeightPct / 100
	}
	// Auto-fit: give full screen size, popup decides
	return p.width, p.height
}

// --- Show Methods (convenience wrappers) ---

// ShowHelp displays the key bindings of the given contexts.
func (p *Manager) ShowHelp(contexts []string) tea.Cmd {
	h := help.New()
	h.SetContexts(contexts)
	return p.Show(Help, h)
}

// ShowDetail displays r and starts loading its artwork.
func (p *Manager) ShowDetail(loader *artwork.Loader, r itunes.Result) tea.Cmd {
	p.Hide(Detail)
	d := detail.New(loader)
	cmd := p.Show(Detail, d)
	return tea.Batch(cmd, d.SetResult(r))
}

// ShowHistory displays the recent searches popup. The caller loads the
// entries and delivers them as historypopup.LoadedMsg.
func (p *Manager) ShowHistory() tea.Cmd {
	return p.Show(History, historypopup.New())
}
