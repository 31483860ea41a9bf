// Package detail shows one result with its artwork.
package detail

import (
	"context"
	"errors"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/storesearch/internal/artwork"
	"github.com/llehouerou/storesearch/internal/itunes"
	"github.com/llehouerou/storesearch/internal/ui"
	"github.com/llehouerou/storesearch/internal/ui/popup"
	"github.com/llehouerou/storesearch/internal/ui/render"
	"github.com/llehouerou/storesearch/internal/ui/styles"
)

const (
	fetchTimeout = 15 * time.Second
	metaWidth    = 40
	artGap       = "  "
)

var _ popup.Popup = (*Model)(nil)

// State is the artwork state.
type State int

const (
	StateNoArtwork State = iota
	StateLoading
	StateLoaded
	StateError
)

// Model is the item detail popup.
type Model struct {
	ui.Base
	loader *artwork.Loader
	result itunes.Result
	artURL string
	art    []byte
	state  State
	errMsg string
	cancel context.CancelFunc
}

// New creates a detail popup. A nil loader disables artwork.
func New(loader *artwork.Loader) *Model {
	return &Model{loader: loader}
}

// SetResult shows r and starts loading its artwork.
func (m *Model) SetResult(r itunes.Result) tea.Cmd {
	m.Close()
	m.result = r
	m.art = nil
	m.errMsg = ""
	m.artURL = artworkURL(r)

	if m.loader == nil || m.loader.Protocol() == artwork.ProtocolNone || m.artURL == "" {
		m.state = StateNoArtwork
		return nil
	}
	m.state = StateLoading

	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	m.cancel = cancel
	loader, url := m.loader, m.artURL
	return func() tea.Msg {
		defer cancel()
		data, err := loader.Load(ctx, url, ui.ArtworkCols, ui.ArtworkRows)
		return ArtworkMsg{URL: url, Data: data, Err: err}
	}
}

// Result returns the item on display.
func (m *Model) Result() itunes.Result {
	return m.result
}

// State returns the artwork state.
func (m *Model) State() State {
	return m.state
}

// Close abandons a pending artwork download.
func (m *Model) Close() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case ArtworkMsg:
		m.handleArtwork(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (popup.Popup, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.Close()
		return m, ActionMsg(Close{}).Cmd()
	case "o":
		url := m.result.StoreURL()
		if url == "" {
			return m, nil
		}
		return m, ActionMsg(OpenStore{URL: url}).Cmd()
	}
	return m, nil
}

func (m *Model) handleArtwork(msg ArtworkMsg) {
	if msg.URL != m.artURL || m.state != StateLoading {
		return
	}
	m.cancel = nil
	switch {
	case msg.Err == nil:
		m.art = msg.Data
		m.state = StateLoaded
	case errors.Is(msg.Err, context.Canceled):
		m.state = StateNoArtwork
	default:
		m.state = StateError
		m.errMsg = msg.Err.Error()
	}
}

// View implements popup.Popup.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	meta := m.metaLines()
	if m.state == StateNoArtwork && (m.loader == nil || m.loader.Protocol() == artwork.ProtocolNone) {
		return strings.Join(meta, "\n")
	}

	art := m.artLines()
	rows := max(len(art), len(meta))
	lines := make([]string, rows)
	for i := range rows {
		left := strings.Repeat(" ", ui.ArtworkCols)
		if i < len(art) {
			left = art[i]
		}
		right := ""
		if i < len(meta) {
			right = meta[i]
		}
		lines[i] = left + artGap + right
	}

	if m.state == StateLoaded && m.loader != nil {
		lines[0] = m.loader.Render(m.art, ui.ArtworkCols, ui.ArtworkRows) + lines[0]
	}
	return strings.Join(lines, "\n")
}

func (m *Model) artLines() []string {
	if m.state == StateLoaded {
		blank := strings.Repeat(" ", ui.ArtworkCols)
		lines := make([]string, ui.ArtworkRows)
		for i := range lines {
			lines[i] = blank
		}
		return lines
	}
	return strings.Split(artwork.Placeholder(ui.ArtworkCols, ui.ArtworkRows), "\n")
}

func (m *Model) metaLines() []string {
	s := styles.T().S()
	r := m.result
	width := min(metaWidth, max(m.Width()-ui.ArtworkCols-len(artGap)-6, 10))

	field := func(label, value string) string {
		if value == "" {
			value = "-"
		}
		return s.Muted.Render(label) + render.Truncate(render.Sanitize(value), width-len(label))
	}

	lines := []string{
		s.Title.Render(render.Truncate(render.Sanitize(r.Name()), width)),
		render.Truncate(render.Sanitize(r.ArtistName), width),
		"",
		field("Type   ", r.DisplayType()),
		field("Genre  ", r.Genre()),
		s.Muted.Render("Price  ") + s.Price.Render(itunes.FormatPrice(r.Price(), r.Currency)),
		"",
	}

	switch m.state {
	case StateLoading:
		lines = append(lines, s.Subtle.Render("loading artwork..."))
	case StateError:
		lines = append(lines, s.Error.Render(render.Truncate("artwork: "+m.errMsg, width)))
	default:
		lines = append(lines, "")
	}

	footer := "esc close"
	if r.StoreURL() != "" {
		footer = "o open in store · " + footer
	}
	return append(lines, s.Subtle.Render(footer))
}

func artworkURL(r itunes.Result) string {
	if r.ImageLarge != "" {
		return r.ImageLarge
	}
	return r.ImageSmall
}
