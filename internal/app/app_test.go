package app

import (
	"context"
	"errors"
	"net/url"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/storesearch/internal/app/popupctl"
	"github.com/llehouerou/storesearch/internal/history"
	"github.com/llehouerou/storesearch/internal/itunes"
	"github.com/llehouerou/storesearch/internal/session"
	"github.com/llehouerou/storesearch/internal/ui/action"
	"github.com/llehouerou/storesearch/internal/ui/historypopup"
	"github.com/llehouerou/storesearch/internal/ui/searchbar"
)

const twoSongs = `{"resultCount":2,"results":[
	{"kind":"song","trackName":"Waterloo","artistName":"ABBA","trackPrice":1.29,"currency":"USD",
	 "trackViewUrl":"https://music.apple.com/us/album/waterloo/1"},
	{"kind":"song","trackName":"Dancing Queen","artistName":"ABBA","trackPrice":1.29,"currency":"USD"}
]}`

// stubFetcher answers by search term.
type stubFetcher struct {
	mu      sync.Mutex
	bodies  map[string]string
	status  int
	err     error
	fetched []string
}

func (f *stubFetcher) Get(_ context.Context, rawURL string) ([]byte, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, 0, err
	}
	term := u.Query().Get("term")
	f.fetched = append(f.fetched, rawURL)
	if f.err != nil {
		return nil, 0, f.err
	}
	status := f.status
	if status == 0 {
		status = 200
	}
	body, ok := f.bodies[term]
	if !ok {
		body = `{"resultCount":0,"results":[]}`
	}
	return []byte(body), status, nil
}

func newTestModel(t *testing.T, f *stubFetcher, store *history.Store) Model {
	t.Helper()
	m := New(Deps{
		Session: session.New(f, session.Options{}),
		History: store,
	})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return next.(Model)
}

func openStore(t *testing.T) *history.Store {
	t.Helper()
	store, err := history.OpenPath(filepath.Join(t.TempDir(), "history.db"), history.DefaultSize)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// drain runs cmd and feeds every resulting message back into Update until no
// command is left. Spinner ticks are dropped so the loop ends.
func drain(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	pending := []tea.Cmd{cmd}
	for steps := 0; len(pending) > 0; steps++ {
		require.Less(t, steps, 100, "command loop did not settle")
		c := pending[0]
		pending = pending[1:]
		if c == nil {
			continue
		}
		switch msg := c().(type) {
		case nil, spinner.TickMsg, tea.QuitMsg:
		case tea.BatchMsg:
			pending = append(pending, msg...)
		default:
			next, out := m.Update(msg)
			m = next.(Model)
			pending = append(pending, out)
		}
	}
	return m
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	return drain(t, next.(Model), cmd)
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeQuery(m Model, text string) Model {
	for _, r := range text {
		next, _ := m.Update(keyRunes(string(r)))
		m = next.(Model)
	}
	return m
}

func TestApp_InitialState(t *testing.T) {
	m := newTestModel(t, &stubFetcher{}, nil)

	assert.Equal(t, FocusSearch, m.Focus)
	assert.Equal(t, session.KindNotSearchedYet, m.Session.State().Kind())
	assert.Contains(t, m.View(), "Type a query and press enter")
	assert.Contains(t, m.View(), "StoreSearch")
}

func TestApp_SubmitShowsSortedResults(t *testing.T) {
	f := &stubFetcher{bodies: map[string]string{"abba": twoSongs}}
	m := newTestModel(t, f, nil)

	m = typeQuery(m, "abba")
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.Equal(t, session.KindResults, m.Session.State().Kind())
	results := m.Session.State().Results()
	require.Len(t, results, 2)
	assert.Equal(t, "Dancing Queen", results[0].Name())
	assert.Equal(t, FocusResults, m.Focus)
	assert.Contains(t, m.View(), "1/2 results")
	assert.Empty(t, m.ErrorMsg)
}

func TestApp_LoadingShownBeforeResponse(t *testing.T) {
	m := newTestModel(t, &stubFetcher{}, nil)

	next, cmd := m.Update(action.Msg{Source: "searchbar", Action: searchbar.Submit{Text: "abba"}})
	m = next.(Model)

	require.NotNil(t, cmd)
	assert.Equal(t, session.KindLoading, m.Session.State().Kind())
	assert.Equal(t, session.KindLoading, m.Results.Kind())
	assert.Contains(t, m.View(), "Searching the store")
}

func TestApp_BlankQueryIgnored(t *testing.T) {
	f := &stubFetcher{}
	m := newTestModel(t, f, nil)

	m = typeQuery(m, "   ")
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, session.KindNotSearchedYet, m.Session.State().Kind())
	assert.Empty(t, f.fetched)
}

func TestApp_NoResults(t *testing.T) {
	m := newTestModel(t, &stubFetcher{}, nil)
	m = send(t, m, action.Msg{Source: "searchbar", Action: searchbar.Submit{Text: "zzzz"}})

	assert.Equal(t, session.KindNoResults, m.Session.State().Kind())
	assert.Contains(t, m.View(), "Nothing found")
}

func TestApp_FailureShowsError(t *testing.T) {
	tests := []struct {
		name  string
		fetch *stubFetcher
		want  string
	}{
		{"server error", &stubFetcher{status: 500}, "store unavailable (500)"},
		{"transport", &stubFetcher{err: errors.New("connection refused")}, "connection refused"},
		{"bad json", &stubFetcher{bodies: map[string]string{"abba": "{"}}, "decode response"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t, tt.fetch, nil)
			m = send(t, m, action.Msg{Source: "searchbar", Action: searchbar.Submit{Text: "abba"}})

			assert.Equal(t, session.KindNotSearchedYet, m.Session.State().Kind())
			assert.Contains(t, m.ErrorMsg, "Failed to search the store 'abba'")
			assert.Contains(t, m.ErrorMsg, tt.want)
			assert.Contains(t, m.View(), "Failed to search the store")

			m = send(t, m, keyRunes("j"))
			assert.Empty(t, m.ErrorMsg, "any key dismisses the error")
		})
	}
}

func TestApp_StaleResponseDropped(t *testing.T) {
	f := &stubFetcher{bodies: map[string]string{
		"first":  twoSongs,
		"second": `{"resultCount":1,"results":[{"kind":"software","trackName":"Second App","artistName":"Dev"}]}`,
	}}
	m := newTestModel(t, f, nil)

	next, first := m.Update(action.Msg{Source: "searchbar", Action: searchbar.Submit{Text: "first"}})
	m = next.(Model)
	next, second := m.Update(action.Msg{Source: "searchbar", Action: searchbar.Submit{Text: "second"}})
	m = next.(Model)

	m = drain(t, m, second)
	m = drain(t, m, first)

	results := m.Session.State().Results()
	require.Len(t, results, 1)
	assert.Equal(t, "Second App", results[0].Name())
	assert.Empty(t, m.ErrorMsg)
}

func TestApp_CategoryChangeReruns(t *testing.T) {
	f := &stubFetcher{bodies: map[string]string{"abba": twoSongs}}
	m := newTestModel(t, f, nil)

	m = typeQuery(m, "abba")
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Len(t, f.fetched, 1)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Len(t, f.fetched, 2)
	assert.Contains(t, f.fetched[1], "entity=musicTrack")
	assert.Equal(t, itunes.CategoryMusic, m.SearchBar.Category())
}

func TestApp_CategoryChangeWithoutQuery(t *testing.T) {
	f := &stubFetcher{}
	m := newTestModel(t, f, nil)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Empty(t, f.fetched)
	assert.Equal(t, session.KindNotSearchedYet, m.Session.State().Kind())
}

func TestApp_RetryRerunsQuery(t *testing.T) {
	f := &stubFetcher{bodies: map[string]string{"abba": twoSongs}}
	m := newTestModel(t, f, nil)
	m = typeQuery(m, "abba")
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m = send(t, m, keyRunes("r"))
	assert.Len(t, f.fetched, 2)
	assert.Equal(t, session.KindResults, m.Session.State().Kind())
}

func TestApp_OpenDetailAndStore(t *testing.T) {
	var opened []string
	prev := openBrowser
	openBrowser = func(u string) error {
		opened = append(opened, u)
		return nil
	}
	t.Cleanup(func() { openBrowser = prev })

	f := &stubFetcher{bodies: map[string]string{"abba": twoSongs}}
	m := newTestModel(t, f, nil)
	m = typeQuery(m, "abba")
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	// Waterloo sorts second.
	m = send(t, m, keyRunes("j"))
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, popupctl.Detail, m.Popups.ActivePopup())
	assert.Contains(t, m.View(), "Waterloo")

	m = send(t, m, keyRunes("o"))
	assert.Equal(t, []string{"https://music.apple.com/us/album/waterloo/1"}, opened)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	assert.Equal(t, popupctl.None, m.Popups.ActivePopup())
}

func TestApp_OpenStoreFailure(t *testing.T) {
	prev := openBrowser
	openBrowser = func(string) error { return errors.New("no browser") }
	t.Cleanup(func() { openBrowser = prev })

	m := newTestModel(t, &stubFetcher{}, nil)
	m = send(t, m, StoreOpenedMsg{URL: "https://example.com", Err: errors.New("no browser")})
	assert.Equal(t, "Failed to open store page 'https://example.com': no browser", m.ErrorMsg)
}

func TestApp_HistoryRecordedAndReplayed(t *testing.T) {
	store := openStore(t)
	f := &stubFetcher{bodies: map[string]string{"abba": twoSongs}}
	m := newTestModel(t, f, store)

	m = typeQuery(m, "abba")
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	entries, err := store.Recent(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "abba", entries[0].Query)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	require.Equal(t, popupctl.History, m.Popups.ActivePopup())
	assert.Contains(t, m.View(), "abba")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, popupctl.None, m.Popups.ActivePopup())
	assert.Len(t, f.fetched, 2)
	assert.Equal(t, "abba", m.SearchBar.Query())
}

func TestApp_FailedSearchNotRecorded(t *testing.T) {
	store := openStore(t)
	m := newTestModel(t, &stubFetcher{status: 503}, store)
	send(t, m, action.Msg{Source: "searchbar", Action: searchbar.Submit{Text: "abba"}})

	entries, err := store.Recent(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestApp_ClearHistory(t *testing.T) {
	store := openStore(t)
	require.NoError(t, store.Add(context.Background(), "queen", itunes.CategoryMusic))
	m := newTestModel(t, &stubFetcher{}, store)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlX})

	entries, err := store.Recent(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.Equal(t, "Recent searches cleared", m.Status)
	_, ok := m.Popups.Get(popupctl.History).(*historypopup.Model)
	assert.True(t, ok, "popup stays open after clearing")
}

func TestApp_HistoryDisabled(t *testing.T) {
	m := newTestModel(t, &stubFetcher{}, nil)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})

	assert.Equal(t, popupctl.None, m.Popups.ActivePopup())
	assert.Equal(t, "Recent searches are disabled", m.Status)
}

func TestApp_HelpPopup(t *testing.T) {
	m := newTestModel(t, &stubFetcher{}, nil)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEscape}) // leave the search bar
	require.Equal(t, FocusResults, m.Focus)

	m = send(t, m, keyRunes("?"))
	require.Equal(t, popupctl.Help, m.Popups.ActivePopup())
	assert.Contains(t, m.View(), "Results")

	m = send(t, m, keyRunes("?"))
	assert.Equal(t, popupctl.None, m.Popups.ActivePopup())
}

func TestApp_QuitCancelsInFlight(t *testing.T) {
	m := newTestModel(t, &stubFetcher{bodies: map[string]string{"abba": twoSongs}}, nil)
	next, search := m.Update(action.Msg{Source: "searchbar", Action: searchbar.Submit{Text: "abba"}})
	m = next.(Model)

	next, quit := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = next.(Model)
	require.NotNil(t, quit)
	assert.IsType(t, tea.QuitMsg{}, quit())
	assert.Nil(t, m.Session.Current())

	m = drain(t, m, search)
	assert.Equal(t, session.KindLoading, m.Session.State().Kind(), "outcome after quit is dropped")
}

func TestApp_QInSearchBarIsText(t *testing.T) {
	m := newTestModel(t, &stubFetcher{}, nil)
	m = typeQuery(m, "q")
	assert.Equal(t, "q", m.SearchBar.Text())
}

func TestApp_ViewFitsWindow(t *testing.T) {
	f := &stubFetcher{bodies: map[string]string{"abba": twoSongs}}
	m := newTestModel(t, f, nil)
	m = send(t, m, action.Msg{Source: "searchbar", Action: searchbar.Submit{Text: "abba"}})

	lines := strings.Split(m.View(), "\n")
	assert.Len(t, lines, 30)
}
