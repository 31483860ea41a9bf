// Package session implements the search request lifecycle behind a search
// surface: one authoritative request at a time, a small state machine, and a
// guarantee that a superseded request can never overwrite newer state.
package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/text/language"

	"github.com/llehouerou/storesearch/internal/itunes"
	"github.com/llehouerou/storesearch/internal/locale"
	"github.com/llehouerou/storesearch/internal/log"
)

// ErrCanceled marks the outcome of a request that was canceled before it
// completed. Such outcomes are dropped, never reported as failures.
var ErrCanceled = errors.New("search canceled")

// Fetcher performs an HTTP GET. *itunes.Client satisfies it.
type Fetcher interface {
	Get(ctx context.Context, url string) (body []byte, status int, err error)
}

// Options configures a Session.
type Options struct {
	BaseURL  string        // default: itunes.DefaultBaseURL
	Limit    int           // "limit" parameter, 0 omits it
	Locale   locale.Locale // zero value uses locale.Default
	Executor Executor      // designated context for PerformSearch completions; PerformSearch panics without one
}

// Session owns the current query, the in-flight request and the derived
// state for one search surface.
//
// PerformSearch, Begin, Finish, State, Current and Close must all be called
// from the designated context. Request.Run may be called from anywhere.
type Session struct {
	fetcher Fetcher
	exec    Executor
	baseURL string
	limit   int
	locale  locale.Locale
	log     *log.Logger

	state   State
	current *Request
}

// New creates a session in the NotSearchedYet state.
func New(fetcher Fetcher, opts Options) *Session {
	if opts.BaseURL == "" {
		opts.BaseURL = itunes.DefaultBaseURL
	}
	if opts.Locale.Language == "" {
		opts.Locale = locale.Default
	}
	return &Session{
		fetcher: fetcher,
		exec:    opts.Executor,
		baseURL: opts.BaseURL,
		limit:   opts.Limit,
		locale:  opts.Locale,
		log:     log.ForService("session"),
		state:   NotSearchedYet(),
	}
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Current returns the in-flight request, or nil.
func (s *Session) Current() *Request {
	return s.current
}

// Locale returns the locale hints sent with every request.
func (s *Session) Locale() locale.Locale {
	return s.locale
}

// PerformSearch starts a search for text in category. The previous request,
// if any, is canceled and the state becomes Loading before PerformSearch
// returns. When the request resolves, completion is called on the executor
// with the success flag, unless a newer search has started in the meantime,
// in which case nothing happens at all. An empty text is a no-op.
//
// The session must have been created with an Executor that delivers onto the
// caller's designated context. Callers that deliver outcomes themselves, like
// a bubbletea Update, use Begin and Finish instead.
func (s *Session) PerformSearch(text string, category itunes.Category, completion func(success bool)) {
	if s.exec == nil {
		panic("session: PerformSearch requires Options.Executor")
	}
	req := s.Begin(text, category)
	if req == nil {
		return
	}
	go func() {
		outcome := req.Run()
		s.exec.Do(func() {
			success, applied := s.Finish(req, outcome)
			if applied && completion != nil {
				completion(success)
			}
		})
	}()
}

// Begin is the synchronous half of PerformSearch: it cancels the previous
// request, installs a new current request and sets the state to Loading.
// The caller runs the returned request and hands its outcome to Finish.
// It returns nil, changing nothing, when text is empty.
func (s *Session) Begin(text string, category itunes.Category) *Request {
	if text == "" {
		return nil
	}
	if s.current != nil {
		s.log.Debugf("superseding %s", s.current.ID)
		s.current.cancel()
	}

	ctx, cancel := context.WithCancel(context.Background())
	req := &Request{
		ID:       uuid.New(),
		Text:     text,
		Category: category,
		URL: itunes.SearchURL(s.baseURL, itunes.Query{
			Term:     text,
			Category: category,
			Language: s.locale.Language,
			Country:  s.locale.Country,
			Limit:    s.limit,
		}),
		ctx:     ctx,
		cancel:  cancel,
		fetcher: s.fetcher,
		tag:     s.locale.Tag,
	}
	s.current = req
	s.state = Loading()
	s.log.Infof("search %s: %q (%s)", req.ID, text, category)
	s.log.Debugf("GET %s", req.URL)
	return req
}

// Finish is the completion half of PerformSearch. An outcome is applied only
// if req is still the current request; stale and canceled outcomes are
// dropped. applied reports whether the state changed, success whether the
// search succeeded.
func (s *Session) Finish(req *Request, outcome Outcome) (success, applied bool) {
	if req == nil || req != s.current {
		if req != nil {
			s.log.Debugf("dropping stale outcome of %s", req.ID)
		}
		return false, false
	}
	if outcome.Canceled() {
		s.log.Debugf("dropping canceled outcome of %s", req.ID)
		return false, false
	}

	s.current = nil
	req.cancel()

	if outcome.Err != nil {
		if errors.Is(outcome.Err, itunes.ErrDecode) {
			s.log.Warnf("search %s: JSON error: %v", req.ID, outcome.Err)
		} else {
			s.log.Warnf("search %s failed: %v", req.ID, outcome.Err)
		}
		s.state = NotSearchedYet()
		return false, true
	}

	s.state = ResultsOf(outcome.Results)
	s.log.Infof("search %s: %s", req.ID, s.state)
	return true, true
}

// Close cancels the in-flight request. Its outcome, if it still arrives,
// is dropped.
func (s *Session) Close() {
	if s.current != nil {
		s.current.cancel()
		s.current = nil
	}
}

// Request is one search issued by a session.
type Request struct {
	ID       uuid.UUID
	Text     string
	Category itunes.Category
	URL      string

	ctx     context.Context
	cancel  context.CancelFunc
	fetcher Fetcher
	tag     language.Tag
}

// Outcome is the result of running a request.
type Outcome struct {
	Results []itunes.Result // sorted by name
	Err     error
}

// Canceled reports whether the request was canceled before completing.
func (o Outcome) Canceled() bool {
	return errors.Is(o.Err, ErrCanceled)
}

// Run fetches, parses and sorts. It blocks until the fetch returns and is safe
// to call from any goroutine.
func (r *Request) Run() Outcome {
	body, status, err := r.fetcher.Get(r.ctx, r.URL)
	if errors.Is(r.ctx.Err(), context.Canceled) {
		return Outcome{Err: fmt.Errorf("%w: %s", ErrCanceled, r.ID)}
	}
	if err != nil {
		return Outcome{Err: err}
	}
	if status != http.StatusOK {
		return Outcome{Err: &itunes.StatusError{Code: status}}
	}

	results, err := itunes.ParseResponse(body)
	if err != nil {
		return Outcome{Err: err}
	}
	itunes.SortByName(results, r.tag)
	return Outcome{Results: results}
}
