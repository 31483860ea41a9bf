package session

import (
	"fmt"

	"github.com/llehouerou/storesearch/internal/itunes"
)

// Kind identifies which variant a State holds.
type Kind int

const (
	KindNotSearchedYet Kind = iota
	KindLoading
	KindNoResults
	KindResults
)

func (k Kind) String() string {
	switch k {
	case KindLoading:
		return "loading"
	case KindNoResults:
		return "no results"
	case KindResults:
		return "results"
	default:
		return "not searched yet"
	}
}

// State is the observable outcome of a session. Exactly one variant is held;
// only KindResults carries results, and that list is never empty.
type State struct {
	kind    Kind
	results []itunes.Result
}

// NotSearchedYet is the initial state, and the state after a failed search.
func NotSearchedYet() State { return State{kind: KindNotSearchedYet} }

// Loading means a request is in flight.
func Loading() State { return State{kind: KindLoading} }

// NoResults means the last search succeeded with nothing to show.
func NoResults() State { return State{kind: KindNoResults} }

// ResultsOf wraps a result list. An empty list collapses to NoResults.
func ResultsOf(results []itunes.Result) State {
	if len(results) == 0 {
		return NoResults()
	}
	return State{kind: KindResults, results: results}
}

// Kind returns the active variant.
func (s State) Kind() Kind { return s.kind }

// Results returns the result list for KindResults and nil otherwise.
func (s State) Results() []itunes.Result {
	if s.kind != KindResults {
		return nil
	}
	return s.results
}

func (s State) String() string {
	if s.kind == KindResults {
		return fmt.Sprintf("results(%d)", len(s.results))
	}
	return s.kind.String()
}
