package session

import (
	"testing"

	"github.com/llehouerou/storesearch/internal/itunes"
)

func TestResultsOf_EmptyCollapses(t *testing.T) {
	if got := ResultsOf(nil).Kind(); got != KindNoResults {
		t.Errorf("ResultsOf(nil).Kind() = %v, want no results", got)
	}
	if got := ResultsOf([]itunes.Result{}).Kind(); got != KindNoResults {
		t.Errorf("ResultsOf([]).Kind() = %v, want no results", got)
	}
}

func TestState_Results(t *testing.T) {
	name := "x"
	s := ResultsOf([]itunes.Result{{TrackName: &name}})
	if s.Kind() != KindResults {
		t.Fatalf("Kind() = %v, want results", s.Kind())
	}
	if len(s.Results()) != 1 {
		t.Errorf("len(Results()) = %d, want 1", len(s.Results()))
	}
	for _, other := range []State{NotSearchedYet(), Loading(), NoResults()} {
		if other.Results() != nil {
			t.Errorf("%v.Results() = %v, want nil", other, other.Results())
		}
	}
}

func TestState_String(t *testing.T) {
	name := "x"
	tests := []struct {
		state State
		want  string
	}{
		{NotSearchedYet(), "not searched yet"},
		{Loading(), "loading"},
		{NoResults(), "no results"},
		{ResultsOf([]itunes.Result{{TrackName: &name}, {}}), "results(2)"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
