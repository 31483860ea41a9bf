package itunes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func named(name, artist string) Result {
	return Result{TrackName: &name, ArtistName: artist}
}

func names(results []Result) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Name()
	}
	return out
}

func TestSortByName_Numeric(t *testing.T) {
	results := []Result{named("10 Things", ""), named("2 Things", "")}

	SortByName(results, language.AmericanEnglish)

	assert.Equal(t, []string{"2 Things", "10 Things"}, names(results))
}

func TestSortByName_CaseInsensitive(t *testing.T) {
	results := []Result{named("cherry", ""), named("Banana", ""), named("apple", "")}

	SortByName(results, language.AmericanEnglish)

	assert.Equal(t, []string{"apple", "Banana", "cherry"}, names(results))
}

func TestSortByName_Stable(t *testing.T) {
	results := []Result{
		named("Same", "first"),
		named("Another", ""),
		named("Same", "second"),
		named("Same", "third"),
	}

	SortByName(results, language.AmericanEnglish)

	assert.Equal(t, []string{"Another", "Same", "Same", "Same"}, names(results))
	assert.Equal(t, "first", results[1].ArtistName)
	assert.Equal(t, "second", results[2].ArtistName)
	assert.Equal(t, "third", results[3].ArtistName)
}

func TestSortByName_Idempotent(t *testing.T) {
	results := []Result{
		named("Track 11", "a"),
		named("track 2", "b"),
		named("Album", "c"),
		named("", "d"),
		named("Track 1", "e"),
	}

	SortByName(results, language.AmericanEnglish)
	once := append([]Result(nil), results...)
	SortByName(results, language.AmericanEnglish)

	assert.Equal(t, once, results)
	assert.Equal(t, []string{"", "Album", "Track 1", "track 2", "Track 11"}, names(results))
}

func TestSortByName_Empty(t *testing.T) {
	var results []Result
	SortByName(results, language.AmericanEnglish)
	assert.Empty(t, results)
}
