package history

import (
	"cmp"
	"slices"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// minSimilarity is the Jaro-Winkler score below which non-prefix entries are
// dropped.
const minSimilarity = 0.7

type scored struct {
	entry  Entry
	prefix bool
	score  float64
}

// Match ranks entries against input: prefix matches first, then the rest by
// Jaro-Winkler similarity. Ties keep the input order (most recent first).
// An empty input returns entries unchanged.
func Match(entries []Entry, input string) []Entry {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return entries
	}

	jw := metrics.NewJaroWinkler()
	jw.CaseSensitive = false

	var candidates []scored
	for _, e := range entries {
		q := strings.ToLower(e.Query)
		s := scored{
			entry:  e,
			prefix: strings.HasPrefix(q, input),
			score:  strutil.Similarity(input, q, jw),
		}
		if s.prefix || s.score >= minSimilarity {
			candidates = append(candidates, s)
		}
	}

	slices.SortStableFunc(candidates, func(a, b scored) int {
		if a.prefix != b.prefix {
			if a.prefix {
				return -1
			}
			return 1
		}
		if a.prefix {
			return 0
		}
		return cmp.Compare(b.score, a.score)
	})

	out := make([]Entry, len(candidates))
	for i, c := range candidates {
		out[i] = c.entry
	}
	return out
}
