package itunes

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Query describes one search request.
type Query struct {
	Term     string
	Category Category
	Language string // "lang" hint, e.g. "en_US"
	Country  string // "country" hint, e.g. "US"
	Limit    int    // 0 omits the parameter
}

// SearchURL builds the request URL for q against base. The output is
// deterministic: parameters are percent-encoded and sorted by key.
func SearchURL(base string, q Query) string {
	params := url.Values{}
	params.Set("term", q.Term)
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	if entity := q.Category.Entity(); entity != "" {
		params.Set("entity", entity)
	}
	if q.Language != "" {
		params.Set("lang", q.Language)
	}
	if q.Country != "" {
		params.Set("country", q.Country)
	}

	return fmt.Sprintf("%s/search?%s", strings.TrimSuffix(base, "/"), params.Encode())
}
