package itunes

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrDecode is returned when a payload does not match the response shape.
var ErrDecode = errors.New("decode response")

// response is the search endpoint envelope.
type response struct {
	ResultCount int       `json:"resultCount"`
	Results     *[]Result `json:"results"`
}

// ParseResponse decodes a search payload. Unknown fields are ignored and every
// item field is optional, but a field of the wrong type fails the whole parse,
// as does a missing or null "results" array. On failure it returns nil and an
// error wrapping ErrDecode.
func ParseResponse(data []byte) ([]Result, error) {
	var resp response
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if resp.Results == nil {
		return nil, fmt.Errorf("%w: missing results array", ErrDecode)
	}
	if *resp.Results == nil {
		return []Result{}, nil
	}
	return *resp.Results, nil
}
