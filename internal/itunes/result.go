package itunes

import (
	"fmt"
	"strings"
)

// fallbackKind is assumed when an item carries no kind.
const fallbackKind = "audiobook"

var typeForKind = map[string]string{
	"album":         "Album",
	"audiobook":     "Audio Book",
	"book":          "Book",
	"ebook":         "E-Book",
	"feature-movie": "Movie",
	"music-video":   "Music Video",
	"podcast":       "Podcast",
	"software":      "App",
	"song":          "Song",
	"tv-episode":    "TV Episode",
}

// Result is one catalog item as returned by the search endpoint.
// Only the raw fields are stored; everything shown to the user is derived
// from them by the accessor methods.
type Result struct {
	RawKind    *string `json:"kind"`
	ArtistName string  `json:"artistName"`
	Currency   string  `json:"currency"`
	ImageSmall string  `json:"artworkUrl60"`
	ImageLarge string  `json:"artworkUrl100"`

	TrackName         *string  `json:"trackName"`
	TrackPrice        *float64 `json:"trackPrice"`
	TrackViewURL      *string  `json:"trackViewUrl"`
	CollectionName    *string  `json:"collectionName"`
	CollectionViewURL *string  `json:"collectionViewUrl"`
	CollectionPrice   *float64 `json:"collectionPrice"`
	ItemPrice         *float64 `json:"price"`
	PrimaryGenre      *string  `json:"primaryGenreName"`
	Genres            []string `json:"genres"`
}

// Name is the track name, else the collection name.
func (r Result) Name() string {
	return firstNonEmpty(r.TrackName, r.CollectionName)
}

// StoreURL is the track page, else the collection page.
func (r Result) StoreURL() string {
	return firstNonEmpty(r.TrackViewURL, r.CollectionViewURL)
}

// Price is the first present of track, collection and item price.
func (r Result) Price() float64 {
	for _, p := range []*float64{r.TrackPrice, r.CollectionPrice, r.ItemPrice} {
		if p != nil {
			return *p
		}
	}
	return 0
}

// Genre is the primary genre, else the joined genre list.
func (r Result) Genre() string {
	if r.PrimaryGenre != nil {
		return *r.PrimaryGenre
	}
	if r.Genres != nil {
		return strings.Join(r.Genres, ", ")
	}
	return ""
}

// Kind returns the raw kind, or the fallback kind when absent.
func (r Result) Kind() string {
	if r.RawKind == nil {
		return fallbackKind
	}
	return *r.RawKind
}

// DisplayType is the human label for Kind. Unknown kinds are returned as is.
func (r Result) DisplayType() string {
	kind := r.Kind()
	if label, ok := typeForKind[kind]; ok {
		return label
	}
	return kind
}

func (r Result) String() string {
	return fmt.Sprintf("[Genre: %s, Kind: %s, Name: %s, Artist Name: %s]",
		r.Genre(), r.DisplayType(), r.Name(), r.ArtistName)
}

func firstNonEmpty(values ...*string) string {
	for _, v := range values {
		if v != nil && *v != "" {
			return *v
		}
	}
	return ""
}
