package itunes

import (
	"fmt"
	"strings"
)

// Category restricts a search to one kind of store content.
type Category int

const (
	CategoryAll Category = iota
	CategoryMusic
	CategorySoftware
	CategoryEbooks
)

// Categories lists every category in tab order.
var Categories = []Category{CategoryAll, CategoryMusic, CategorySoftware, CategoryEbooks}

// Entity returns the API entity filter. All maps to "" (unfiltered).
func (c Category) Entity() string {
	switch c {
	case CategoryMusic:
		return "musicTrack"
	case CategorySoftware:
		return "software"
	case CategoryEbooks:
		return "ebook"
	default:
		return ""
	}
}

// Label returns the tab label.
func (c Category) Label() string {
	switch c {
	case CategoryMusic:
		return "Music"
	case CategorySoftware:
		return "Software"
	case CategoryEbooks:
		return "E-books"
	default:
		return "All"
	}
}

func (c Category) String() string {
	return strings.ToLower(c.Label())
}

// Next returns the following category, wrapping around.
func (c Category) Next() Category {
	return Categories[(c.index()+1)%len(Categories)]
}

// Prev returns the preceding category, wrapping around.
func (c Category) Prev() Category {
	return Categories[(c.index()+len(Categories)-1)%len(Categories)]
}

func (c Category) index() int {
	for i, cat := range Categories {
		if cat == c {
			return i
		}
	}
	return 0
}

// ParseCategory accepts a label ("music"), an entity token ("musicTrack")
// or "" for All. Matching is case-insensitive.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return CategoryAll, nil
	}
	for _, c := range Categories {
		if strings.EqualFold(s, c.String()) || strings.EqualFold(s, c.Label()) ||
			(c.Entity() != "" && strings.EqualFold(s, c.Entity())) {
			return c, nil
		}
	}
	switch strings.ToLower(s) {
	case "ebook", "ebooks", "books":
		return CategoryEbooks, nil
	case "apps", "app":
		return CategorySoftware, nil
	}
	return CategoryAll, fmt.Errorf("unknown category %q", s)
}
