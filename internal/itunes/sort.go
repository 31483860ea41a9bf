package itunes

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortByName orders results by Name the way a file browser would: collated
// for tag, case-insensitive, and with digit runs compared as numbers. Equal
// names keep their relative order.
func SortByName(results []Result, tag language.Tag) {
	c := collate.New(tag, collate.IgnoreCase, collate.Numeric)
	slices.SortStableFunc(results, func(a, b Result) int {
		return c.CompareString(a.Name(), b.Name())
	})
}
