// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for consistent sizing across UI components.
const (
	// ScrollMargin is the number of results kept visible above/below the cursor.
	ScrollMargin = 3

	// BorderHeight is the vertical space consumed by a standard panel border.
	BorderHeight = 2

	// HeaderHeight is the space for the results header + separator.
	HeaderHeight = 2

	// PanelOverhead is the vertical overhead of the results panel.
	PanelOverhead = BorderHeight + HeaderHeight

	// SearchBarHeight is the title line, the input and the category tabs.
	SearchBarHeight = 3

	// FooterHeight is the status line plus the key hints.
	FooterHeight = 2

	// ArtworkCols and ArtworkRows size the artwork in the detail popup.
	ArtworkCols = 16
	ArtworkRows = 8
)
