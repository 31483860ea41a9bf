package app

import (
	"github.com/llehouerou/storesearch/internal/session"
)

// SearchDoneMsg carries the outcome of a request back to Update, where the
// session decides whether it still applies.
type SearchDoneMsg struct {
	Req     *session.Request
	Outcome session.Outcome
}

// HistorySavedMsg is sent after a successful search was recorded.
type HistorySavedMsg struct {
	Err error
}

// HistoryClearedMsg is sent after the recent searches were removed.
type HistoryClearedMsg struct {
	Err error
}

// StoreOpenedMsg is sent after the browser was asked to open a store page.
type StoreOpenedMsg struct {
	URL string
	Err error
}
