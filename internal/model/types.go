package model

import (
	"strings"
	"time"
)

// Defaults applied at session start.
const (
	DefaultPage     = 1
	DefaultPageSize = 10

	// PagedTotal is the synthetic row count reported to the pagination
	// control while browsing. The API exposes no real total.
	PagedTotal = 1000
)

// -----------------------------------------------------------------------------
// Filter selection
// -----------------------------------------------------------------------------

// Selection is the set of user inputs that drive a fetch.
type Selection struct {
	Currency Currency
	Sort     SortOrder
	Page     int    // 1-based
	PageSize int    // one of PageSizes
	Search   string // exact coin id, lower-cased; empty = browse
}

// DefaultSelection returns the selection a new session starts with.
func DefaultSelection() Selection {
	return Selection{
		Currency: CurrencyUSD,
		Sort:     SortMarketCapDesc,
		Page:     DefaultPage,
		PageSize: DefaultPageSize,
	}
}

// Searching reports whether the selection targets the by-id lookup.
func (s Selection) Searching() bool {
	return s.Search != ""
}

// Total returns the pagination total for the selection: PagedTotal while
// browsing, 0 while searching (the lookup is not paginated).
func (s Selection) Total() int {
	if s.Searching() {
		return 0
	}
	return PagedTotal
}

// NormalizeSearch lower-cases and trims a submitted search term.
func NormalizeSearch(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}

// -----------------------------------------------------------------------------
// Market rows
// -----------------------------------------------------------------------------

// MarketRow is one coin's market snapshot as returned by /coins/markets.
type MarketRow struct {
	ID     string `json:"id"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Image  string `json:"image"`

	CurrentPrice          *float64 `json:"current_price"`
	MarketCap             *float64 `json:"market_cap"`
	MarketCapRank         *int     `json:"market_cap_rank"`
	FullyDilutedValuation *float64 `json:"fully_diluted_valuation"`
	TotalVolume           *float64 `json:"total_volume"`
	High24h               *float64 `json:"high_24h"`
	Low24h                *float64 `json:"low_24h"`

	PriceChange24h               *float64 `json:"price_change_24h"`
	PriceChangePercentage24h     *float64 `json:"price_change_percentage_24h"`
	MarketCapChange24h           *float64 `json:"market_cap_change_24h"`
	MarketCapChangePercentage24h *float64 `json:"market_cap_change_percentage_24h"`

	CirculatingSupply *float64 `json:"circulating_supply"`
	TotalSupply       *float64 `json:"total_supply"`
	MaxSupply         *float64 `json:"max_supply"`

	ATH                 *float64 `json:"ath"`
	ATHChangePercentage *float64 `json:"ath_change_percentage"`
	ATHDate             string   `json:"ath_date"`
	ATL                 *float64 `json:"atl"`
	ATLChangePercentage *float64 `json:"atl_change_percentage"`
	ATLDate             string   `json:"atl_date"`
	LastUpdated         string   `json:"last_updated"`
}

// -----------------------------------------------------------------------------
// Fetch outcome
// -----------------------------------------------------------------------------

// FetchResult is the data half of the view: what the last fetch produced.
type FetchResult struct {
	Rows    []MarketRow
	Error   string // empty when the last cycle succeeded
	Loading bool
}

// FetchFailure is the single error kind surfaced to the view.
type FetchFailure struct {
	Message string
	Err     error
}

// NewFetchFailure converts any fetch error into a FetchFailure.
func NewFetchFailure(err error) *FetchFailure {
	if ff, ok := err.(*FetchFailure); ok {
		return ff
	}
	return &FetchFailure{Message: err.Error(), Err: err}
}

func (f *FetchFailure) Error() string {
	return f.Message
}

func (f *FetchFailure) Unwrap() error {
	return f.Err
}

// ErrorPolicy decides what happens to the displayed rows when a fetch fails.
type ErrorPolicy int

const (
	// KeepRows leaves the last good rows on screen next to the error.
	KeepRows ErrorPolicy = iota
	// ClearRows empties the table so it cannot disagree with the filters.
	ClearRows
)

// ParseErrorPolicy maps a config value ("keep_rows", "clear_rows").
func ParseErrorPolicy(s string) (ErrorPolicy, bool) {
	switch s {
	case "keep_rows":
		return KeepRows, true
	case "clear_rows":
		return ClearRows, true
	}
	return 0, false
}

func (p ErrorPolicy) String() string {
	if p == ClearRows {
		return "clear_rows"
	}
	return "keep_rows"
}

// Cycle describes one completed fetch for logging and metrics.
type Cycle struct {
	Seq      uint64
	Search   bool
	Rows     int
	Err      error
	Applied  bool
	Duration time.Duration
}
