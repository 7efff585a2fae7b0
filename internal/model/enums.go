package model

import (
	"fmt"
	"strings"
)

// -----------------------------------------------------------------------------
// Currency
// -----------------------------------------------------------------------------

// Currency is a quote currency the dashboard can convert prices into.
type Currency int

const (
	CurrencyUSD Currency = iota
	CurrencyEUR
)

var currencyCodes = [...]string{
	CurrencyUSD: "USD",
	CurrencyEUR: "EUR",
}

// Currencies returns all supported currencies in display order.
func Currencies() []Currency {
	return []Currency{CurrencyUSD, CurrencyEUR}
}

// Code returns the value sent as vs_currency (e.g. "USD").
func (c Currency) Code() string {
	if !c.Valid() {
		return ""
	}
	return currencyCodes[c]
}

// Label returns the selector label. Currencies are labelled by their code.
func (c Currency) Label() string {
	return c.Code()
}

// Valid reports whether c is a known currency.
func (c Currency) Valid() bool {
	return c >= CurrencyUSD && int(c) < len(currencyCodes)
}

func (c Currency) String() string {
	return c.Code()
}

// ParseCurrency maps a currency code (case-insensitive) to a Currency.
func ParseCurrency(s string) (Currency, error) {
	for _, c := range Currencies() {
		if strings.EqualFold(s, c.Code()) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown currency %q", s)
}

// -----------------------------------------------------------------------------
// Sort order
// -----------------------------------------------------------------------------

// SortOrder is the server-side ordering applied to the paged markets listing.
type SortOrder int

const (
	SortMarketCapDesc SortOrder = iota
	SortMarketCapAsc
)

var sortOrders = [...]struct {
	value string
	label string
}{
	SortMarketCapDesc: {value: "market_cap_desc", label: "Market cap descending"},
	SortMarketCapAsc:  {value: "market_cap_asc", label: "Market cap ascending"},
}

// SortOrders returns all supported sort orders in display order.
func SortOrders() []SortOrder {
	return []SortOrder{SortMarketCapDesc, SortMarketCapAsc}
}

// Value returns the value sent as the order query parameter.
func (s SortOrder) Value() string {
	if !s.Valid() {
		return ""
	}
	return sortOrders[s].value
}

// Label returns the selector label.
func (s SortOrder) Label() string {
	if !s.Valid() {
		return ""
	}
	return sortOrders[s].label
}

// Valid reports whether s is a known sort order.
func (s SortOrder) Valid() bool {
	return s >= SortMarketCapDesc && int(s) < len(sortOrders)
}

func (s SortOrder) String() string {
	return s.Value()
}

// ParseSortOrder maps an order value (e.g. "market_cap_asc") to a SortOrder.
func ParseSortOrder(v string) (SortOrder, error) {
	for _, s := range SortOrders() {
		if v == s.Value() {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown sort order %q", v)
}

// -----------------------------------------------------------------------------
// Page size
// -----------------------------------------------------------------------------

// PageSizes are the page sizes offered by the table pagination.
var PageSizes = []int{5, 10, 20, 50, 100}

// ValidPageSize reports whether n is one of PageSizes.
func ValidPageSize(n int) bool {
	for _, size := range PageSizes {
		if n == size {
			return true
		}
	}
	return false
}
