package api

import "github.com/rickgao/coinboard/internal/model"

// MarketsOptions configures a GetMarkets request.
type MarketsOptions struct {
	Currency model.Currency
	Order    model.SortOrder
	Page     int
	PerPage  int
}

// OptionsFor builds the paged-listing request for a selection.
func OptionsFor(sel model.Selection) MarketsOptions {
	return MarketsOptions{
		Currency: sel.Currency,
		Order:    sel.Sort,
		Page:     sel.Page,
		PerPage:  sel.PageSize,
	}
}
