package web

import (
	"strconv"
	"strings"

	"github.com/rickgao/coinboard/internal/model"
	"github.com/rickgao/coinboard/internal/state"
)

const (
	fallbackImage = "/static/no-image.svg"
	unknownName   = "unknown"

	// Page links shown on each side of the current page.
	pageWindow = 2
)

type option struct {
	Value    string
	Label    string
	Selected bool
}

type rowView struct {
	ID             string
	Name           string
	Image          string
	Price          string
	Supply         string
	Change         string
	ChangeClass    string
	ChangePct      string
	ChangePctClass string
}

type pageLink struct {
	Number  int
	Current bool
	Gap     bool
}

type paginationView struct {
	Page     int
	PageSize int
	Total    int
	Pages    int
	Prev     int // 0 when on the first page
	Next     int // 0 when on the last page
	Links    []pageLink
	Sizes    []option
}

type pageData struct {
	Error         string
	Loading       bool
	Currencies    []option
	Sorts         []option
	Search        string
	CurrencyCode  string
	CurrencyLower string
	Rows          []rowView
	Pagination    *paginationView
	Code          string
	Version       string
}

func buildPage(v state.View, version string) pageData {
	sel := v.Selection
	nf := newNumberFormatter()

	d := pageData{
		Error:         v.Error,
		Loading:       v.Loading,
		Search:        sel.Search,
		CurrencyCode:  sel.Currency.Code(),
		CurrencyLower: strings.ToLower(sel.Currency.Code()),
		Code:          v.Code,
		Version:       version,
	}

	for _, c := range model.Currencies() {
		d.Currencies = append(d.Currencies, option{Value: c.Code(), Label: c.Label(), Selected: c == sel.Currency})
	}
	for _, s := range model.SortOrders() {
		d.Sorts = append(d.Sorts, option{Value: s.Value(), Label: s.Label(), Selected: s == sel.Sort})
	}

	for _, r := range v.Rows {
		row := rowView{
			ID:             r.ID,
			Name:           r.Name,
			Image:          r.Image,
			Price:          nf.Price(r.CurrentPrice),
			Supply:         nf.Supply(r.CirculatingSupply),
			Change:         FormatFixed(r.PriceChange24h),
			ChangeClass:    Classify(r.PriceChange24h),
			ChangePct:      FormatFixed(r.PriceChangePercentage24h),
			ChangePctClass: Classify(r.PriceChangePercentage24h),
		}
		if row.Name == "" {
			row.Name = unknownName
		}
		if row.Image == "" {
			row.Image = fallbackImage
		}
		d.Rows = append(d.Rows, row)
	}

	if v.Total > 0 {
		d.Pagination = buildPagination(sel.Page, sel.PageSize, v.Total)
	}

	return d
}

// pageCount returns the number of pages total rows span at size per page.
func pageCount(total, size int) int {
	if size <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

func buildPagination(page, size, total int) *paginationView {
	pages := pageCount(total, size)
	p := &paginationView{
		Page:     page,
		PageSize: size,
		Total:    total,
		Pages:    pages,
	}
	if page > 1 {
		p.Prev = page - 1
	}
	if page < pages {
		p.Next = page + 1
	}

	gap := false
	for n := 1; n <= pages; n++ {
		if n == 1 || n == pages || (n >= page-pageWindow && n <= page+pageWindow) {
			p.Links = append(p.Links, pageLink{Number: n, Current: n == page})
			gap = false
			continue
		}
		if !gap {
			p.Links = append(p.Links, pageLink{Gap: true})
			gap = true
		}
	}

	for _, s := range model.PageSizes {
		p.Sizes = append(p.Sizes, option{Value: strconv.Itoa(s), Label: strconv.Itoa(s) + " / page", Selected: s == size})
	}

	return p
}

// clampPage keeps page within the pages spanned by total at size. With no
// total (search results) the page is left as is.
func clampPage(page, size, total int) int {
	pages := pageCount(total, size)
	if pages > 0 && page > pages {
		return pages
	}
	return page
}
