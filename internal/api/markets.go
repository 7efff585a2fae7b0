package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/rickgao/coinboard/internal/model"
)

// GetMarkets fetches one page of all tracked coins, converted to
// opts.Currency and ordered by opts.Order. Sparkline data is never requested.
func (c *Client) GetMarkets(ctx context.Context, opts MarketsOptions) ([]model.MarketRow, error) {
	query := url.Values{}
	query.Set("vs_currency", opts.Currency.Code())
	query.Set("order", opts.Order.Value())
	query.Set("per_page", strconv.Itoa(opts.PerPage))
	query.Set("page", strconv.Itoa(opts.Page))
	query.Set("sparkline", "false")

	var rows []model.MarketRow
	if err := c.get(ctx, "/markets", query, &rows); err != nil {
		return nil, fmt.Errorf("get markets: %w", err)
	}
	if rows == nil {
		rows = []model.MarketRow{}
	}

	return rows, nil
}

// GetMarketsByIDs fetches market rows for the given exact coin ids.
// Unknown ids are not an error; the result is simply empty.
func (c *Client) GetMarketsByIDs(ctx context.Context, ids []string, currency model.Currency) ([]model.MarketRow, error) {
	query := url.Values{}
	query.Set("vs_currency", currency.Code())
	query.Set("ids", strings.Join(ids, ","))

	var rows []model.MarketRow
	if err := c.get(ctx, "/markets", query, &rows); err != nil {
		return nil, fmt.Errorf("get markets %s: %w", strings.Join(ids, ","), err)
	}
	if rows == nil {
		rows = []model.MarketRow{}
	}

	return rows, nil
}
