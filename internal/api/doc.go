// Package api provides the CoinGecko REST client used to load market rows.
//
// Endpoints (relative to the coins base, default https://api.coingecko.com/api/v3/coins):
//   - GET /markets?vs_currency&order&per_page&page&sparkline=false  (paged listing)
//   - GET /markets?vs_currency&ids                                   (exact id lookup)
//
// Requests are unauthenticated and never retried.
package api
