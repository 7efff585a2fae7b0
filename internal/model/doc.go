// Package model defines shared data types used across the coinboard dashboard.
//
// Conventions:
//   - Currencies and sort orders are closed variants with a display label.
//   - Market rows mirror the CoinGecko /coins/markets response shape;
//     nullable numeric fields are pointers.
//   - Timestamps from the API are kept as the ISO 8601 strings it returns.
package model
