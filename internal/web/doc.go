// Package web serves the dashboard.
//
// Routes:
//   - GET  /            server-rendered dashboard
//   - POST /currency    {currency}
//   - POST /sort        {order}
//   - POST /search      {q}; an empty term returns to the paged listing
//   - POST /page        {page, size}
//   - POST /code        {code}
//   - POST /refresh     re-run the current selection
//   - GET  /api/state   JSON snapshot of the view state
//   - GET  /health      status, version and fetch-cycle stats
//   - GET  /metrics     Prometheus exposition
//
// Every POST updates the state store and redirects back to /. Fetches run
// in the background; while one is in flight the page refreshes itself.
package web
