// Package metrics provides Prometheus metrics for monitoring.
//
// Key metrics:
//   - coinboard_fetch_cycles_total{outcome}: succeeded, failed, discarded
//   - coinboard_fetch_cycle_duration_seconds: applied cycle latency
//   - coinboard_fetch_rows: rows returned by the last applied cycle
//   - Go runtime and process collectors
//
// The Tracker also keeps a small summary (min / max / avg, last cycle,
// uptime) for the health endpoint.
package metrics
