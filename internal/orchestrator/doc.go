// Package orchestrator implements the Fetch Orchestrator.
//
// The Orchestrator:
//   - Runs one fetch cycle at start and one per selection change
//   - Uses the id lookup while a search term is set, the paged listing otherwise
//   - Cancels the in-flight cycle when a newer one starts
//   - Drops outcomes of superseded cycles (latest trigger wins)
//   - Writes rows, error and loading back into the state store
package orchestrator
