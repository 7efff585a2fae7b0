// Package state implements the View State Store.
//
// The Store holds the user's filter selection, the last fetch outcome and
// the text of the code panel. Setters are plain replacements (pagination
// sets page and size together); there is no cross-field validation.
// Setters that change a fetch input post a notification on Changes so the
// orchestrator can start a new cycle.
package state
