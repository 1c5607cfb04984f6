// Package parser implements tiered availability detection for the
// monitored parking page.
//
// Tier one is a structured lookup: the status indicator element inside
// the facility detail panel is classified through an ordered rule table
// over its class attribute. Tier two is a lowercase keyword scan of the
// whole page text, used only when the indicator element is entirely
// absent; that case also dumps the raw markup to a side file so the
// changed page can be inspected by hand. Parse never returns an error:
// every detection failure degrades to a safe "no vacancy" state.
package parser
