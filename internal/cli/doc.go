// Package cli implements the command-line interface for parkwatch.
//
// The cli package provides the Cobra-based CLI that wires config,
// logging, fetcher, parser, storage and notifier into one check cycle.
// Exit codes: 0 checked with nothing to report, 1 error, 2 notification
// sent.
package cli
