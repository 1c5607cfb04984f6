// Package monitor orchestrates one check cycle over the monitored
// parking page: fetch markup, parse it into a state, load the previous
// state, persist the current one, decide, and notify on a Send
// decision. The ordering is part of the contract: persist happens
// before notify, and a fetch failure is the only error that aborts the
// cycle without producing any output.
package monitor
