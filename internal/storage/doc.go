// Package storage provides JSON-based persistence for the last-known
// parking state.
//
// The store holds at most one record, overwritten after every
// successful fetch and parse. Absence of the file is the expected
// "no prior observation" condition on a first run, not an error.
package storage
