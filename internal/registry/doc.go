// Package registry is the reservation consistency engine: six shared
// in-memory collections (publications, book copies, cards, patrons,
// card-patron links, reservations) kept mutually consistent with
// hand-enforced referential integrity and temporal lending rules.
//
// Every collection serializes its own read-modify-write sequences with
// one mutex held for the duration of each operation. Cross-collection
// operations take every mutex they need up front, always in the global
// order
//
//	publication -> book -> card -> patron -> link -> reservation
//
// and then run against the unexported *Locked helpers, so a constraint
// check can never interleave with a concurrent mutation of a consulted
// collection. No operation blocks on I/O; each one either completes or
// fails synchronously with a typed Error, leaving state untouched on
// failure.
package registry
