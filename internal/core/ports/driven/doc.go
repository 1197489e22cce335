// Package driven defines interfaces the core services depend on.
// Implementations live in internal/adapters/driven. These are the
// "driven" ports in hexagonal architecture terminology - the
// application drives them.
package driven
