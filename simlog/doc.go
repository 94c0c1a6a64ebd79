// Package simlog provides the narrow structured-logging surface engine,
// mapping, and tile accept, backed by zerolog. Consumers depend on the
// Logger interface only, never on zerolog directly.
package simlog
