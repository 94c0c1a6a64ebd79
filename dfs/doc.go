// Package dfs checks the one invariant mapping.ValidateUpdateOrder cares
// about: the tile dependency graph (producer tile -> consumer tile, one
// edge per wire) must be acyclic, and if it is, there must be a linear
// order consistent with it. DetectCycles finds any violation and reports
// every cycle responsible; TopologicalSort computes the order used to
// schedule tile updates within a tick.
package dfs
