// SPDX-License-Identifier: MIT
// Package: nocsim/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations attach context using %w at the call site.

package builder

import "errors"

// ErrTooFewVertices indicates that rows or cols is smaller than the
// minimum allowed grid dimension.
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrConstructFailed indicates BuildGraph was given a nil Constructor.
// Usage: if errors.Is(err, ErrConstructFailed) { /* fix the constructor list */ }.
var ErrConstructFailed = errors.New("builder: construction failed")
