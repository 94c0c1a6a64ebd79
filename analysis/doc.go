// Package analysis derives the conflict matrix, boolean conflict matrix,
// and equivalent-communication amount from a transparent-pass run. It is
// purely functional: Compute takes an immutable snapshot of each
// communication's occupancy and touches no simulation state.
package analysis
