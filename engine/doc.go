// Package engine drives the per-tick event loop over a mapped set of
// tiles and communications, runs the transparent/opaque double pass, and
// assembles the resulting experiment record.
package engine
