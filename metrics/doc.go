// Package metrics exposes the simulation's observable run statistics as
// Prometheus collectors: run duration, tick count, per-pair conflict
// ratio, and per-tile utilization.
package metrics
