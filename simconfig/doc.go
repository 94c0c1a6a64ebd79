// Package simconfig defines the YAML-serializable description of one
// simulation run — the task behavior lists, grid shape, buffer sizes,
// bandwidth, strategy selectors, and sample list spec.md §6 documents as
// the external interface — and loads/validates it from disk.
package simconfig
