// Package buffer implements the per-tile InputBuffer and OutputBuffer:
// fixed-capacity (unless flagged as a source or sink) holders of in-flight
// DataItems. InputBuffer additionally tracks reserved-but-undelivered
// transfer data so capacity accounting includes items still crossing
// wires, and memoizes membership checks behind a monotone version counter
// invalidated on every mutation.
package buffer
