// Package schedule decides, once per tick after every Behavior has run
// its update, which idle communications may start transferring. A
// strategy must never grant two communications whose wire paths
// intersect in the same tick.
package schedule
