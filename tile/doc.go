// Package tile implements the per-tile behavior state machine: an
// InputBuffer/OutputBuffer pair driven by a dependence list that is
// unrolled lazily across image_num passes rather than materialized
// upfront. A tile with a non-nil ExitID is a tagged variant (dispatch on
// a field, not an embedded type) whose every dependence step emits a
// control record carrying that image's externally supplied exit decision
// instead of its normal payload output.
package tile
