package buffer

import (
	"math"

	"github.com/nocsim/nocsim/item"
)

// OutputBuffer holds items waiting to be transferred to a consumer tile.
// Its watermark gate withholds items whose image has not yet cleared the
// tile's exit table, unless this buffer belongs to the tile driving the
// exit decision (toExit).
type OutputBuffer struct {
	capacity int64
	used     int64
	data     []item.DataItem

	exitTable *item.ExitTable
	toExit    bool
	endFlag   bool
}

// NewOutputBuffer returns an empty OutputBuffer of the given capacity in
// bits. exitTable may be nil for an uncontrolled tile; toExit marks the
// buffer of the tile that itself produces exit decisions, exempting it
// from the watermark gate.
func NewOutputBuffer(capacity int64, exitTable *item.ExitTable, toExit bool) *OutputBuffer {
	return &OutputBuffer{capacity: capacity, exitTable: exitTable, toExit: toExit}
}

// SetEnd marks the buffer as a sink with unbounded effective capacity.
func (b *OutputBuffer) SetEnd() { b.endFlag = true }

// CheckRemainSize returns capacity minus resident bytes, or unbounded for a sink.
func (b *OutputBuffer) CheckRemainSize() int64 {
	if b.endFlag {
		return math.MaxInt64
	}
	return b.capacity - b.used
}

// CheckEnoughSpace reports whether items would fit in the remaining space.
func (b *OutputBuffer) CheckEnoughSpace(items []item.DataItem) bool {
	return b.CheckRemainSize() >= item.SizeOf(items)
}

// Add appends items to the buffer. Capacity must already have been
// checked by the caller via CheckEnoughSpace.
func (b *OutputBuffer) Add(items []item.DataItem) {
	for _, it := range items {
		b.data = append(b.data, it)
		b.used += it.Size()
	}
}

// NextTransfer returns the single-item batch at the head of the buffer,
// unless the buffer is a sink, empty, or the head's image has not yet
// cleared the exit-table watermark for a non-exit-driving tile.
func (b *OutputBuffer) NextTransfer() ([]item.DataItem, bool) {
	if b.endFlag || len(b.data) == 0 {
		return nil, false
	}
	head := b.data[0]
	if b.exitTable != nil && !b.toExit && head.ImageID > b.exitTable.Watermark() {
		return nil, false
	}
	return []item.DataItem{head}, true
}

// Delete removes items from the buffer after a Communication has drained
// them. Returns ErrNotResident if an item is not present.
func (b *OutputBuffer) Delete(items []item.DataItem) error {
	for _, it := range items {
		idx := indexOf(b.data, it)
		if idx < 0 {
			return ErrNotResident
		}
		b.used -= it.Size()
		b.data = append(b.data[:idx], b.data[idx+1:]...)
	}
	return nil
}

// FilterExitTable drops every resident item whose image_id has been
// signaled for early exit. Requires a configured exit table.
func (b *OutputBuffer) FilterExitTable() error {
	if b.exitTable == nil {
		return ErrExitTableNil
	}
	kept := b.data[:0:0]
	for _, it := range b.data {
		if b.exitTable.Exited(it.ImageID) {
			b.used -= it.Size()
			continue
		}
		kept = append(kept, it)
	}
	b.data = kept
	return nil
}

// CheckFinish returns ErrNotEmpty unless the buffer is empty (sinks with
// end_flag are exempt).
func (b *OutputBuffer) CheckFinish() error {
	if b.endFlag {
		return nil
	}
	if len(b.data) != 0 {
		return ErrNotEmpty
	}
	return nil
}
