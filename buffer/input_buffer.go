package buffer

import (
	"math"
	"strings"

	"github.com/nocsim/nocsim/item"
)

// checkMemo caches the result of the most recent CheckDataAlready query,
// valid only while the buffer's version counter has not advanced since it
// was computed.
type checkMemo struct {
	version uint64
	key     string
	result  bool
	valid   bool
}

// InputBuffer holds items already delivered to a tile plus a reservation
// ledger (transferData) of items currently crossing wires toward it, so
// in-flight bytes count against capacity before they physically arrive.
type InputBuffer struct {
	capacity  int64
	used      int64
	transfer  []item.DataItem
	transferN int64
	data      []item.DataItem
	exitTable *item.ExitTable

	startFlag bool
	endFlag   bool

	version uint64
	memo    checkMemo
}

// NewInputBuffer returns an empty InputBuffer of the given capacity in
// bits. exitTable may be nil for an uncontrolled tile.
func NewInputBuffer(capacity int64, exitTable *item.ExitTable) *InputBuffer {
	return &InputBuffer{capacity: capacity, exitTable: exitTable}
}

// SetStart marks the buffer as an inexhaustible source: writes become
// no-ops and membership checks always succeed.
func (b *InputBuffer) SetStart() { b.startFlag = true }

// SetEnd marks the buffer as a sink with unbounded effective capacity.
func (b *InputBuffer) SetEnd() { b.endFlag = true }

func (b *InputBuffer) bump() {
	b.version++
	b.memo.valid = false
}

// CheckRemainSize returns capacity minus resident minus in-flight bytes.
func (b *InputBuffer) CheckRemainSize() int64 {
	if b.endFlag {
		return math.MaxInt64
	}
	return b.capacity - b.used - b.transferN
}

// CheckEnoughSpace reports whether items would fit in the remaining space.
func (b *InputBuffer) CheckEnoughSpace(items []item.DataItem) bool {
	return b.CheckRemainSize() >= item.SizeOf(items)
}

// AddTransfer reserves capacity for items currently crossing wires toward
// this buffer, ahead of their eventual delivery via Add.
func (b *InputBuffer) AddTransfer(items []item.DataItem) {
	if b.startFlag {
		return
	}
	b.transfer = append(b.transfer, items...)
	b.transferN += item.SizeOf(items)
}

// Add finalizes delivery of items that were previously reserved via
// AddTransfer: it consumes the matching reservations, drops control items
// and any item whose image has already been signaled for exit, and
// appends the remainder. Returns ErrNotReserved if an item has no matching
// reservation. On a start-flagged buffer Add is a no-op.
func (b *InputBuffer) Add(items []item.DataItem) error {
	if b.startFlag {
		return nil
	}
	for _, it := range items {
		idx := indexOf(b.transfer, it)
		if idx < 0 {
			return ErrNotReserved
		}
		b.transferN -= it.Size()
		b.transfer = append(b.transfer[:idx], b.transfer[idx+1:]...)
	}

	var kept []item.DataItem
	for _, it := range items {
		if it.IsControl() {
			continue
		}
		if b.exitTable != nil && b.exitTable.Exited(it.ImageID) {
			continue
		}
		kept = append(kept, it)
	}
	for _, it := range kept {
		b.data = append(b.data, it)
		b.used += it.Size()
	}
	b.bump()
	return nil
}

// CheckDataAlready reports whether every item in items is currently
// resident, memoized against the buffer's version counter.
func (b *InputBuffer) CheckDataAlready(items []item.DataItem) bool {
	if b.startFlag {
		return true
	}
	key := memoKey(items)
	if b.memo.valid && b.memo.version == b.version && b.memo.key == key {
		return b.memo.result
	}
	result := true
	for _, it := range items {
		if indexOf(b.data, it) < 0 {
			result = false
			break
		}
	}
	b.memo = checkMemo{version: b.version, key: key, result: result, valid: true}
	return result
}

// Delete removes items from the buffer, invalidating the memo. A
// start-flagged buffer silently ignores deletes (nothing is ever resident).
func (b *InputBuffer) Delete(items []item.DataItem) error {
	if b.startFlag {
		return nil
	}
	for _, it := range items {
		idx := indexOf(b.data, it)
		if idx < 0 {
			return ErrNotResident
		}
		b.used -= it.Size()
		b.data = append(b.data[:idx], b.data[idx+1:]...)
	}
	b.bump()
	return nil
}

// FilterExitTable drops every resident item whose image_id has been
// signaled for early exit. Requires a configured exit table.
func (b *InputBuffer) FilterExitTable() error {
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
	b.bump()
	return nil
}

// GetPossibleImageID peeks the head item's image_id, enabling the tile's
// skip-ahead optimization. Returns false if the buffer is empty or a
// source.
func (b *InputBuffer) GetPossibleImageID() (int, bool) {
	if b.startFlag || len(b.data) == 0 {
		return 0, false
	}
	return b.data[0].ImageID, true
}

// CheckFinish returns ErrNotEmpty unless the buffer is empty (sinks with
// end_flag are exempt).
func (b *InputBuffer) CheckFinish() error {
	if b.endFlag {
		return nil
	}
	if len(b.data) != 0 {
		return ErrNotEmpty
	}
	return nil
}

func indexOf(items []item.DataItem, target item.DataItem) int {
	for i, it := range items {
		if it == target {
			return i
		}
	}
	return -1
}

func memoKey(items []item.DataItem) string {
	var sb strings.Builder
	for _, it := range items {
		sb.WriteString(it.String())
		sb.WriteByte(';')
	}
	return sb.String()
}
