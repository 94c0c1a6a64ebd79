package item

import "fmt"

// DataItem is a 10-field value exchanged between tiles. A payload item
// carries a slice of tensor data identified by (x, y); a control item
// signals an exit decision for an image and is distinguished by X < 0.
//
// Payload layout:  (X, Y, Start, End, Bit, Total, ImageID, LayerID, InID,  TileID)
// Control layout:  (-1,-1, -1,    -1,  -1,  -1,    ImageID, Exit,    Length, TileID)
//
// Field7 and Field8 are overloaded between the two shapes; use LayerID/InID
// for payload items and ExitDecision/Length for control items.
type DataItem struct {
	X, Y       int64
	Start, End int64
	Bit        int64
	Total      int64
	ImageID    int
	Field7     int64
	Field8     int64
	TileID     int
}

// NewPayload builds a normal payload DataItem.
func NewPayload(x, y, start, end, bit, total int64, imageID int, layerID, inID int64, tileID int) DataItem {
	return DataItem{
		X: x, Y: y,
		Start: start, End: end,
		Bit: bit, Total: total,
		ImageID: imageID,
		Field7:  layerID,
		Field8:  inID,
		TileID:  tileID,
	}
}

// NewControl builds a control DataItem carrying an exit decision.
func NewControl(imageID int, exit bool, length int64, tileID int) DataItem {
	f7 := int64(0)
	if exit {
		f7 = 1
	}
	return DataItem{
		X: -1, Y: -1,
		Start: -1, End: -1,
		Bit: -1, Total: -1,
		ImageID: imageID,
		Field7:  f7,
		Field8:  length,
		TileID:  tileID,
	}
}

// IsControl reports whether the item is a control record rather than payload.
func (d DataItem) IsControl() bool { return d.X < 0 }

// LayerID returns the producing layer of a payload item. Undefined for
// control items.
func (d DataItem) LayerID() int64 { return d.Field7 }

// InID returns the producing source-port of a payload item. Undefined for
// control items.
func (d DataItem) InID() int64 { return d.Field8 }

// ExitDecision reports whether a control item's image was selected for
// early exit. Undefined for payload items.
func (d DataItem) ExitDecision() bool { return d.Field7 != 0 }

// Length returns a control item's length in bits. Undefined for payload items.
func (d DataItem) Length() int64 { return d.Field8 }

// Size returns the item's occupancy in bits: (End-Start)*Bit for payload,
// Length for control.
func (d DataItem) Size() int64 {
	if d.IsControl() {
		return d.Field8
	}
	return (d.End - d.Start) * d.Bit
}

func (d DataItem) String() string {
	if d.IsControl() {
		return fmt.Sprintf("control(image=%d exit=%v len=%d tile=%d)", d.ImageID, d.ExitDecision(), d.Length(), d.TileID)
	}
	return fmt.Sprintf("payload(image=%d x=%d y=%d [%d:%d) bit=%d tile=%d)", d.ImageID, d.X, d.Y, d.Start, d.End, d.Bit, d.TileID)
}

// SizeOf sums Size() over a slice of items.
func SizeOf(items []DataItem) int64 {
	var total int64
	for _, it := range items {
		total += it.Size()
	}
	return total
}
