package tile

import (
	"fmt"
	"math"

	"github.com/nocsim/nocsim/buffer"
	"github.com/nocsim/nocsim/item"
	"github.com/nocsim/nocsim/wire"
)

// Interval is a half-open time window [Start, End) during which the tile was
// actively computing one dependence step.
type Interval struct {
	Start, End float64
}

// Config carries everything needed to construct a Tile.
type Config struct {
	ID            int
	TaskID        int
	LayerID       int
	Position      wire.Position
	SourceTileIDs []int
	TargetTileIDs []int
	ControlTileID *int // non-nil if an upstream tile drives this tile's exit table
	ExitID        *int // non-nil if this tile itself emits exit decisions

	Dependences []DependenceTemplate
	ImageNum    int

	InputCapacity  int64
	OutputCapacity int64
	SampleList     [][]bool // sampleList[image][exitID]; required when ExitID != nil

	StartFlag bool // input buffer behaves as an inexhaustible external source
	EndFlag   bool // output buffer behaves as an unbounded sink
	ToExit    bool // this tile's own output buffer bypasses the watermark gate
}

// Behavior is the shape the engine drives every tick: advance to
// currentTime, report when next to be revisited, and confirm the tile's
// end-of-run invariants. Tile is the sole Behavior this core ships — a
// controlled or exit-emitting tile is not a distinct type, just the same
// Tile with ControlTileID/ExitID set, dispatched on those fields.
type Behavior interface {
	Update(currentTime float64) error
	NextEventTime() float64
	CheckFinish() error
}

// Tile implements Behavior.
type Tile struct {
	ID            int
	TaskID        int
	LayerID       int
	Position      wire.Position
	SourceTileIDs []int
	TargetTileIDs []int
	ControlTileID *int
	ExitID        *int

	Input  *buffer.InputBuffer
	Output *buffer.OutputBuffer

	exitTable *item.ExitTable
	stream    *computationStream

	running            bool
	computationID      int
	computationEndTime float64
	ranges             []Interval
}

// New builds a Tile whose computation list is rewritten from cfg.Dependences
// once per image pass (lazily, on demand).
func New(cfg Config) (*Tile, error) {
	if cfg.ImageNum <= 0 {
		return nil, fmt.Errorf("tile %d: image_num must be positive", cfg.ID)
	}
	var table *item.ExitTable
	if cfg.ControlTileID != nil {
		table = item.NewExitTable()
	}

	input := buffer.NewInputBuffer(cfg.InputCapacity, table)
	output := buffer.NewOutputBuffer(cfg.OutputCapacity, table, cfg.ToExit)
	if cfg.StartFlag {
		input.SetStart()
	}
	if cfg.EndFlag {
		output.SetEnd()
	}

	stream := newComputationStream(cfg.Dependences, cfg.ImageNum, cfg.ExitID, cfg.SampleList, controlRecordLength(cfg.ImageNum), cfg.ID)

	return &Tile{
		ID: cfg.ID, TaskID: cfg.TaskID, LayerID: cfg.LayerID, Position: cfg.Position,
		SourceTileIDs: cfg.SourceTileIDs, TargetTileIDs: cfg.TargetTileIDs,
		ControlTileID: cfg.ControlTileID, ExitID: cfg.ExitID,
		Input: input, Output: output, exitTable: table, stream: stream,
		computationEndTime: math.Inf(1),
	}, nil
}

// controlRecordLength mirrors the original implementation's byte-length
// formula for a control record: enough bits for the image index plus a
// fixed 11-bit header.
func controlRecordLength(imageNum int) int64 {
	return int64(math.Ceil(math.Log2(float64(imageNum)))) + 1 + 10
}

// IsSource reports whether this tile is the sole source of its task (the
// sentinel source_tile_id == [-1]). Source tiles must execute every pass;
// non-source tiles may legitimately stall if upstream early-exit drains them.
func (t *Tile) IsSource() bool {
	return len(t.SourceTileIDs) == 1 && t.SourceTileIDs[0] == -1
}

// Update advances the tile's state machine to currentTime. On completion
// of a running pass it either discards the output (if the image has since
// been marked for early exit) or drops the dependence's input items and
// appends its output items; it then attempts to start the next eligible
// pass, honoring the skip-ahead optimization and any now-exited images.
func (t *Tile) Update(currentTime float64) error {
	if t.running {
		if currentTime < t.computationEndTime {
			return nil
		}
		dep := t.stream.at(t.computationID)
		outImg := t.stream.imageOf(t.computationID)
		t.running = false
		t.computationID++

		if t.exitTable != nil && t.exitTable.Exited(outImg) {
			// image exited between start and completion; discard silently
		} else {
			if err := t.Input.Delete(dep.Drop); err != nil {
				return fmt.Errorf("tile %d: %w", t.ID, err)
			}
			t.Output.Add(dep.Output)
		}
	}

	total := t.stream.total()
	t.skipExitedImages(total)
	if t.computationID >= total {
		t.computationEndTime = math.Inf(1)
		return nil
	}

	if possibleImg, ok := t.Input.GetPossibleImageID(); ok {
		if err := t.skipAhead(total, possibleImg); err != nil {
			return err
		}
	}
	if t.computationID >= total {
		t.computationEndTime = math.Inf(1)
		return nil
	}

	dep := t.stream.at(t.computationID)
	if len(dep.Wait) == 0 && !t.IsSource() {
		return fmt.Errorf("tile %d: %w", t.ID, ErrEmptyWait)
	}
	if t.Input.CheckDataAlready(dep.Wait) && t.Output.CheckEnoughSpace(dep.Output) {
		if dep.Latency <= 0 {
			return fmt.Errorf("tile %d: %w", t.ID, ErrLatencyNonPositive)
		}
		t.running = true
		t.computationEndTime = currentTime + dep.Latency
		t.ranges = append(t.ranges, Interval{Start: currentTime, End: t.computationEndTime})
		return nil
	}
	t.computationEndTime = math.Inf(1)
	return nil
}

// skipExitedImages advances computationID past every upcoming pass whose
// image has already been signaled for early exit.
func (t *Tile) skipExitedImages(total int) {
	if t.exitTable == nil {
		return
	}
	for t.computationID < total && t.exitTable.Exited(t.stream.imageOf(t.computationID)) {
		t.computationID = t.stream.imageStart(t.stream.imageOf(t.computationID) + 1)
	}
}

// skipAhead implements the skip-ahead optimization: if the InputBuffer's
// next resident image exceeds the pending pass's expected wait image, jump
// forward by whole images. Requires passes to be strictly ordered by
// image_id, as documented for this core.
func (t *Tile) skipAhead(total, possibleImg int) error {
	for t.computationID < total {
		dep := t.stream.at(t.computationID)
		if len(dep.Wait) == 0 {
			return fmt.Errorf("tile %d: %w", t.ID, ErrEmptyWait)
		}
		if dep.Wait[0].ImageID >= possibleImg {
			return nil
		}
		t.computationID = t.stream.imageStart(t.stream.imageOf(t.computationID) + 1)
	}
	return nil
}

// NextEventTime returns the time the engine must next re-examine this
// tile: computationEndTime while running, +Inf otherwise (Update always
// leaves computationEndTime at +Inf when idle-and-blocked).
func (t *Tile) NextEventTime() float64 { return t.computationEndTime }

// UpdateExitTable records an incoming control decision and filters both
// buffers of now-exited images. Requires a controlled tile (ControlTileID != nil).
func (t *Tile) UpdateExitTable(items []item.DataItem) error {
	if t.exitTable == nil {
		return ErrNoExitTable
	}
	for _, it := range items {
		if err := t.exitTable.Observe(it.ImageID, it.ExitDecision()); err != nil {
			return fmt.Errorf("tile %d: %w", t.ID, err)
		}
	}
	if err := t.Input.FilterExitTable(); err != nil {
		return fmt.Errorf("tile %d: %w", t.ID, err)
	}
	if err := t.Output.FilterExitTable(); err != nil {
		return fmt.Errorf("tile %d: %w", t.ID, err)
	}
	return nil
}

// CheckFinish validates the end-of-run invariants: idle, no pending
// computation deadline, and (for source tiles only) every pass completed.
func (t *Tile) CheckFinish() error {
	if t.running {
		return fmt.Errorf("tile %d: %w", t.ID, ErrAlreadyRunning)
	}
	if t.IsSource() && t.computationID != t.stream.total() {
		return fmt.Errorf("tile %d: %w", t.ID, ErrNotFinished)
	}
	if !math.IsInf(t.computationEndTime, 1) {
		return fmt.Errorf("tile %d: %w", t.ID, ErrEndTimeNotInf)
	}
	if err := t.Input.CheckFinish(); err != nil {
		return fmt.Errorf("tile %d: %w", t.ID, err)
	}
	if err := t.Output.CheckFinish(); err != nil {
		return fmt.Errorf("tile %d: %w", t.ID, err)
	}
	return nil
}

// RunningRate returns the fraction of [0, endTime) spent actively computing.
func (t *Tile) RunningRate(endTime float64) float64 {
	if endTime <= 0 {
		return 0
	}
	var busy float64
	for _, r := range t.ranges {
		busy += r.End - r.Start
	}
	return busy / endTime
}

// ComputationRanges exposes every completed computation interval.
func (t *Tile) ComputationRanges() []Interval { return t.ranges }

// ComputationID exposes the current flat cursor, mostly for tests and diagnostics.
func (t *Tile) ComputationID() int { return t.computationID }

var _ Behavior = (*Tile)(nil)
