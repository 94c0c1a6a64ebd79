package communication

import (
	"fmt"
	"math"

	"github.com/nocsim/nocsim/buffer"
	"github.com/nocsim/nocsim/item"
	"github.com/nocsim/nocsim/wire"
)

type state int

const (
	stateIdle state = iota
	stateTransferring
)

// Interval is a half-open occupancy window [Start, End) recorded once a
// transfer completes.
type Interval struct {
	Start, End float64
}

// Communication binds a producer tile to a consumer tile through a routed
// wire path. It owns no tile; it only drains the producer's OutputBuffer
// and fills the consumer's InputBuffer.
type Communication struct {
	ID         int
	ProducerID int
	ConsumerID int
	LayerID    int

	output *buffer.OutputBuffer
	input  *buffer.InputBuffer
	net    *wire.Net
	path   []wire.Position

	state         state
	pending       []item.DataItem
	transferStart float64
	transferEnd   float64
	amount        int64
	ranges        []Interval

	onDeliver func([]item.DataItem) error
}

// New constructs a Communication in the idle state.
func New(id, producerID, consumerID, layerID int, output *buffer.OutputBuffer, input *buffer.InputBuffer, net *wire.Net, path []wire.Position) *Communication {
	return &Communication{
		ID: id, ProducerID: producerID, ConsumerID: consumerID, LayerID: layerID,
		output: output, input: input, net: net, path: path,
	}
}

// SetDeliverHook registers fn to run on every completed delivery, given the
// delivered items before the InputBuffer's own control-item filtering. Used
// to route a controlled tile's incoming exit decisions to
// tile.Tile.UpdateExitTable, since InputBuffer.Add silently discards
// control items rather than acting on them.
func (c *Communication) SetDeliverHook(fn func([]item.DataItem) error) {
	c.onDeliver = fn
}

// Update advances the state machine. If transferring and currentTime has
// reached transferEnd, it finalizes delivery: the reservation is consumed
// via InputBuffer.Add, the items are removed from the OutputBuffer, the
// occupied interval is recorded, and the wire path is freed.
func (c *Communication) Update(currentTime float64) error {
	if c.state != stateTransferring || currentTime < c.transferEnd {
		return nil
	}
	if err := c.input.Add(c.pending); err != nil {
		return fmt.Errorf("communication %d: deliver: %w", c.ID, err)
	}
	if err := c.output.Delete(c.pending); err != nil {
		return fmt.Errorf("communication %d: drain producer: %w", c.ID, err)
	}
	if err := c.net.SetDataPathState(c.path, false); err != nil {
		return fmt.Errorf("communication %d: free path: %w", c.ID, err)
	}
	if c.onDeliver != nil {
		if err := c.onDeliver(c.pending); err != nil {
			return fmt.Errorf("communication %d: deliver hook: %w", c.ID, err)
		}
	}
	c.ranges = append(c.ranges, Interval{Start: c.transferStart, End: c.transferEnd})
	c.state = stateIdle
	c.pending = nil
	return nil
}

// Idle reports whether the Communication currently has no in-flight transfer.
func (c *Communication) Idle() bool { return c.state == stateIdle }

// NextTransfer peeks the producer's next transferable batch. The engine
// does not unilaterally start a transfer from this; the schedule strategy
// decides.
func (c *Communication) NextTransfer() ([]item.DataItem, bool) {
	if c.state != stateIdle {
		return nil, false
	}
	return c.output.NextTransfer()
}

// Start is invoked by the schedule strategy once it has granted this
// Communication the right to occupy its wire path for this tick. It
// reserves consumer-side capacity, marks the path busy, and computes the
// transfer end time from the path's bandwidth.
func (c *Communication) Start(currentTime float64, items []item.DataItem) error {
	if c.state != stateIdle {
		return ErrAlreadyTransferring
	}
	duration, err := c.net.GetWireTransferTime(c.path, items)
	if err != nil {
		return fmt.Errorf("communication %d: %w", c.ID, err)
	}
	if err := c.net.SetDataPathState(c.path, true); err != nil {
		return fmt.Errorf("communication %d: %w", c.ID, err)
	}
	c.input.AddTransfer(items)
	c.pending = items
	c.transferStart = currentTime
	c.transferEnd = currentTime + duration
	c.amount = item.SizeOf(items)
	c.state = stateTransferring
	return nil
}

// EndTime returns transferEnd while transferring, or +Inf while idle.
func (c *Communication) EndTime() float64 {
	if c.state == stateTransferring {
		return c.transferEnd
	}
	return math.Inf(1)
}

// Path returns the routed wire path.
func (c *Communication) Path() []wire.Position { return c.path }

// Amount returns the size in bits of the most recently started transfer.
func (c *Communication) Amount() int64 { return c.amount }

// Ranges returns every completed occupancy interval, pairwise disjoint and
// strictly increasing in start time by construction.
func (c *Communication) Ranges() []Interval { return c.ranges }

// CheckFinish returns ErrNotFinished if a transfer is still in flight.
func (c *Communication) CheckFinish() error {
	if c.state == stateTransferring {
		return fmt.Errorf("communication %d: %w", c.ID, ErrNotFinished)
	}
	return nil
}
