package communication_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nocsim/nocsim/builder"
	"github.com/nocsim/nocsim/buffer"
	"github.com/nocsim/nocsim/communication"
	"github.com/nocsim/nocsim/item"
	"github.com/nocsim/nocsim/wire"
)

func newNet(t *testing.T) *wire.Net {
	t.Helper()
	g, err := builder.BuildGraph(nil, nil, builder.Grid(1, 2))
	require.NoError(t, err)
	n, err := wire.NewNet(g, 1, 2, 8) // 8 bits/unit-time
	require.NoError(t, err)
	return n
}

func TestCommunication_FullTransferCycle(t *testing.T) {
	net := newNet(t)
	path := []wire.Position{{Row: 0, Col: 0}, {Row: 0, Col: 1}}

	out := buffer.NewOutputBuffer(1024, nil, false)
	in := buffer.NewInputBuffer(1024, nil)

	payload := item.NewPayload(0, 0, 0, 8, 8, 100, 0, 0, 0, 1) // 64 bits
	out.Add([]item.DataItem{payload})

	comm := communication.New(0, 1, 2, 0, out, in, net, path)

	batch, ok := comm.NextTransfer()
	require.True(t, ok)
	require.Equal(t, math.Inf(1), comm.EndTime())

	require.NoError(t, comm.Start(0, batch))
	require.False(t, comm.Idle())
	require.Equal(t, 8.0, comm.EndTime()) // 64 bits / 8 bandwidth

	busy, err := net.GetDataPathState(path)
	require.NoError(t, err)
	require.False(t, busy)

	require.NoError(t, comm.Update(5)) // not yet
	require.False(t, comm.Idle())

	require.NoError(t, comm.Update(8))
	require.True(t, comm.Idle())
	require.True(t, in.CheckDataAlready([]item.DataItem{payload}))

	free, err := net.GetDataPathState(path)
	require.NoError(t, err)
	require.True(t, free)

	require.Len(t, comm.Ranges(), 1)
	require.Equal(t, 0.0, comm.Ranges()[0].Start)
	require.Equal(t, 8.0, comm.Ranges()[0].End)
	require.NoError(t, comm.CheckFinish())
}

func TestCommunication_StartWhileTransferringFails(t *testing.T) {
	net := newNet(t)
	path := []wire.Position{{Row: 0, Col: 0}, {Row: 0, Col: 1}}
	out := buffer.NewOutputBuffer(1024, nil, false)
	in := buffer.NewInputBuffer(1024, nil)
	payload := item.NewPayload(0, 0, 0, 8, 8, 100, 0, 0, 0, 1)
	out.Add([]item.DataItem{payload})

	comm := communication.New(0, 1, 2, 0, out, in, net, path)
	batch, _ := comm.NextTransfer()
	require.NoError(t, comm.Start(0, batch))

	err := comm.Start(1, batch)
	require.ErrorIs(t, err, communication.ErrAlreadyTransferring)
}
