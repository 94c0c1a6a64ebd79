package engine

import (
	"github.com/google/uuid"

	"github.com/nocsim/nocsim/analysis"
	"github.com/nocsim/nocsim/communication"
	"github.com/nocsim/nocsim/wire"
)

// CommunicationInfo is the per-communication slice of one ExperimentRecord,
// per spec.md §6's communication_info_list shape.
type CommunicationInfo struct {
	ID      int
	LayerID int
	Amount  int64
	RangeT  []communication.Interval // transparent-pass occupancy
	RangeO  []communication.Interval // opaque-pass occupancy
	Path    []string                 // canonical wire keys
}

// ExperimentRecord is the output of one completed run, per spec.md §6:
// conflict_matrix, bool_matrix, communication_info_list, latency, fitness.
type ExperimentRecord struct {
	RunID                 uuid.UUID
	ConflictMatrix        *analysis.Dense
	BoolMatrix            *analysis.Dense
	CommunicationInfoList []CommunicationInfo
	Latency               float64
	TickCount             int
	Fitness               float64
	TileUtilization       map[int]float64
}

func communicationRecords(comms []*communication.Communication) []analysis.CommunicationRecord {
	out := make([]analysis.CommunicationRecord, len(comms))
	for i, c := range comms {
		out[i] = analysis.CommunicationRecord{
			ID:       c.ID,
			LayerID:  c.LayerID,
			Amount:   c.Amount(),
			Ranges:   toAnalysisIntervals(c.Ranges()),
			PathKeys: pathKeysOf(c),
		}
	}
	return out
}

func toAnalysisIntervals(ranges []communication.Interval) []analysis.Interval {
	out := make([]analysis.Interval, len(ranges))
	for i, r := range ranges {
		out[i] = analysis.Interval{Start: r.Start, End: r.End}
	}
	return out
}

func pathKeysOf(c *communication.Communication) []string {
	return wire.PathKeys(c.Path())
}

func newRunID() uuid.UUID {
	return uuid.New()
}
