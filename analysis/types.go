package analysis

// Interval is a half-open occupancy window [Start, End) during which a
// communication held its wire path.
type Interval struct {
	Start, End float64
}

// CommunicationRecord is the immutable view Compute needs of one
// completed communication. It is deliberately decoupled from the
// communication package's own type: the engine builds one of these per
// *communication.Communication after a transparent pass, extracting
// Amount(), Ranges(), LayerID, and wire.PathKeys(Path()).
type CommunicationRecord struct {
	ID       int
	LayerID  int
	Amount   int64
	Ranges   []Interval
	PathKeys []string
}

// Result bundles everything a transparent pass's analysis produces.
type Result struct {
	Conflict *Dense
	Bool     *Dense
	RAmount  float64
	EAmount  float64
}
