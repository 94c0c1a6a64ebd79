package analysis

import "encoding/json"

// Dense is a row-major dense matrix of float64, sized once at
// construction. It mirrors the flat-slice shape the teacher's own
// dense-matrix type used to expose (NewDense/At/Set/Rows/Cols).
type Dense struct {
	rows, cols int
	data       []float64
}

// NewDense returns a zero-valued rows×cols matrix.
func NewDense(rows, cols int) *Dense {
	return &Dense{rows: rows, cols: cols, data: make([]float64, rows*cols)}
}

// Rows reports the row count.
func (d *Dense) Rows() int { return d.rows }

// Cols reports the column count.
func (d *Dense) Cols() int { return d.cols }

// At returns the value at (i, j).
func (d *Dense) At(i, j int) float64 { return d.data[i*d.cols+j] }

// Set stores v at (i, j).
func (d *Dense) Set(i, j int, v float64) { d.data[i*d.cols+j] = v }

type denseJSON struct {
	Rows int       `json:"rows"`
	Cols int       `json:"cols"`
	Data []float64 `json:"data"`
}

// MarshalJSON exposes the otherwise-unexported shape so a Dense survives a
// round trip through engine.Persist's experiment records.
func (d *Dense) MarshalJSON() ([]byte, error) {
	return json.Marshal(denseJSON{Rows: d.rows, Cols: d.cols, Data: d.data})
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (d *Dense) UnmarshalJSON(b []byte) error {
	var dj denseJSON
	if err := json.Unmarshal(b, &dj); err != nil {
		return err
	}
	d.rows, d.cols, d.data = dj.Rows, dj.Cols, dj.Data
	return nil
}
