package analysis

// Matrix holds stable outputs: one row per captured sample, one column per r
// value. Storage is column-major so a sweep writes each column contiguously.
type Matrix struct {
	rows, cols int
	data       []float64
}

// NewMatrix allocates a zeroed rows x cols matrix. Negative sizes are
// treated as zero.
func NewMatrix(rows, cols int) *Matrix {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	return &Matrix{
		rows: rows,
		cols: cols,
		data: make([]float64, rows*cols),
	}
}

func (m *Matrix) Rows() int { return m.rows }
func (m *Matrix) Cols() int { return m.cols }

// At returns the sample in row i of column j.
func (m *Matrix) At(i, j int) float64 {
	return m.data[j*m.rows+i]
}

// Column returns column j as a view into the matrix. Callers must not
// modify it.
func (m *Matrix) Column(j int) []float64 {
	start := j * m.rows
	return m.data[start : start+m.rows : start+m.rows]
}

// SetColumn copies src into column j. Only the first Rows() values are used.
func (m *Matrix) SetColumn(j int, src []float64) {
	start := j * m.rows
	copy(m.data[start:start+m.rows], src)
}

// Row returns a copy of row i across all columns.
func (m *Matrix) Row(i int) []float64 {
	out := make([]float64, m.cols)
	for j := range out {
		out[j] = m.data[j*m.rows+i]
	}
	return out
}
