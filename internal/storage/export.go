package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/san-kum/bifurc/internal/analysis"
)

// WriteCSV writes outputs as CSV: a header row "sample,r_0,r_1,..." followed
// by one row per captured sample. Values use the shortest representation
// that parses back to the same float64, so NaN and Inf survive as well.
func WriteCSV(w io.Writer, rVals []float64, outputs *analysis.Matrix) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, len(rVals)+1)
	header = append(header, "sample")
	for _, r := range rVals {
		header = append(header, formatFloat(r))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, len(rVals)+1)
	for i := 0; i < outputs.Rows(); i++ {
		row[0] = strconv.Itoa(i)
		for j := range rVals {
			row[j+1] = formatFloat(outputs.At(i, j))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadCSV parses the format written by WriteCSV.
func ReadCSV(r io.Reader) ([]float64, *analysis.Matrix, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrCorruptOutputs, err)
	}
	if len(records) == 0 || len(records[0]) == 0 || records[0][0] != "sample" {
		return nil, nil, fmt.Errorf("%w: missing header", ErrCorruptOutputs)
	}

	header := records[0][1:]
	rVals := make([]float64, len(header))
	for j, field := range header {
		if rVals[j], err = strconv.ParseFloat(field, 64); err != nil {
			return nil, nil, fmt.Errorf("%w: r value %d: %v", ErrCorruptOutputs, j, err)
		}
	}

	rows := records[1:]
	outputs := analysis.NewMatrix(len(rows), len(rVals))
	col := make([]float64, len(rows))
	for j := range rVals {
		for i, record := range rows {
			v, err := strconv.ParseFloat(record[j+1], 64)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: row %d column %d: %v", ErrCorruptOutputs, i, j, err)
			}
			col[i] = v
		}
		outputs.SetColumn(j, col)
	}
	return rVals, outputs, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// ExportData is the JSON form of a stored run. Columns follow RVals; a null
// entry stands for a NaN or infinite sample, which JSON cannot carry.
type ExportData struct {
	Metadata RunMetadata  `json:"metadata"`
	RVals    []float64    `json:"r_vals"`
	Columns  [][]*float64 `json:"columns"`
}

// ExportJSON writes meta and outputs to w as indented JSON.
func ExportJSON(w io.Writer, meta RunMetadata, rVals []float64, outputs *analysis.Matrix) error {
	data := ExportData{
		Metadata: meta,
		RVals:    rVals,
		Columns:  make([][]*float64, len(rVals)),
	}

	for j := range rVals {
		src := outputs.Column(j)
		col := make([]*float64, len(src))
		for i := range src {
			if math.IsNaN(src[i]) || math.IsInf(src[i], 0) {
				continue
			}
			col[i] = &src[i]
		}
		data.Columns[j] = col
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
