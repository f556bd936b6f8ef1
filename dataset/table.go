// SPDX-License-Identifier: MIT

package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/katalvlaran/lvpca/matrix"
)

// DefaultLabelName is the header WriteCSV uses for the label column.
const DefaultLabelName = "label"

// Table is a numeric feature table with optional per-row labels.
// X is n×d; Features names its columns; Labels is nil or has length n.
type Table struct {
	Features []string
	X        *matrix.Dense
	Labels   []string
}

// Samples returns n.
func (t *Table) Samples() int { return t.X.Rows() }

// ReadCSV loads a headed CSV. labelColumn names the column holding class
// labels; "" means every column is a feature.
// Implementation:
//   - Stage 1: Read raw records; fewer than 2 (header + one row) is ErrEmpty.
//   - Stage 2: Load them into a gota DataFrame with every column typed as
//     string, so numeric parsing below sees the original text.
//   - Stage 3: Split off the label column, parse the rest into a Dense.
//
// Errors:
//   - ErrEmpty, ErrUnknownColumn, ErrNoFeatures, ErrNonNumeric,
//     wrapped csv errors for malformed input.
func ReadCSV(r io.Reader, labelColumn string) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("dataset: read csv: %w", err)
	}
	if len(records) < 2 {
		return nil, ErrEmpty
	}

	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("dataset: load records: %w", df.Err)
	}

	names := df.Names()
	t := &Table{}
	found := labelColumn == ""
	for _, name := range names {
		if name == labelColumn && !found {
			found = true
			t.Labels = df.Col(name).Records()
			continue
		}
		t.Features = append(t.Features, name)
	}
	if !found {
		return nil, fmt.Errorf("%w: %q (have %s)", ErrUnknownColumn, labelColumn, strings.Join(names, ", "))
	}
	if len(t.Features) == 0 {
		return nil, ErrNoFeatures
	}

	n, d := df.Nrow(), len(t.Features)
	X, err := matrix.NewDense(n, d)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	var v float64
	for j, name := range t.Features {
		for i, cell := range df.Col(name).Records() {
			v, err = strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				// +2: one-based, after the header
				return nil, fmt.Errorf("%w: line %d column %q: %q", ErrNonNumeric, i+2, name, cell)
			}
			_ = X.Set(i, j, v) // in range by construction
		}
	}
	t.X = X

	return t, nil
}

// WriteCSV writes m as a headed CSV. names defaults to PC1..PCk; labels, when
// non-nil, becomes a trailing DefaultLabelName column. Cells use the shortest
// 'g' form that parses back to the same float64.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrShape, wrapped write errors.
func WriteCSV(w io.Writer, m matrix.Matrix, names, labels []string) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("dataset: write csv: %w", err)
	}
	n, k := m.Rows(), m.Cols()
	if names == nil {
		names = ComponentNames(k)
	}
	if len(names) != k {
		return fmt.Errorf("%w: %d names for %d columns", ErrShape, len(names), k)
	}
	if labels != nil && len(labels) != n {
		return fmt.Errorf("%w: %d labels for %d rows", ErrShape, len(labels), n)
	}

	cols := make([]series.Series, 0, k+1)
	var err error
	var v float64
	for j := 0; j < k; j++ {
		cells := make([]string, n)
		for i := range cells {
			if v, err = m.At(i, j); err != nil {
				return fmt.Errorf("dataset: write csv: %w", err)
			}
			cells[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		// String series: gota prints Float series with fixed 6 decimals.
		cols = append(cols, series.New(cells, series.String, names[j]))
	}
	if labels != nil {
		cols = append(cols, series.New(labels, series.String, DefaultLabelName))
	}

	df := dataframe.New(cols...)
	if df.Err != nil {
		return fmt.Errorf("dataset: build frame: %w", df.Err)
	}
	if err = df.WriteCSV(w); err != nil {
		return fmt.Errorf("dataset: write csv: %w", err)
	}

	return nil
}

// ComponentNames returns PC1..PCk.
func ComponentNames(k int) []string {
	out := make([]string, k)
	for i := range out {
		out[i] = "PC" + strconv.Itoa(i+1)
	}

	return out
}
