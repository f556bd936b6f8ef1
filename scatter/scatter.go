// SPDX-License-Identifier: MIT

// Package scatter draws two-column views of a table with gonum/plot: the raw
// features before PCA, or the projected components after it. Points are
// coloured by class label; classes get palette slots in sorted label order,
// so the same labels always produce the same colours.
package scatter

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/katalvlaran/lvpca/matrix"
)

var (
	// ErrColumn indicates an X or Y column outside the matrix.
	ErrColumn = errors.New("scatter: column out of range")

	// ErrLabels indicates labels whose length differs from the row count.
	ErrLabels = errors.New("scatter: label count mismatch")

	// ErrFormat indicates an output extension gonum/plot cannot encode.
	ErrFormat = errors.New("scatter: unsupported image format")
)

// Defaults for Options left at their zero value.
const (
	DefaultWidth  = 6 * vg.Inch
	DefaultHeight = 6 * vg.Inch
	DefaultRadius = vg.Length(3)
	// unlabeled is the legend entry used when labels is nil.
	unlabeled = "samples"
)

// Options selects the plotted columns and decorations.
// Y < 0 plots column X against zero (a one-component projection).
type Options struct {
	Title  string
	X, Y   int
	XLabel string
	YLabel string
}

// DefaultOptions plots column 0 against column 1.
func DefaultOptions() Options {
	return Options{X: 0, Y: 1}
}

// Plot builds a scatter plot of m's columns opts.X and opts.Y, one series per
// distinct label. A single-column m is always plotted against zero.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrColumn, ErrLabels, wrapped plotter errors.
func Plot(m matrix.Matrix, labels []string, opts Options) (*plot.Plot, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("scatter: %w", err)
	}
	n, c := m.Rows(), m.Cols()
	if c == 1 {
		opts.Y = -1
	}
	if opts.X < 0 || opts.X >= c || opts.Y >= c {
		return nil, fmt.Errorf("%w: x=%d y=%d for %d columns", ErrColumn, opts.X, opts.Y, c)
	}
	if labels != nil && len(labels) != n {
		return nil, fmt.Errorf("%w: %d labels for %d rows", ErrLabels, len(labels), n)
	}

	groups := make(map[string]plotter.XYs)
	var (
		x, y float64
		err  error
	)
	for i := 0; i < n; i++ {
		if x, err = m.At(i, opts.X); err != nil {
			return nil, fmt.Errorf("scatter: %w", err)
		}
		y = 0
		if opts.Y >= 0 {
			if y, err = m.At(i, opts.Y); err != nil {
				return nil, fmt.Errorf("scatter: %w", err)
			}
		}
		key := unlabeled
		if labels != nil {
			key = labels[i]
		}
		groups[key] = append(groups[key], plotter.XY{X: x, Y: y})
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = axisLabel(opts.XLabel, opts.X)
	if opts.Y >= 0 {
		p.Y.Label.Text = axisLabel(opts.YLabel, opts.Y)
	}
	p.Add(plotter.NewGrid())

	for i, key := range sortedKeys(groups) {
		s, err := plotter.NewScatter(groups[key])
		if err != nil {
			return nil, fmt.Errorf("scatter: series %q: %w", key, err)
		}
		s.GlyphStyle.Color = plotutil.Color(i)
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		s.GlyphStyle.Radius = DefaultRadius
		p.Add(s)
		p.Legend.Add(key, s)
	}
	p.Legend.Top = true

	return p, nil
}

// Save renders p to path; the extension picks the format (png, svg, pdf, ...).
// Zero width or height falls back to the defaults.
func Save(p *plot.Plot, path string, width, height vg.Length) error {
	if p == nil {
		return errors.New("scatter: nil plot")
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".svg", ".pdf", ".eps", ".jpg", ".jpeg", ".tif", ".tiff":
	default:
		return fmt.Errorf("%w: %q", ErrFormat, path)
	}
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	if err := p.Save(width, height, path); err != nil {
		return fmt.Errorf("scatter: save %s: %w", path, err)
	}

	return nil
}

func axisLabel(label string, col int) string {
	if label != "" {
		return label
	}

	return fmt.Sprintf("column %d", col)
}

func sortedKeys(m map[string]plotter.XYs) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
