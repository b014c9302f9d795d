// Package grid provides a two-dimensional integer table made of seq.Sequence rows.
package grid

import (
	"fmt"
	"io"
	"iter"

	"github.com/ks888/seqgrid/seq"
)

// Grid is a rows x cols table. Every cell is initialized when the grid is allocated.
type Grid struct {
	rows, cols int
	cells      []seq.Sequence
}

// New allocates the zero-filled grid of the specified shape.
// An empty grid (0 rows or 0 columns) is allowed.
func New(rows, cols int) (*Grid, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%dx%d: %w", rows, cols, ErrBadShape)
	}

	cells := make([]seq.Sequence, rows)
	for i := range cells {
		cells[i] = make(seq.Sequence, cols)
	}
	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}

// Build allocates the grid and sets fn(i, j) to the cell (i, j).
func Build(rows, cols int, fn func(i, j int) int) (*Grid, error) {
	g, err := New(rows, cols)
	if err != nil {
		return nil, err
	}

	for i, row := range g.cells {
		for j := range row {
			row[j] = fn(i, j)
		}
	}
	return g, nil
}

// IndexSum returns the grid whose cell (i, j) is i + j.
func IndexSum(rows, cols int) (*Grid, error) {
	return Build(rows, cols, func(i, j int) int { return i + j })
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

func (g *Grid) inBounds(i, j int) bool {
	return i >= 0 && i < g.rows && j >= 0 && j < g.cols
}

// At returns the value of the cell (i, j).
func (g *Grid) At(i, j int) (int, error) {
	if !g.inBounds(i, j) {
		return 0, fmt.Errorf("(%d, %d): %w", i, j, ErrOutOfRange)
	}
	return g.cells[i][j], nil
}

// Set sets v to the cell (i, j).
func (g *Grid) Set(i, j, v int) error {
	if !g.inBounds(i, j) {
		return fmt.Errorf("(%d, %d): %w", i, j, ErrOutOfRange)
	}
	g.cells[i][j] = v
	return nil
}

// Row returns the copy of the i-th row.
func (g *Grid) Row(i int) (seq.Sequence, error) {
	if i < 0 || i >= g.rows {
		return nil, fmt.Errorf("row %d: %w", i, ErrOutOfRange)
	}
	return seq.Of(g.cells[i]...), nil
}

// Lines renders the grid row-major. Each row is formatted only when the consumer asks for it.
func (g *Grid) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, row := range g.cells {
			if !yield(row.String()) {
				return
			}
		}
	}
}

// WriteTo writes the rendered rows, one row per line.
func (g *Grid) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for line := range g.Lines() {
		n, err := io.WriteString(w, line+"\n")
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
