// SPDX-License-Identifier: MIT

// Package problem - Grid: row-major cost storage with an availability mask.
//
// Purpose:
//   - Keep every cost value intact for the whole solve; "retired" cells are
//     tracked in a parallel boolean mask instead of overwriting the cost.
//   - Retirement is irreversible: once a row/column is retired, no call on the
//     Grid brings its cells back.
//   - Public accessors never panic; out-of-range reads report "not live".
//
// Complexity quicksheet:
//   - Problem.Grid: O(r*c); Value/Live: O(1); Retire: O(r) or O(c).

package problem

import "fmt"

// gridErrorf wraps a sentinel with Grid method context and coordinates.
func gridErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Grid.%s(%d,%d): %w", method, row, col, err)
}

// Grid is an r×c cost matrix with a per-cell availability flag.
//   - cost holds r*c values in row-major order (offset = i*c + j).
//   - live[k] == false means the cell at offset k is permanently excluded.
type Grid struct {
	r, c int
	cost []float64
	live []bool
}

// Grid validates p and returns a copy of its costs with every cell live.
// Validate is the only check: the copy trusts what it accepted.
//
// Errors: the sentinels of Validate.
func (p Problem) Grid() (*Grid, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	r, c := p.Rows(), p.Cols()

	g := &Grid{
		r:    r,
		c:    c,
		cost: make([]float64, r*c),
		live: make([]bool, r*c),
	}
	for i, row := range p.Costs {
		copy(g.cost[i*c:(i+1)*c], row)
	}
	for k := range g.live {
		g.live[k] = true
	}

	return g, nil
}

// Rows returns the number of supply rows.
func (g *Grid) Rows() int { return g.r }

// Cols returns the number of demand columns.
func (g *Grid) Cols() int { return g.c }

// Value returns the cost at (row, col) and whether the cell is still live.
// Out-of-range coordinates yield (0, false).
func (g *Grid) Value(row, col int) (float64, bool) {
	if row < 0 || row >= g.r || col < 0 || col >= g.c {
		return 0, false
	}
	k := row*g.c + col

	return g.cost[k], g.live[k]
}

// Live reports whether (row, col) has not been retired.
func (g *Grid) Live(row, col int) bool {
	_, ok := g.Value(row, col)

	return ok
}

// Retire permanently excludes every cell of one row or column.
// Returns ErrOutOfRange for an invalid index.
func (g *Grid) Retire(axis Axis, idx int) error {
	switch axis {
	case RowAxis:
		if idx < 0 || idx >= g.r {
			return gridErrorf("Retire", idx, -1, ErrOutOfRange)
		}
		for j := 0; j < g.c; j++ {
			g.live[idx*g.c+j] = false
		}
	case ColumnAxis:
		if idx < 0 || idx >= g.c {
			return gridErrorf("Retire", -1, idx, ErrOutOfRange)
		}
		for i := 0; i < g.r; i++ {
			g.live[i*g.c+idx] = false
		}
	default:
		return fmt.Errorf("Grid.Retire: unknown axis %d: %w", axis, ErrOutOfRange)
	}

	return nil
}
