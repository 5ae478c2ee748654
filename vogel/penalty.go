// SPDX-License-Identifier: MIT

// Package vogel - penalty computation.
//
// A cell is available when it is live in the grid mask AND its row still has
// supply AND its column still has demand. Penalties and minimum costs only
// ever look at available cells, and are recomputed from scratch every round.

package vogel

import "github.com/katalvlaran/lvtransport/problem"

// available returns the cost of (i, j) and whether the cell may be used now.
func (s *Solver) available(i, j int) (float64, bool) {
	c, live := s.grid.Value(i, j)
	if !live || s.supply[i] <= 0 || s.demand[j] <= 0 {
		return 0, false
	}

	return c, true
}

// lineLen returns how many cells a row (cols) or a column (rows) has.
func (s *Solver) lineLen(axis problem.Axis) int {
	if axis == problem.RowAxis {
		return s.grid.Cols()
	}

	return s.grid.Rows()
}

// cellOf maps the k-th cell of a line to grid coordinates.
func cellOf(axis problem.Axis, idx, k int) problem.Cell {
	if axis == problem.RowAxis {
		return problem.Cell{Row: idx, Col: k}
	}

	return problem.Cell{Row: k, Col: idx}
}

// capacity returns the remaining supply of a row or demand of a column.
func (s *Solver) capacity(axis problem.Axis, idx int) float64 {
	if axis == problem.RowAxis {
		return s.supply[idx]
	}

	return s.demand[idx]
}

// penalty computes the opportunity cost of one line:
//   - ≥2 available cells: second-lowest − lowest,
//   - exactly 1: that cost,
//   - none, or an exhausted line: problem.NoPenalty.
//
// Complexity: O(line length), single pass keeping the two lowest values.
func (s *Solver) penalty(axis problem.Axis, idx int) problem.Penalty {
	pen := problem.Penalty{Axis: axis, Index: idx, Value: problem.NoPenalty}
	if s.capacity(axis, idx) <= 0 {
		return pen
	}

	var (
		lo1, lo2 float64 // lowest and second-lowest available cost
		n        int     // available cells seen
	)
	for k := 0; k < s.lineLen(axis); k++ {
		cell := cellOf(axis, idx, k)
		c, ok := s.available(cell.Row, cell.Col)
		if !ok {
			continue
		}
		switch {
		case n == 0:
			lo1 = c
		case c < lo1:
			lo2, lo1 = lo1, c
		case n == 1 || c < lo2:
			lo2 = c
		}
		n++
	}

	switch {
	case n >= 2:
		pen.Value = lo2 - lo1
	case n == 1:
		pen.Value = lo1
	}

	return pen
}

// penalties returns the penalty of every row and every column, in index order.
func (s *Solver) penalties() (rows, cols []problem.Penalty) {
	rows = make([]problem.Penalty, s.grid.Rows())
	for i := range rows {
		rows[i] = s.penalty(problem.RowAxis, i)
	}
	cols = make([]problem.Penalty, s.grid.Cols())
	for j := range cols {
		cols[j] = s.penalty(problem.ColumnAxis, j)
	}

	return rows, cols
}

// minAvailable returns the cheapest available cost of a line, or an absent
// MinCost when the line has no available cell.
func (s *Solver) minAvailable(axis problem.Axis, idx int) problem.MinCost {
	var best problem.MinCost
	for k := 0; k < s.lineLen(axis); k++ {
		cell := cellOf(axis, idx, k)
		if c, ok := s.available(cell.Row, cell.Col); ok && (!best.Valid || c < best.Value) {
			best = problem.SomeCost(c)
		}
	}

	return best
}
