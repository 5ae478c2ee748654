// SPDX-License-Identifier: MIT

// Package vogel - line selection and cell choice.
//
// Tie-break chain (deterministic, recorded in the trace):
//  1. every row and column whose penalty equals the round maximum is a candidate;
//  2. candidates are ranked by cheapest available cost ascending (absent last),
//  3. then by index ascending,
//  4. then rows before columns.
//
// If no candidate has any available cell, the selection falls back to the
// larger of the best row penalty and the best column penalty (rows on ties),
// without a candidate list.

package vogel

import (
	"sort"

	"github.com/katalvlaran/lvtransport/problem"
)

// maxPenalty returns the largest penalty value across rows and columns.
func maxPenalty(rows, cols []problem.Penalty) float64 {
	best := problem.NoPenalty
	for _, p := range rows {
		best = max(best, p.Value)
	}
	for _, p := range cols {
		best = max(best, p.Value)
	}

	return best
}

// candidateLess implements the ranking of the tie-break chain.
func candidateLess(a, b problem.Candidate) bool {
	if !a.MinCost.Equal(b.MinCost) {
		return a.MinCost.Less(b.MinCost)
	}
	if a.Index != b.Index {
		return a.Index < b.Index
	}

	return a.Axis == problem.RowAxis && b.Axis == problem.ColumnAxis
}

// selectLine picks the row or column to work on this round.
//
// Complexity: O((M+N)·max(M,N)) for the candidate minimum costs.
func (s *Solver) selectLine(rows, cols []problem.Penalty) (problem.Selection, problem.TieBreak) {
	top := maxPenalty(rows, cols)

	var cands []problem.Candidate
	for _, group := range [][]problem.Penalty{rows, cols} {
		for _, p := range group {
			if p.Value != top {
				continue
			}
			cands = append(cands, problem.Candidate{
				Axis:    p.Axis,
				Index:   p.Index,
				MinCost: s.minAvailable(p.Axis, p.Index),
			})
		}
	}

	anyAvailable := false
	for _, c := range cands {
		anyAvailable = anyAvailable || c.MinCost.Valid
	}
	if !anyAvailable {
		return fallbackLine(rows, cols), problem.TieBreak{Tie: false}
	}

	sort.SliceStable(cands, func(i, j int) bool { return candidateLess(cands[i], cands[j]) })

	return problem.Selection{Axis: cands[0].Axis, Index: cands[0].Index}, problem.TieBreak{
		Tie:        len(cands) > 1,
		Reason:     problem.ReasonMinCostThenIndex,
		Candidates: cands,
	}
}

// fallbackLine compares the best row penalty with the best column penalty and
// returns the first line attaining the larger one; rows win ties.
func fallbackLine(rows, cols []problem.Penalty) problem.Selection {
	bestRow, bestCol := rows[0], cols[0]
	for _, p := range rows[1:] {
		if p.Value > bestRow.Value {
			bestRow = p
		}
	}
	for _, p := range cols[1:] {
		if p.Value > bestCol.Value {
			bestCol = p
		}
	}
	if bestRow.Value >= bestCol.Value {
		return problem.Selection{Axis: problem.RowAxis, Index: bestRow.Index}
	}

	return problem.Selection{Axis: problem.ColumnAxis, Index: bestCol.Index}
}

// bestCell returns the strictly cheapest available cell of the selected line;
// the first one in scan order wins ties. ok is false when the line has no
// available cell.
func (s *Solver) bestCell(sel problem.Selection) (cell problem.Cell, cost float64, ok bool) {
	for k := 0; k < s.lineLen(sel.Axis); k++ {
		cand := cellOf(sel.Axis, sel.Index, k)
		c, avail := s.available(cand.Row, cand.Col)
		if avail && (!ok || c < cost) {
			cell, cost, ok = cand, c, true
		}
	}

	return cell, cost, ok
}
