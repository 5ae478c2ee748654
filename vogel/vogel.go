// SPDX-License-Identifier: MIT

package vogel

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvtransport/problem"
)

// Solver holds the private, mutable state of one VAM solve.
// It owns copies of the caller's costs and vectors; a Solver is single-use
// and must not be shared between goroutines. Independent Solvers are safe to
// run concurrently.
type Solver struct {
	grid   *problem.Grid
	supply []float64
	demand []float64
	alloc  [][]float64
	scale  float64
	trace  problem.Trace
	opts   Options

	solved bool
	result problem.Result
}

// round carries the per-round context that ends up in the trace.
type round struct {
	num    int
	before problem.Snapshot
	rows   []problem.Penalty
	cols   []problem.Penalty
	top    float64
	sel    problem.Selection
	tie    problem.TieBreak
}

// New validates p and prepares a Solver over private copies of its data.
//
// Errors: the sentinels of problem.Problem.Validate, wrapped with "vogel: ".
func New(p problem.Problem, opts Options) (*Solver, error) {
	grid, err := p.Grid()
	if err != nil {
		return nil, fmt.Errorf("vogel: %w", err)
	}

	return &Solver{
		grid:   grid,
		supply: problem.CloneVector(p.Supply),
		demand: problem.CloneVector(p.Demand),
		alloc:  problem.NewMatrix(p.Rows(), p.Cols()),
		scale:  p.Scale(),
		opts:   opts,
	}, nil
}

// Solve validates p and runs VAM to completion. See Solver.Solve.
func Solve(p problem.Problem, opts Options) (problem.Result, error) {
	s, err := New(p, opts)
	if err != nil {
		return problem.Result{}, err
	}

	return s.Solve(), nil
}

// Solve runs rounds while total supply and total demand are both positive.
// It always returns a Result: on a terminal failure the allocation and the
// trace accumulated so far are returned with Status == problem.StatusFailed.
// Calling Solve again returns the same Result without re-running.
func (s *Solver) Solve() problem.Result {
	if s.solved {
		return s.result
	}

	var (
		maxIter = s.opts.iterationCap(s.grid.Rows(), s.grid.Cols())
		status  = problem.StatusDone
		iter    int
	)
	for floats.Sum(s.supply) > 0 && floats.Sum(s.demand) > 0 {
		if iter > maxIter {
			s.trace.Append(problem.Failure{
				Number:   s.trace.Next(),
				Method:   problem.Vogel,
				Code:     problem.CodeIterationLimit,
				Message:  "iteration limit reached - possible inconsistent state",
				Terminal: true,
				State:    problem.NewSnapshot(s.supply, s.demand),
			})
			status = problem.StatusFailed
			s.emit(PhaseError, iter)

			break
		}

		r := round{num: iter + 1, before: problem.NewSnapshot(s.supply, s.demand)}
		s.emit(PhaseRoundStart, r.num)

		r.rows, r.cols = s.penalties()
		r.top = maxPenalty(r.rows, r.cols)
		s.emit(PhasePenaltiesComputed, r.num)

		r.sel, r.tie = s.selectLine(r.rows, r.cols)
		cell, cost, ok := s.bestCell(r.sel)
		if !ok {
			s.recordNoCell(r)
			status = problem.StatusFailed
			s.emit(PhaseError, r.num)

			break
		}
		s.emit(PhaseCellSelected, r.num)

		if s.assign(r, cell, cost) {
			s.emit(PhaseAssigned, r.num)
		}
		iter++
	}

	if status == problem.StatusDone {
		if !problem.Exhausted(s.supply, s.demand) {
			status = problem.StatusStopped
		}
		s.emit(PhaseDone, iter)
	}

	s.solved = true
	s.result = problem.Result{
		Method:     problem.Vogel,
		Allocation: s.alloc,
		Steps:      s.trace.Steps(),
		Status:     status,
	}

	return s.result
}

// assign ships q = min(supply, demand) through cell, retires exhausted lines
// and records the Assignment. A non-positive q is recorded as a transient
// Failure and nothing changes; the caller counts the iteration either way.
func (s *Solver) assign(r round, cell problem.Cell, cost float64) bool {
	q := math.Min(s.supply[cell.Row], s.demand[cell.Col])
	if q <= 0 {
		s.trace.Append(problem.Failure{
			Number:       s.trace.Next(),
			Method:       problem.Vogel,
			Code:         problem.CodeNonPositiveAssignment,
			Message:      "non-positive assignment detected",
			Selection:    &r.sel,
			Cell:         &cell,
			RowPenalties: r.rows,
			ColPenalties: r.cols,
			TieBreak:     &r.tie,
			State:        r.before,
			Explanation:  fmt.Sprintf("Cell %v yields an assignment of %g; trying to continue.", cell, q),
		})

		return false
	}

	s.alloc[cell.Row][cell.Col] = q
	// Residues within tolerance of the totals count as exhausted.
	s.supply[cell.Row] = problem.Snap(s.supply[cell.Row]-q, s.scale)
	s.demand[cell.Col] = problem.Snap(s.demand[cell.Col]-q, s.scale)

	// Retirement is permanent; indices come from the grid itself, so Retire cannot fail.
	if s.supply[cell.Row] == 0 {
		_ = s.grid.Retire(problem.RowAxis, cell.Row)
	}
	if s.demand[cell.Col] == 0 {
		_ = s.grid.Retire(problem.ColumnAxis, cell.Col)
	}

	after := problem.NewSnapshot(s.supply, s.demand)
	s.trace.Append(problem.Assignment{
		Number:       s.trace.Next(),
		Method:       problem.Vogel,
		Selection:    &r.sel,
		RowPenalties: r.rows,
		ColPenalties: r.cols,
		TieBreak:     &r.tie,
		Cell:         cell,
		Cost:         cost,
		Quantity:     q,
		Before:       &r.before,
		After:        after,
		Explanation:  explain(r, cell, cost, q, after),
	})

	return true
}

// recordNoCell appends the terminal failure for a line without available cells.
func (s *Solver) recordNoCell(r round) {
	s.trace.Append(problem.Failure{
		Number:       s.trace.Next(),
		Method:       problem.Vogel,
		Code:         problem.CodeNoValidCell,
		Message:      "no valid cell found to assign",
		Terminal:     true,
		Selection:    &r.sel,
		RowPenalties: r.rows,
		ColPenalties: r.cols,
		TieBreak:     &r.tie,
		State:        r.before,
		Explanation: fmt.Sprintf("No valid cell in %s %d: every available cell is exhausted or retired.",
			r.sel.Axis, r.sel.Index),
	})
}

// explain renders the prose derivation of one round.
func explain(r round, cell problem.Cell, cost, q float64, after problem.Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Largest penalty = %g. Selected %s %d; the lowest-cost cell in that %s is %v with cost %g. Assigned %g units.",
		r.top, r.sel.Axis, r.sel.Index, r.sel.Axis, cell, cost, q)
	if r.tie.Tie {
		fmt.Fprintf(&b, " Tie among %d candidates, broken by lowest available cost, then lowest index, then rows before columns.",
			len(r.tie.Candidates))
	}
	fmt.Fprintf(&b, " State after: supply=%v demand=%v.", after.Supply, after.Demand)

	return b.String()
}

// emit forwards a state transition to the optional hook.
func (s *Solver) emit(p Phase, round int) {
	if s.opts.OnPhase != nil {
		s.opts.OnPhase(p, round)
	}
}
