// SPDX-License-Identifier: MIT

package northwest

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvtransport/problem"
)

// Options configures the Northwest Corner walk.
//   - MaxIterations overrides the safety cap; 0 means the default (rows+cols)*100.
type Options struct {
	MaxIterations int
}

// DefaultOptions returns the production defaults.
func DefaultOptions() Options { return Options{} }

// iterationCap returns the effective safety cap for an r×c problem.
func (o Options) iterationCap(r, c int) int {
	if o.MaxIterations > 0 {
		return o.MaxIterations
	}

	return (r + c) * 100
}

// Solve runs the Northwest Corner method on a copy of p.
//
// Contracts:
//   - p must satisfy problem.Problem.Validate; otherwise the sentinel is returned
//     and no solving happens.
//   - p is never mutated.
//
// The returned Result always carries the allocation and the trace built so far;
// an exceeded iteration cap appends a terminal problem.Failure.
//
// Complexity: O(M+N) iterations.
func Solve(p problem.Problem, opts Options) (problem.Result, error) {
	if err := p.Validate(); err != nil {
		return problem.Result{}, fmt.Errorf("northwest: %w", err)
	}

	var (
		rows, cols = p.Rows(), p.Cols()
		supply     = problem.CloneVector(p.Supply)
		demand     = problem.CloneVector(p.Demand)
		alloc      = problem.NewMatrix(rows, cols)
		trace      problem.Trace
		maxIter    = opts.iterationCap(rows, cols)
		scale      = p.Scale()
		status     = problem.StatusDone
	)

	var row, col, iter int
	for row < rows && col < cols {
		if iter > maxIter {
			trace.Append(problem.Failure{
				Number:   trace.Next(),
				Method:   problem.Northwest,
				Code:     problem.CodeIterationLimit,
				Message:  "iteration limit reached - possible inconsistent state",
				Terminal: true,
				State:    problem.NewSnapshot(supply, demand),
			})
			status = problem.StatusFailed

			break
		}

		// Skip exhausted lines so the cursor keeps moving.
		if supply[row] == 0 {
			row++
			iter++

			continue
		}
		if demand[col] == 0 {
			col++
			iter++

			continue
		}

		q := math.Min(supply[row], demand[col])
		alloc[row][col] = q
		// Residues within tolerance of the totals count as exhausted.
		supply[row] = problem.Snap(supply[row]-q, scale)
		demand[col] = problem.Snap(demand[col]-q, scale)

		trace.Append(problem.Assignment{
			Number:   trace.Next(),
			Method:   problem.Northwest,
			Cell:     problem.Cell{Row: row, Col: col},
			Cost:     p.Costs[row][col],
			Quantity: q,
			After:    problem.NewSnapshot(supply, demand),
			Explanation: fmt.Sprintf(
				"Northwest corner is cell (%d,%d) with cost %g. Ship min(supply, demand) = %g units. State after: supply=%v demand=%v.",
				row, col, p.Costs[row][col], q, supply, demand),
		})

		if supply[row] == 0 {
			row++
		}
		if demand[col] == 0 {
			col++
		}
		iter++
	}

	if status == problem.StatusDone && !problem.Exhausted(supply, demand) {
		status = problem.StatusStopped
	}

	return problem.Result{
		Method:     problem.Northwest,
		Allocation: alloc,
		Steps:      trace.Steps(),
		Status:     status,
	}, nil
}
