// SPDX-License-Identifier: MIT

// Package problem holds the shared data model of the transportation solvers.
//
// 🚚 What lives here?
//
//	The classical transportation problem ships goods from M supply points to
//	N demand points at a per-unit cost. Every solver in lvtransport consumes
//	the same input (Problem) and emits the same output (Result):
//	  • Problem: cost matrix, supply vector, demand vector
//	  • Grid   : row-major costs plus an explicit availability mask
//	  • Step   : tagged trace record: Assignment or Failure
//	  • Result : allocation matrix, ordered step trace, terminal status
//
// ✨ Contracts:
//   - Inputs are never aliased: constructors and solvers copy caller storage.
//   - Step values are immutable once appended; their order is the audit trail.
//   - Shape/value problems are reported via sentinel errors (errors.Is);
//     solver-internal trouble is reported as data (Failure steps).
//
// ⚙️ Usage:
//
//	p := problem.Problem{
//	  Costs:  [][]float64{{4, 8}, {6, 3}},
//	  Supply: []float64{6, 4},
//	  Demand: []float64{5, 5},
//	}
//	if err := p.Validate(); err != nil {
//	  // handle problem.ErrDimensionMismatch and friends
//	}
//
// Complexity: validation and cloning are O(M·N).
package problem
