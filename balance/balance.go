// SPDX-License-Identifier: MIT

package balance

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvtransport/problem"
)

// Kind reports what Balance did to the problem.
type Kind string

const (
	// Balanced: totals matched within problem.Tolerance; nothing was added.
	Balanced Kind = "balanced"
	// DummyColumnAdded: supply exceeded demand; a zero-cost column was appended.
	DummyColumnAdded Kind = "dummy_column_added"
	// DummyRowAdded: demand exceeded supply; a zero-cost row was appended.
	DummyRowAdded Kind = "dummy_row_added"
	// Unbalanced: totals differ and the problem was left as is (see Inspect).
	Unbalanced Kind = "unbalanced"
)

// Meta describes the balancing outcome.
//   - Difference is the quantity given to the dummy line (0 when Balanced).
//   - Index is the position of the dummy row/column, or -1 when none was added.
type Meta struct {
	Kind       Kind    `json:"kind" yaml:"kind"`
	Difference float64 `json:"difference" yaml:"difference"`
	Index      int     `json:"index" yaml:"index"`
}

// IsDummyRow reports whether row i is the padding row.
func (m Meta) IsDummyRow(i int) bool { return m.Kind == DummyRowAdded && i == m.Index }

// IsDummyCol reports whether column j is the padding column.
func (m Meta) IsDummyCol(j int) bool { return m.Kind == DummyColumnAdded && j == m.Index }

// Balance returns a balanced copy of p and the metadata of what changed.
// p itself is never mutated.
//
// Errors: the shape/value sentinels of problem.Problem.Validate, wrapped.
//
// Complexity: O(M·N).
func Balance(p problem.Problem) (problem.Problem, Meta, error) {
	if err := p.Validate(); err != nil {
		return problem.Problem{}, Meta{}, fmt.Errorf("balance: %w", err)
	}

	out := p.Clone()
	supply, demand := out.TotalSupply(), out.TotalDemand()

	switch {
	case problem.SameQuantity(supply, demand):
		return out, Meta{Kind: Balanced, Index: -1}, nil

	case supply > demand:
		diff := supply - demand
		for i := range out.Costs {
			out.Costs[i] = append(out.Costs[i], 0)
		}
		out.Demand = append(out.Demand, diff)

		return out, Meta{Kind: DummyColumnAdded, Difference: diff, Index: len(out.Demand) - 1}, nil

	default:
		diff := demand - supply
		out.Costs = append(out.Costs, make([]float64, len(out.Demand)))
		out.Supply = append(out.Supply, diff)

		return out, Meta{Kind: DummyRowAdded, Difference: diff, Index: len(out.Supply) - 1}, nil
	}
}

// Inspect reports whether p is balanced without changing it. Difference is
// the absolute gap between total supply and total demand; gaps within
// problem.Tolerance count as balanced.
func Inspect(p problem.Problem) Meta {
	if p.IsBalanced() {
		return Meta{Kind: Balanced, Index: -1}
	}

	return Meta{Kind: Unbalanced, Difference: math.Abs(p.TotalSupply() - p.TotalDemand()), Index: -1}
}
