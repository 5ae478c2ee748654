// SPDX-License-Identifier: MIT

package problem

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// Problem is one transportation instance as supplied by a caller.
// Costs is M×N; Supply has length M; Demand has length N.
type Problem struct {
	Costs  [][]float64 `json:"costs" yaml:"costs"`
	Supply []float64   `json:"supply" yaml:"supply"`
	Demand []float64   `json:"demand" yaml:"demand"`
}

// Rows returns M (number of supply points).
func (p Problem) Rows() int { return len(p.Costs) }

// Cols returns N (number of demand points); 0 for an empty matrix.
func (p Problem) Cols() int {
	if len(p.Costs) == 0 {
		return 0
	}

	return len(p.Costs[0])
}

// Validate checks the shape and value contract shared by every solver:
//   - at least one row and one column, all rows the same length,
//   - len(Supply) == rows and len(Demand) == cols,
//   - every value finite and non-negative,
//   - ΣSupply and ΣDemand finite (huge entries can overflow the totals).
//
// Balance (ΣSupply == ΣDemand) is not required here; see package balance.
//
// Complexity: O(M·N).
func (p Problem) Validate() error {
	// Stage 1: shape.
	if len(p.Costs) == 0 || len(p.Costs[0]) == 0 {
		return ErrEmptyProblem
	}
	cols := len(p.Costs[0])
	for _, row := range p.Costs {
		if len(row) != cols {
			return ErrNonRectangular
		}
	}
	if len(p.Supply) != len(p.Costs) || len(p.Demand) != cols {
		return ErrDimensionMismatch
	}

	// Stage 2: values.
	for _, row := range p.Costs {
		if err := checkValues(row); err != nil {
			return err
		}
	}
	if err := checkValues(p.Supply); err != nil {
		return err
	}
	if err := checkValues(p.Demand); err != nil {
		return err
	}

	// Stage 3: totals.
	if math.IsInf(p.TotalSupply(), 0) || math.IsInf(p.TotalDemand(), 0) {
		return ErrNaNInf
	}

	return nil
}

// checkValues rejects NaN/Inf first, then negatives.
func checkValues(v []float64) error {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return ErrNaNInf
		}
		if x < 0 {
			return ErrNegativeValue
		}
	}

	return nil
}

// Clone returns a deep copy; the result shares no storage with p.
func (p Problem) Clone() Problem {
	out := Problem{
		Costs:  make([][]float64, len(p.Costs)),
		Supply: CloneVector(p.Supply),
		Demand: CloneVector(p.Demand),
	}
	for i, row := range p.Costs {
		out.Costs[i] = CloneVector(row)
	}

	return out
}

// TotalSupply returns ΣSupply.
func (p Problem) TotalSupply() float64 { return floats.Sum(p.Supply) }

// TotalDemand returns ΣDemand.
func (p Problem) TotalDemand() float64 { return floats.Sum(p.Demand) }

// IsBalanced reports ΣSupply == ΣDemand within Tolerance.
func (p Problem) IsBalanced() bool { return SameQuantity(p.TotalSupply(), p.TotalDemand()) }

// Scale returns max(ΣSupply, ΣDemand), the magnitude Snap measures residues against.
func (p Problem) Scale() float64 { return math.Max(p.TotalSupply(), p.TotalDemand()) }

// Tolerance is the relative tolerance under which two quantities are equal.
// Fractional inputs such as 0.1+0.2 and 0.3 differ by one ulp; they must
// still count as balanced and their residues as exhausted.
const Tolerance = 1e-9

// SameQuantity reports whether a and b agree within Tolerance relative to
// the larger magnitude.
func SameQuantity(a, b float64) bool { return scalar.EqualWithinRel(a, b, Tolerance) }

// Snap returns 0 when |x| is at most Tolerance·scale and x otherwise.
// Solvers apply it to supply/demand right after each decrement.
func Snap(x, scale float64) float64 {
	if math.Abs(x) <= Tolerance*scale {
		return 0
	}

	return x
}

// CloneVector copies v; nil stays nil.
func CloneVector(v []float64) []float64 {
	if v == nil {
		return nil
	}
	out := make([]float64, len(v))
	copy(out, v)

	return out
}

// NewMatrix returns a zero-filled rows×cols [][]float64.
func NewMatrix(rows, cols int) [][]float64 {
	m := make([][]float64, rows)
	for i := range m {
		m[i] = make([]float64, cols)
	}

	return m
}

// Exhausted reports whether every entry of every vector is zero.
func Exhausted(vectors ...[]float64) bool {
	for _, v := range vectors {
		for _, x := range v {
			if x != 0 {
				return false
			}
		}
	}

	return true
}
