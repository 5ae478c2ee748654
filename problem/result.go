// SPDX-License-Identifier: MIT

package problem

import "gonum.org/v1/gonum/floats"

// Status summarises how a solve ended.
type Status string

const (
	// StatusDone: supply and demand were both exhausted.
	StatusDone Status = "done"
	// StatusStopped: the solver ran out of work before exhausting both sides
	// (unbalanced input fed to a solver that does not balance).
	StatusStopped Status = "stopped"
	// StatusFailed: a terminal Failure step ended the solve.
	StatusFailed Status = "failed"
)

// Result is the output shared by every solver: the allocation matrix and the
// ordered step trace. It is returned even when the solve failed, so callers
// can inspect partial progress.
type Result struct {
	Method     Method      `json:"method"`
	Allocation [][]float64 `json:"allocation"`
	Steps      []Step      `json:"steps"`
	Status     Status      `json:"status"`
}

// Assignments returns only the Assignment steps, in order.
func (r Result) Assignments() []Assignment {
	out := make([]Assignment, 0, len(r.Steps))
	for _, s := range r.Steps {
		if a, ok := s.(Assignment); ok {
			out = append(out, a)
		}
	}

	return out
}

// Failures returns only the Failure steps, in order.
func (r Result) Failures() []Failure {
	var out []Failure
	for _, s := range r.Steps {
		if f, ok := s.(Failure); ok {
			out = append(out, f)
		}
	}

	return out
}

// Terminal returns the terminal Failure, if the solve ended on one.
func (r Result) Terminal() (Failure, bool) {
	if len(r.Steps) == 0 {
		return Failure{}, false
	}
	f, ok := r.Steps[len(r.Steps)-1].(Failure)
	if !ok || !f.Terminal {
		return Failure{}, false
	}

	return f, true
}

// RowSums returns Σ_j Allocation[i][j] for each row i.
func (r Result) RowSums() []float64 {
	out := make([]float64, len(r.Allocation))
	for i, row := range r.Allocation {
		out[i] = floats.Sum(row)
	}

	return out
}

// ColSums returns Σ_i Allocation[i][j] for each column j.
func (r Result) ColSums() []float64 {
	if len(r.Allocation) == 0 {
		return nil
	}
	out := make([]float64, len(r.Allocation[0]))
	for _, row := range r.Allocation {
		floats.Add(out, row)
	}

	return out
}

// Allocated returns the total shipped volume.
func (r Result) Allocated() float64 { return floats.Sum(r.RowSums()) }

// Shipment is one non-zero cell of the allocation with its cost contribution.
type Shipment struct {
	From     int     `json:"from"`
	To       int     `json:"to"`
	Quantity float64 `json:"quantity"`
	Cost     float64 `json:"cost"`
	Subtotal float64 `json:"subtotal"`
}

// Breakdown lists every allocated cell in row-major order with
// quantity × cost. Cells outside costs contribute cost 0.
func (r Result) Breakdown(costs [][]float64) []Shipment {
	var out []Shipment
	for i, row := range r.Allocation {
		for j, q := range row {
			if q == 0 {
				continue
			}
			var c float64
			if i < len(costs) && j < len(costs[i]) {
				c = costs[i][j]
			}
			out = append(out, Shipment{From: i, To: j, Quantity: q, Cost: c, Subtotal: q * c})
		}
	}

	return out
}

// TotalCost returns Z = Σ quantity × cost over the allocation.
func (r Result) TotalCost(costs [][]float64) float64 {
	var z float64
	for _, s := range r.Breakdown(costs) {
		z += s.Subtotal
	}

	return z
}
