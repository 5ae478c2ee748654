// SPDX-License-Identifier: MIT

// Package problem - step trace model.
//
// Purpose:
//   - One tagged variant per kind of trace record: Assignment for a completed
//     round, Failure for an anomaly or a terminal condition.
//   - Both implement Step, whose Kind() is the shared discriminant; JSON output
//     carries it as "kind" so downstream consumers can switch without probing keys.
//   - Values are copied on construction (Snapshot, penalties); nothing in a
//     recorded step aliases live solver state.

package problem

import (
	"encoding/json"
	"fmt"
)

// Axis distinguishes rows (supply side) from columns (demand side).
type Axis int

const (
	// RowAxis selects a supply row.
	RowAxis Axis = iota
	// ColumnAxis selects a demand column.
	ColumnAxis
)

// String returns "row" or "column".
func (a Axis) String() string {
	switch a {
	case RowAxis:
		return "row"
	case ColumnAxis:
		return "column"
	default:
		return fmt.Sprintf("axis(%d)", int(a))
	}
}

// MarshalText encodes the axis as its name.
func (a Axis) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// UnmarshalText accepts "row" or "column".
func (a *Axis) UnmarshalText(b []byte) error {
	switch string(b) {
	case "row":
		*a = RowAxis
	case "column":
		*a = ColumnAxis
	default:
		return fmt.Errorf("problem: unknown axis %q", b)
	}

	return nil
}

// Cell is a (row, column) coordinate, zero-based.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// String renders the cell as "(row,col)".
func (c Cell) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }

// NoPenalty is the sentinel penalty of an exhausted line or a line without
// any available cell.
const NoPenalty = -1.0

// Penalty is the per-round opportunity cost of one row or column.
type Penalty struct {
	Axis  Axis    `json:"axis"`
	Index int     `json:"index"`
	Value float64 `json:"value"`
}

// MinCost is an optional minimum cost: Valid == false means "no available cell".
type MinCost struct {
	Value float64
	Valid bool
}

// SomeCost wraps a present minimum cost.
func SomeCost(v float64) MinCost { return MinCost{Value: v, Valid: true} }

// Less orders present values ascending and puts absent values last.
func (m MinCost) Less(o MinCost) bool {
	if !m.Valid {
		return false
	}
	if !o.Valid {
		return true
	}

	return m.Value < o.Value
}

// Equal reports whether both are absent or both hold the same value.
func (m MinCost) Equal(o MinCost) bool {
	if m.Valid != o.Valid {
		return false
	}

	return !m.Valid || m.Value == o.Value
}

// MarshalJSON encodes an absent cost as null.
func (m MinCost) MarshalJSON() ([]byte, error) {
	if !m.Valid {
		return []byte("null"), nil
	}

	return json.Marshal(m.Value)
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (m *MinCost) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*m = MinCost{}
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*m = SomeCost(v)

	return nil
}

// String renders the value or "none".
func (m MinCost) String() string {
	if !m.Valid {
		return "none"
	}

	return fmt.Sprintf("%g", m.Value)
}

// Candidate is one line that shared the maximum penalty in a round.
type Candidate struct {
	Axis    Axis    `json:"axis"`
	Index   int     `json:"index"`
	MinCost MinCost `json:"min_cost"`
}

// ReasonMinCostThenIndex names the tie-break chain used by the Vogel solver.
const ReasonMinCostThenIndex = "min_cost_then_index"

// TieBreak documents how the selected line was chosen among equals.
// Candidates is ordered exactly as the solver ranked them; the first one won.
type TieBreak struct {
	Tie        bool        `json:"tie"`
	Reason     string      `json:"reason,omitempty"`
	Candidates []Candidate `json:"candidates,omitempty"`
}

// Selection is the line (row or column) a round worked on.
type Selection struct {
	Axis  Axis `json:"axis"`
	Index int  `json:"index"`
}

// Snapshot is a copy of the remaining supply and demand at one instant.
type Snapshot struct {
	Supply []float64 `json:"supply"`
	Demand []float64 `json:"demand"`
}

// NewSnapshot copies both vectors.
func NewSnapshot(supply, demand []float64) Snapshot {
	return Snapshot{Supply: CloneVector(supply), Demand: CloneVector(demand)}
}

// Method names a constructive heuristic.
type Method string

const (
	// Vogel is Vogel's Approximation Method.
	Vogel Method = "vogel"
	// Northwest is the Northwest Corner method.
	Northwest Method = "northwest"
)

// ParseMethod maps user input to a Method; "nw" and "noroeste" are accepted
// as aliases of Northwest, "vam" as an alias of Vogel.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "vogel", "vam":
		return Vogel, nil
	case "northwest", "nw", "noroeste":
		return Northwest, nil
	default:
		return "", fmt.Errorf("problem: unknown method %q", s)
	}
}

// StepKind is the discriminant shared by every Step variant.
type StepKind string

const (
	// KindAssignment marks a completed allocation round.
	KindAssignment StepKind = "assignment"
	// KindFailure marks an anomaly or terminal error.
	KindFailure StepKind = "failure"
)

// Step is one immutable record of the solve trace.
// The concrete type is either Assignment or Failure.
type Step interface {
	// Kind returns the variant discriminant.
	Kind() StepKind
	// Seq returns the 1-based position of the step in its trace.
	Seq() int
	// Explain returns the prose derivation of the step.
	Explain() string

	isStep()
}

// Assignment records one allocation: which line was selected (Vogel only),
// the penalties and tie-break of the round (Vogel only), the chosen cell and
// quantity, and the remaining supply/demand around the assignment.
// Before is nil for Northwest, which records only the after-state.
type Assignment struct {
	Number       int        `json:"step"`
	Method       Method     `json:"method"`
	Selection    *Selection `json:"selection,omitempty"`
	RowPenalties []Penalty  `json:"row_penalties,omitempty"`
	ColPenalties []Penalty  `json:"col_penalties,omitempty"`
	TieBreak     *TieBreak  `json:"tie_break,omitempty"`
	Cell         Cell       `json:"cell"`
	Cost         float64    `json:"cost"`
	Quantity     float64    `json:"quantity"`
	Before       *Snapshot  `json:"before,omitempty"`
	After        Snapshot   `json:"after"`
	Explanation  string     `json:"explanation"`
}

// Kind implements Step.
func (Assignment) Kind() StepKind { return KindAssignment }

// Seq implements Step.
func (a Assignment) Seq() int { return a.Number }

// Explain implements Step.
func (a Assignment) Explain() string { return a.Explanation }

func (Assignment) isStep() {}

// MarshalJSON adds the "kind" discriminant.
func (a Assignment) MarshalJSON() ([]byte, error) {
	type plain Assignment

	return json.Marshal(struct {
		Kind StepKind `json:"kind"`
		plain
	}{KindAssignment, plain(a)})
}

// FailureCode classifies a Failure step.
type FailureCode string

const (
	// CodeNoValidCell: the selected row/column had no available cell (terminal).
	CodeNoValidCell FailureCode = "no_valid_cell"
	// CodeNonPositiveAssignment: the chosen cell computed a quantity ≤ 0 (transient).
	CodeNonPositiveAssignment FailureCode = "non_positive_assignment"
	// CodeIterationLimit: the safety cap on iterations was exceeded (terminal).
	CodeIterationLimit FailureCode = "iteration_limit"
)

// Failure records an anomaly (Terminal == false) or the condition that
// stopped the solve (Terminal == true), with the state at that moment.
// Optional context fields are nil when the solver had not reached them.
type Failure struct {
	Number       int         `json:"step"`
	Method       Method      `json:"method"`
	Code         FailureCode `json:"code"`
	Message      string      `json:"message"`
	Terminal     bool        `json:"terminal"`
	Selection    *Selection  `json:"selection,omitempty"`
	Cell         *Cell       `json:"cell,omitempty"`
	RowPenalties []Penalty   `json:"row_penalties,omitempty"`
	ColPenalties []Penalty   `json:"col_penalties,omitempty"`
	TieBreak     *TieBreak   `json:"tie_break,omitempty"`
	State        Snapshot    `json:"state"`
	Explanation  string      `json:"explanation,omitempty"`
}

// Kind implements Step.
func (Failure) Kind() StepKind { return KindFailure }

// Seq implements Step.
func (f Failure) Seq() int { return f.Number }

// Explain implements Step; falls back to Message.
func (f Failure) Explain() string {
	if f.Explanation != "" {
		return f.Explanation
	}

	return f.Message
}

func (Failure) isStep() {}

// Error makes a Failure usable wherever an error is expected.
func (f Failure) Error() string {
	return fmt.Sprintf("%s: step %d: %s: %s", f.Method, f.Number, f.Code, f.Message)
}

// MarshalJSON adds the "kind" discriminant.
func (f Failure) MarshalJSON() ([]byte, error) {
	type plain Failure

	return json.Marshal(struct {
		Kind StepKind `json:"kind"`
		plain
	}{KindFailure, plain(f)})
}

// Trace is an append-only step log. The zero value is ready to use.
type Trace struct {
	steps []Step
}

// Next returns the number the next appended step must carry.
func (t *Trace) Next() int { return len(t.steps) + 1 }

// Append adds s at the end of the trace.
func (t *Trace) Append(s Step) { t.steps = append(t.steps, s) }

// Len returns the number of recorded steps.
func (t *Trace) Len() int { return len(t.steps) }

// Steps returns the recorded steps in order; the slice is a copy.
func (t *Trace) Steps() []Step {
	out := make([]Step, len(t.steps))
	copy(out, t.steps)

	return out
}
