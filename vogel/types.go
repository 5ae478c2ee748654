// SPDX-License-Identifier: MIT

package vogel

// Phase is a state of the per-round state machine.
type Phase int

const (
	// PhaseRoundStart: a new round begins from the current state.
	PhaseRoundStart Phase = iota
	// PhasePenaltiesComputed: row/column penalties are known for this round.
	PhasePenaltiesComputed
	// PhaseCellSelected: the line and its cheapest cell are chosen.
	PhaseCellSelected
	// PhaseAssigned: the quantity was shipped and exhausted lines retired.
	PhaseAssigned
	// PhaseDone: supply or demand is exhausted; the solve finished.
	PhaseDone
	// PhaseError: a terminal failure ended the solve.
	PhaseError
)

// String returns a stable lower-case name.
func (p Phase) String() string {
	switch p {
	case PhaseRoundStart:
		return "round_start"
	case PhasePenaltiesComputed:
		return "penalties_computed"
	case PhaseCellSelected:
		return "cell_selected"
	case PhaseAssigned:
		return "assigned"
	case PhaseDone:
		return "done"
	case PhaseError:
		return "error"
	default:
		return "unknown"
	}
}

// Options configures the solver.
//   - MaxIterations overrides the safety cap; 0 means max(1000, rows*cols*50).
//   - OnPhase, when non-nil, is called synchronously on every state transition
//     with the 1-based round number.
type Options struct {
	MaxIterations int
	OnPhase       func(phase Phase, round int)
}

// DefaultOptions returns the production defaults (no hook, default cap).
func DefaultOptions() Options { return Options{} }

// iterationCap returns the effective cap for an r×c problem.
func (o Options) iterationCap(r, c int) int {
	if o.MaxIterations > 0 {
		return o.MaxIterations
	}

	return max(1000, r*c*50)
}
