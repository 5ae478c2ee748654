package render_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtransport/balance"
	"github.com/katalvlaran/lvtransport/problem"
	"github.com/katalvlaran/lvtransport/render"
	"github.com/katalvlaran/lvtransport/solve"
)

func TestNumAndLabels(t *testing.T) {
	assert.Equal(t, "8", render.Num(8))
	assert.Equal(t, "2.5", render.Num(2.5))

	meta := balance.Meta{Kind: balance.DummyColumnAdded, Difference: 2, Index: 2}
	assert.Equal(t, "S1", render.RowLabel(0, meta))
	assert.Equal(t, "D2", render.ColLabel(1, meta))
	assert.Equal(t, "D3 (dummy)", render.ColLabel(2, meta))

	meta = balance.Meta{Kind: balance.DummyRowAdded, Difference: 2, Index: 1}
	assert.Equal(t, "S2 (dummy)", render.RowLabel(1, meta))
	assert.Equal(t, "D2", render.ColLabel(1, meta))
}

// TestTable marks the chosen cell and prints "-" for exhausted lines.
func TestTable(t *testing.T) {
	p := problem.Problem{
		Costs:  [][]float64{{19, 30}, {70, 8}},
		Supply: []float64{7, 0},
		Demand: []float64{5, 2},
	}
	out := render.Table(p, balance.Meta{Kind: balance.Balanced, Index: -1}, render.State{
		Snapshot: problem.NewSnapshot(p.Supply, p.Demand),
		Mark:     &problem.Cell{Row: 0, Col: 1},
		RowPenalties: []problem.Penalty{
			{Axis: problem.RowAxis, Index: 0, Value: 11},
			{Axis: problem.RowAxis, Index: 1, Value: problem.NoPenalty},
		},
		ColPenalties: []problem.Penalty{
			{Axis: problem.ColumnAxis, Index: 0, Value: 19},
			{Axis: problem.ColumnAxis, Index: 1, Value: 30},
		},
	})

	assert.Contains(t, out, "[30]")
	assert.NotContains(t, out, "[19]")
	for _, want := range []string{"S1", "S2", "D1", "D2", "Supply", "Demand", "Penalty", "11", "-"} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "-1 ")
}

// TestOutcome_Report covers the full report on a padded problem.
func TestOutcome_Report(t *testing.T) {
	out, err := solve.Solve(context.Background(), problem.Problem{
		Costs:  [][]float64{{4, 8}, {6, 3}},
		Supply: []float64{8, 4},
		Demand: []float64{5, 5},
	}, solve.DefaultOptions())
	require.NoError(t, err)

	report := render.Outcome(out, true)
	assert.Contains(t, report, "Method: vogel | Status: done")
	assert.Contains(t, report, "Supply exceeded demand by 2: added D3 (dummy).")
	assert.Contains(t, report, "Step 1: assign")
	assert.Contains(t, report, "Before:")
	assert.Contains(t, report, "After:")
	assert.Contains(t, report, "Allocation:")
	assert.Contains(t, report, "Cost breakdown:")
	assert.Contains(t, report, "Min Z = "+render.Num(out.TotalCost))
	assert.Equal(t, len(out.Result.Steps), strings.Count(report, "Before:"))

	short := render.Outcome(out, false)
	assert.NotContains(t, short, "Before:")
}

// TestSteps_Northwest derives the before-state from the previous step.
func TestSteps_Northwest(t *testing.T) {
	p := problem.Problem{
		Costs:  [][]float64{{4, 8}, {6, 3}},
		Supply: []float64{6, 4},
		Demand: []float64{5, 5},
	}
	out, err := solve.Solve(context.Background(), p, solve.Options{Method: problem.Northwest})
	require.NoError(t, err)

	txt := render.Steps(out.Balanced, out.Balance, out.Result)
	assert.Equal(t, 3, strings.Count(txt, "Before:"))
	assert.Contains(t, txt, "Step 3: assign 4 units to (1,1)")
	assert.NotContains(t, txt, "Penalty")
}

// TestSteps_Failure renders a terminal failure.
func TestSteps_Failure(t *testing.T) {
	p := problem.Problem{
		Costs:  [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}},
		Supply: []float64{1, 1, 1},
		Demand: []float64{1, 1, 1},
	}
	out, err := solve.Solve(context.Background(), p, solve.Options{Method: problem.Northwest, MaxIterations: 1})
	require.NoError(t, err)

	txt := render.Steps(out.Balanced, out.Balance, out.Result)
	assert.Contains(t, txt, "Step 3: iteration_limit")
	assert.Contains(t, txt, "iteration limit reached")
}

func TestBreakdown(t *testing.T) {
	res := problem.Result{Allocation: [][]float64{{5, 1}, {0, 4}}}
	txt := render.Breakdown([][]float64{{4, 8}, {6, 3}}, balance.Meta{Index: -1}, res)
	assert.Contains(t, txt, "Subtotal")
	assert.Contains(t, txt, "20")
	assert.Contains(t, txt, "12")
	assert.Contains(t, txt, "40")
}
