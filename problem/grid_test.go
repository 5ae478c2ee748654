package problem_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvtransport/problem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gridProblem(costs [][]float64) problem.Problem {
	p := problem.Problem{
		Costs:  costs,
		Supply: make([]float64, len(costs)),
	}
	if len(costs) > 0 {
		p.Demand = make([]float64, len(costs[0]))
	}

	return p
}

// TestGrid_RetireIsIrreversibleAndKeepsCosts checks the mask semantics.
func TestGrid_RetireIsIrreversibleAndKeepsCosts(t *testing.T) {
	g, err := gridProblem([][]float64{{1, 2, 3}, {4, 5, 6}}).Grid()
	require.NoError(t, err)
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 3, g.Cols())

	require.NoError(t, g.Retire(problem.RowAxis, 0))
	require.NoError(t, g.Retire(problem.ColumnAxis, 2))

	for j := 0; j < 3; j++ {
		assert.False(t, g.Live(0, j), "row 0 retired")
	}
	assert.True(t, g.Live(1, 0))
	assert.True(t, g.Live(1, 1))
	assert.False(t, g.Live(1, 2), "column 2 retired")

	// Costs survive retirement.
	v, live := g.Value(0, 1)
	assert.Equal(t, 2.0, v)
	assert.False(t, live)
	v, live = g.Value(1, 2)
	assert.Equal(t, 6.0, v)
	assert.False(t, live)
	v, live = g.Value(1, 1)
	assert.Equal(t, 5.0, v)
	assert.True(t, live)
}

// TestGrid_Errors: construction reports exactly what Validate reports.
func TestGrid_Errors(t *testing.T) {
	cases := map[string]struct {
		p    problem.Problem
		want error
	}{
		"empty":         {gridProblem(nil), problem.ErrEmptyProblem},
		"ragged":        {gridProblem([][]float64{{1, 2}, {3}}), problem.ErrNonRectangular},
		"negative cost": {gridProblem([][]float64{{1, -2}}), problem.ErrNegativeValue},
		"nan cost":      {gridProblem([][]float64{{math.NaN()}}), problem.ErrNaNInf},
		"short supply": {problem.Problem{
			Costs: [][]float64{{1}, {2}}, Supply: []float64{1}, Demand: []float64{1},
		}, problem.ErrDimensionMismatch},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := tc.p.Grid()
			assert.ErrorIs(t, err, tc.want)
			assert.Equal(t, tc.p.Validate(), err)
		})
	}

	g, err := gridProblem([][]float64{{1}}).Grid()
	require.NoError(t, err)
	assert.ErrorIs(t, g.Retire(problem.RowAxis, 3), problem.ErrOutOfRange)
	assert.ErrorIs(t, g.Retire(problem.ColumnAxis, -1), problem.ErrOutOfRange)
	assert.False(t, g.Live(-1, 0))
	_, live := g.Value(0, 1)
	assert.False(t, live)
}

// TestGrid_DoesNotAliasCaller: later edits of the caller's matrix are invisible.
func TestGrid_DoesNotAliasCaller(t *testing.T) {
	src := [][]float64{{7, 8}}
	g, err := gridProblem(src).Grid()
	require.NoError(t, err)
	src[0][0] = 100

	v, _ := g.Value(0, 0)
	assert.Equal(t, 7.0, v)
}
