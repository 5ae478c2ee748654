package problem_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvtransport/problem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestValidate_Shape covers every shape sentinel in priority order.
func TestValidate_Shape(t *testing.T) {
	cases := []struct {
		name string
		p    problem.Problem
		want error
	}{
		{"empty", problem.Problem{}, problem.ErrEmptyProblem},
		{"empty row", problem.Problem{Costs: [][]float64{{}}}, problem.ErrEmptyProblem},
		{"ragged", problem.Problem{
			Costs:  [][]float64{{1, 2}, {3}},
			Supply: []float64{1, 1},
			Demand: []float64{1, 1},
		}, problem.ErrNonRectangular},
		{"supply length", problem.Problem{
			Costs:  [][]float64{{1, 2}},
			Supply: []float64{1, 1},
			Demand: []float64{1, 1},
		}, problem.ErrDimensionMismatch},
		{"demand length", problem.Problem{
			Costs:  [][]float64{{1, 2}},
			Supply: []float64{2},
			Demand: []float64{2},
		}, problem.ErrDimensionMismatch},
		{"negative cost", problem.Problem{
			Costs:  [][]float64{{-1}},
			Supply: []float64{1},
			Demand: []float64{1},
		}, problem.ErrNegativeValue},
		{"negative demand", problem.Problem{
			Costs:  [][]float64{{1}},
			Supply: []float64{1},
			Demand: []float64{-1},
		}, problem.ErrNegativeValue},
		{"nan supply", problem.Problem{
			Costs:  [][]float64{{1}},
			Supply: []float64{math.NaN()},
			Demand: []float64{1},
		}, problem.ErrNaNInf},
		{"supply total overflows", problem.Problem{
			Costs:  [][]float64{{1}, {2}},
			Supply: []float64{1e308, 1e308},
			Demand: []float64{1},
		}, problem.ErrNaNInf},
		{"demand total overflows", problem.Problem{
			Costs:  [][]float64{{1, 2}},
			Supply: []float64{1},
			Demand: []float64{math.MaxFloat64, math.MaxFloat64},
		}, problem.ErrNaNInf},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.p.Validate(), tc.want)
		})
	}
}

// TestValidate_OK accepts an unbalanced but well-formed problem.
func TestValidate_OK(t *testing.T) {
	p := problem.Problem{
		Costs:  [][]float64{{4, 8, 8}, {16, 24, 16}},
		Supply: []float64{76, 82},
		Demand: []float64{72, 102, 41},
	}
	require.NoError(t, p.Validate())
	assert.Equal(t, 2, p.Rows())
	assert.Equal(t, 3, p.Cols())
	assert.Equal(t, 158.0, p.TotalSupply())
	assert.Equal(t, 215.0, p.TotalDemand())
	assert.False(t, p.IsBalanced())
}

// TestClone_NoAliasing mutates the clone and checks the original is intact.
func TestClone_NoAliasing(t *testing.T) {
	p := problem.Problem{
		Costs:  [][]float64{{1, 2}, {3, 4}},
		Supply: []float64{5, 5},
		Demand: []float64{4, 6},
	}
	cp := p.Clone()
	cp.Costs[0][0] = 99
	cp.Supply[0] = 0
	cp.Demand[1] = 0

	assert.Equal(t, 1.0, p.Costs[0][0])
	assert.Equal(t, 5.0, p.Supply[0])
	assert.Equal(t, 6.0, p.Demand[1])
	assert.Nil(t, problem.CloneVector(nil))
}

// TestTolerance: decimal fractions that miss by one ulp still balance.
func TestTolerance(t *testing.T) {
	p := problem.Problem{
		Costs:  [][]float64{{1}, {2}},
		Supply: []float64{0.1, 0.2},
		Demand: []float64{0.3},
	}
	require.NoError(t, p.Validate())
	assert.NotEqual(t, p.TotalSupply(), p.TotalDemand())
	assert.True(t, p.IsBalanced())
	assert.InDelta(t, 0.3, p.Scale(), 1e-15)

	assert.True(t, problem.SameQuantity(0.1+0.2, 0.3))
	assert.False(t, problem.SameQuantity(0.3, 0.31))
	assert.True(t, problem.SameQuantity(0, 0))

	assert.Equal(t, 0.0, problem.Snap(0.2-(0.3-0.1), 0.3))
	assert.Equal(t, 0.0, problem.Snap(-1e-12, 10))
	assert.Equal(t, 0.5, problem.Snap(0.5, 0.3))
	assert.Equal(t, 1e-6, problem.Snap(1e-6, 100))
}
