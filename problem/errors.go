// SPDX-License-Identifier: MIT
// Package problem: sentinel error set.
// Every message is prefixed with "problem: " so it greps well in logs.
// Callers match with errors.Is; outer layers may wrap with fmt.Errorf("ctx: %w", ErrX).

package problem

import "errors"

var (
	// ErrEmptyProblem is returned when the cost matrix has no rows or no columns.
	ErrEmptyProblem = errors.New("problem: cost matrix must have at least one row and one column")

	// ErrNonRectangular indicates cost rows of differing lengths.
	ErrNonRectangular = errors.New("problem: all cost rows must have the same length")

	// ErrDimensionMismatch indicates len(Supply) != rows or len(Demand) != cols.
	ErrDimensionMismatch = errors.New("problem: dimension mismatch between costs and supply/demand")

	// ErrNegativeValue indicates a negative cost, supply or demand entry.
	ErrNegativeValue = errors.New("problem: negative value")

	// ErrNaNInf indicates a NaN or ±Inf entry; every value must be finite.
	ErrNaNInf = errors.New("problem: NaN or Inf encountered")

	// ErrOutOfRange indicates a row or column index outside the grid.
	ErrOutOfRange = errors.New("problem: index out of range")
)
