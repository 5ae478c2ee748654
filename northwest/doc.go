// SPDX-License-Identifier: MIT

// Package northwest implements the Northwest Corner method, the simplest
// constructive heuristic for an initial feasible transportation plan.
//
// Algorithm:
//  1. Start the cursor at the top-left cell (0,0).
//  2. If the current row is exhausted, move down; if the current column is
//     exhausted, move right.
//  3. Otherwise ship q = min(supply[row], demand[col]) through (row,col),
//     record the step with the remaining supply/demand after the shipment,
//     and advance past whichever side reached zero.
//  4. Stop when the cursor leaves the matrix.
//
// Costs are never consulted for decisions; they only appear in the trace.
// Unbalanced input is not an error: the walk simply stops once one side is
// exhausted (Result.Status == problem.StatusStopped).
//
// Complexity: O(M+N) iterations, O(M·N) memory for the allocation.
package northwest
