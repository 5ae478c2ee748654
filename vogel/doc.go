// SPDX-License-Identifier: MIT

// Package vogel implements Vogel's Approximation Method (VAM) for an initial
// feasible solution of the transportation problem, together with a complete,
// deterministic trace of every decision.
//
// 🚀 One round of VAM
//
//  1. Penalties: for every row and column with remaining capacity, the gap
//     between its two cheapest available costs (or the single available cost;
//     or −1 when nothing is available or the line is exhausted).
//  2. Selection: the lines sharing the largest penalty are ranked by their
//     cheapest available cost, then by index, then rows before columns; the
//     first one wins and the full ranking is recorded.
//  3. Cell: the cheapest available cell of the selected line (first index on ties).
//  4. Assignment: q = min(supply[row], demand[col]) is shipped through the cell.
//  5. Retirement: a row/column whose capacity reaches zero is removed from
//     every later round (availability mask; costs stay intact).
//  6. Trace: an Assignment step with before/after snapshots and prose.
//
// The loop runs while both total supply and total demand are positive.
// Defensive conditions are recorded as problem.Failure steps instead of
// aborting: no valid cell (terminal), non-positive quantity (transient) and
// an iteration cap of max(1000, rows·cols·50) (terminal).
//
// State machine:
//
//	RoundStart → PenaltiesComputed → CellSelected → Assigned → RoundStart | Done | Error
//
// Observe it with Options.OnPhase.
//
// Complexity: O((M+N)·M·N) time for M+N−1 rounds of O(M·N) penalty work.
package vogel
