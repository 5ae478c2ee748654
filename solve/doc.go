// SPDX-License-Identifier: MIT

// Package solve is the single entry point that turns a raw problem into an
// explained initial feasible solution.
//
// 🚚 Pipeline:
//
//	validate → (optional) balance → run the chosen method → price the result
//
// ✨ Contracts:
//   - The caller's Problem is never mutated; Outcome.Balanced is the copy the
//     solver actually ran on (with a dummy row/column when balancing applied).
//   - Shape errors come back as the problem sentinels, wrapped with "solve: ".
//   - Solver anomalies are not errors: they are Failure steps in the trace and
//     Outcome.Result.Status tells whether the run finished.
//   - Progress is logged through a logrus.FieldLogger: one debug entry per step,
//     one info entry per solve. A nil Logger discards everything.
//
// ⚙️ Usage:
//
//	out, err := solve.Solve(ctx, p, solve.DefaultOptions())
//	if err != nil {
//	  // errors.Is(err, problem.ErrDimensionMismatch) and friends
//	}
//	fmt.Println(out.Result.Allocation, out.TotalCost)
package solve
