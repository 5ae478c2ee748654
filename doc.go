// SPDX-License-Identifier: MIT

// Package lvtransport computes initial feasible solutions to the classical
// transportation problem and explains every decision it takes.
//
// 🚚 What is lvtransport?
//
//	Goods leave M supply points and reach N demand points at a per-unit
//	cost. lvtransport builds a first feasible shipping plan with two
//	constructive heuristics and records an ordered, immutable step trace:
//		• Vogel's Approximation Method: penalties, deterministic tie-breaks,
//		  cheapest cell of the most penalised line
//		• Northwest Corner: the top-left reference walk
//
// ✨ Why choose lvtransport?
//
//   - Explainable – every step carries the state before/after and prose
//   - Deterministic – identical input gives a byte-identical trace
//   - Safe – caller data is copied, never mutated
//   - Ready to serve – CLI and HTTP transport with metrics
//
// Packages, leaves first:
//
//	problem/  : Problem, availability-masked Grid, tagged Step variants, Result
//	balance/  : pad unbalanced problems with a zero-cost dummy row/column
//	northwest/: Northwest Corner solver
//	vogel/    : Vogel Approximation solver
//	solve/    : validate → balance → solve → price, with logging
//	render/   : before/after step tables, allocation, cost breakdown
//	problemio/: YAML/JSON problem files
//	config/   : defaults, file, environment and flags
//	server/   : HTTP routes and Prometheus metrics
//	cmd/lvtransport: the command-line tool
//
// Optimality improvement (MODI, stepping-stone) is out of scope: the result
// is a starting basis, not an optimum.
//
//	go install github.com/katalvlaran/lvtransport/cmd/lvtransport@latest
package lvtransport
