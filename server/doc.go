// SPDX-License-Identifier: MIT

// Package server exposes the solvers over HTTP.
//
// Routes:
//
//	POST /resolve/vogel      solve with Vogel's Approximation Method
//	POST /resolve/northwest  solve with the Northwest Corner method
//	POST /balance            pad an unbalanced problem, no solving
//	GET  /healthz            liveness
//	GET  /metrics            Prometheus exposition
//
// Request bodies are problem documents as read by problemio (JSON or YAML,
// English or Spanish keys). Resolve routes balance the problem first unless
// the query carries balance=false.
//
// Client mistakes answer 400 with {"error", "code"}. Anything unexpected
// answers 500 with a short random code; the code and the full detail go to
// the log so an operator can match a report to its cause.
package server
