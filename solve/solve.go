// SPDX-License-Identifier: MIT

package solve

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvtransport/balance"
	"github.com/katalvlaran/lvtransport/northwest"
	"github.com/katalvlaran/lvtransport/problem"
	"github.com/katalvlaran/lvtransport/vogel"
)

// ErrUnknownMethod is returned when Options.Method names no solver.
var ErrUnknownMethod = errors.New("solve: unknown method")

// Options configures one dispatch.
//   - Method selects the heuristic (problem.Vogel by default).
//   - AutoBalance pads unbalanced problems with a dummy row/column first.
//   - MaxIterations overrides the solver safety cap (0 keeps the default).
//   - Logger receives progress entries; nil discards them.
type Options struct {
	Method        problem.Method
	AutoBalance   bool
	MaxIterations int
	Logger        logrus.FieldLogger
}

// DefaultOptions returns Vogel with balancing enabled and no logging.
func DefaultOptions() Options {
	return Options{Method: problem.Vogel, AutoBalance: true}
}

// Outcome bundles everything a caller may want to present.
type Outcome struct {
	Result    problem.Result  `json:"result"`
	Balance   balance.Meta    `json:"balance"`
	Balanced  problem.Problem `json:"problem"`
	TotalCost float64         `json:"total_cost"`
	Elapsed   time.Duration   `json:"-"`
}

// Solve validates p, balances it when requested, runs the chosen method and
// prices the allocation.
//
// The context is only consulted before solving: a single solve is a short,
// synchronous computation that does not block.
func Solve(ctx context.Context, p problem.Problem, opts Options) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return Outcome{}, fmt.Errorf("solve: %w", err)
	}
	if opts.Method == "" {
		opts.Method = problem.Vogel
	}
	log := logger(opts.Logger).WithField("method", opts.Method)

	if err := p.Validate(); err != nil {
		log.WithError(err).Debug("rejected problem")

		return Outcome{}, fmt.Errorf("solve: %w", err)
	}

	input, meta := p.Clone(), balance.Inspect(p)
	if opts.AutoBalance {
		var err error
		if input, meta, err = balance.Balance(p); err != nil {
			return Outcome{}, fmt.Errorf("solve: %w", err)
		}
	}
	if meta.Kind != balance.Balanced {
		log.WithFields(logrus.Fields{
			"balance":    meta.Kind,
			"difference": meta.Difference,
		}).Debug("problem is not balanced")
	}

	start := time.Now()
	res, err := run(input, opts)
	if err != nil {
		return Outcome{}, err
	}
	elapsed := time.Since(start)

	for _, s := range res.Steps {
		entry := log.WithFields(logrus.Fields{"step": s.Seq(), "kind": s.Kind()})
		switch st := s.(type) {
		case problem.Assignment:
			entry.WithFields(logrus.Fields{
				"cell":     st.Cell.String(),
				"quantity": st.Quantity,
			}).Debug(st.Explanation)
		case problem.Failure:
			entry.WithField("code", st.Code).Warn(st.Message)
		}
	}

	out := Outcome{
		Result:    res,
		Balance:   meta,
		Balanced:  input,
		TotalCost: res.TotalCost(input.Costs),
		Elapsed:   elapsed,
	}
	log.WithFields(logrus.Fields{
		"status":     res.Status,
		"steps":      len(res.Steps),
		"total_cost": out.TotalCost,
		"balance":    meta.Kind,
		"elapsed":    elapsed,
	}).Info("solve finished")

	return out, nil
}

// run routes to the solver for opts.Method.
func run(p problem.Problem, opts Options) (problem.Result, error) {
	switch opts.Method {
	case problem.Vogel:
		return vogel.Solve(p, vogel.Options{MaxIterations: opts.MaxIterations})
	case problem.Northwest:
		return northwest.Solve(p, northwest.Options{MaxIterations: opts.MaxIterations})
	default:
		return problem.Result{}, fmt.Errorf("%w %q", ErrUnknownMethod, opts.Method)
	}
}

// logger returns l, or a logger writing nowhere when l is nil.
func logger(l logrus.FieldLogger) logrus.FieldLogger {
	if l != nil {
		return l
	}
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	return discard
}
