// SPDX-License-Identifier: MIT

package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvtransport/balance"
	"github.com/katalvlaran/lvtransport/problem"
	"github.com/katalvlaran/lvtransport/problemio"
	"github.com/katalvlaran/lvtransport/solve"
)

// DefaultMaxBodyBytes bounds a request body.
const DefaultMaxBodyBytes = 1 << 20

// Error codes of 400 responses.
const (
	CodeInvalidInput = "invalid_input"
	CodeBadQuery     = "bad_query"
	CodeNotFound     = "not_found"
)

// Options configures a Handler.
//   - Logger receives request and failure logs; nil discards them.
//   - Registry holds the metrics served on /metrics; a fresh one when nil.
//   - AutoBalance is the default for resolve routes (overridable per request).
//   - MaxBodyBytes bounds request bodies; 0 means DefaultMaxBodyBytes.
type Options struct {
	Logger       logrus.FieldLogger
	Registry     *prometheus.Registry
	AutoBalance  bool
	MaxBodyBytes int64
}

// Handler routes the HTTP API. It is safe for concurrent use: every request
// gets its own solver state.
type Handler struct {
	router  *httprouter.Router
	logger  logrus.FieldLogger
	metrics *Metrics
	opts    Options

	// solve is solve.Solve; replaced in tests to reach the 500 path.
	solve func(context.Context, problem.Problem, solve.Options) (solve.Outcome, error)
}

// NewHandler builds the router and registers the metrics.
func NewHandler(opts Options) *Handler {
	logger := opts.Logger
	if logger == nil {
		discard := logrus.New()
		discard.Out = io.Discard
		logger = discard
	}
	if opts.Registry == nil {
		opts.Registry = prometheus.NewRegistry()
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}

	h := &Handler{
		logger:  logger.WithField("module", "server"),
		metrics: NewMetrics(opts.Registry, ""),
		opts:    opts,
		solve:   solve.Solve,
	}

	router := httprouter.New()
	router.POST("/resolve/vogel", h.middleware(h.resolve(problem.Vogel)))
	router.POST("/resolve/northwest", h.middleware(h.resolve(problem.Northwest)))
	router.POST("/balance", h.middleware(h.balance))
	router.GET("/healthz", h.middleware(h.healthz))
	router.Handler(http.MethodGet, "/metrics", promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{}))
	router.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.responseJSON(w, r, http.StatusNotFound, errorBody{Error: "no such route", Code: CodeNotFound})
	})
	router.PanicHandler = func(w http.ResponseWriter, r *http.Request, v any) {
		h.internalError(w, r, fmt.Errorf("panic: %v", v))
	}
	h.router = router

	return h
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) middleware(handler httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
		h.logger.Debugf("%s %s", r.Method, r.RequestURI)
		handler(w, r, params)
	}
}

type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

type resolveResponse struct {
	Status       string             `json:"status"`
	Method       problem.Method     `json:"method"`
	ResultStatus problem.Status     `json:"result_status"`
	Allocation   [][]float64        `json:"allocation"`
	Steps        []problem.Step     `json:"steps"`
	Balance      balance.Meta       `json:"balance"`
	TotalCost    float64            `json:"total_cost"`
	Breakdown    []problem.Shipment `json:"breakdown"`
}

type balanceResponse struct {
	Status  string          `json:"status"`
	Balance balance.Meta    `json:"balance"`
	Problem problem.Problem `json:"problem"`
}

func (h *Handler) resolve(method problem.Method) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		autoBalance, err := boolQuery(r, "balance", h.opts.AutoBalance)
		if err != nil {
			h.metrics.reject(string(method), "invalid")
			h.responseJSON(w, r, http.StatusBadRequest, errorBody{Error: err.Error(), Code: CodeBadQuery})

			return
		}

		p, err := h.decode(w, r)
		if err != nil {
			h.metrics.reject(string(method), "invalid")
			h.responseJSON(w, r, http.StatusBadRequest, errorBody{Error: err.Error(), Code: CodeInvalidInput})

			return
		}

		out, err := h.solve(r.Context(), p, solve.Options{
			Method:      method,
			AutoBalance: autoBalance,
			Logger:      h.logger,
		})
		if err != nil {
			h.metrics.reject(string(method), "error")
			h.internalError(w, r, err)

			return
		}
		h.metrics.observe(string(method), string(out.Result.Status), len(out.Result.Steps), out.Elapsed)

		steps := out.Result.Steps
		if steps == nil {
			steps = []problem.Step{}
		}
		h.responseJSON(w, r, http.StatusOK, resolveResponse{
			Status:       "ok",
			Method:       method,
			ResultStatus: out.Result.Status,
			Allocation:   out.Result.Allocation,
			Steps:        steps,
			Balance:      out.Balance,
			TotalCost:    out.TotalCost,
			Breakdown:    out.Result.Breakdown(out.Balanced.Costs),
		})
	}
}

func (h *Handler) balance(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	p, err := h.decode(w, r)
	if err != nil {
		h.responseJSON(w, r, http.StatusBadRequest, errorBody{Error: err.Error(), Code: CodeInvalidInput})

		return
	}
	out, meta, err := balance.Balance(p)
	if err != nil {
		h.internalError(w, r, err)

		return
	}
	h.responseJSON(w, r, http.StatusOK, balanceResponse{Status: "ok", Balance: meta, Problem: out})
}

func (h *Handler) healthz(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.responseJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// decode reads and validates the problem in the request body.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request) (problem.Problem, error) {
	return problemio.Decode(http.MaxBytesReader(w, r.Body, h.opts.MaxBodyBytes))
}

func boolQuery(r *http.Request, key string, def bool) (bool, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("query %s: %q is not a boolean", key, raw)
	}

	return v, nil
}

// internalError answers 500 with a short code and logs the detail under it.
func (h *Handler) internalError(w http.ResponseWriter, r *http.Request, err error) {
	code := uuid.NewString()[:8]
	h.logger.WithFields(logrus.Fields{
		"code":   code,
		"method": r.Method,
		"uri":    r.RequestURI,
	}).WithError(err).Error("internal error")
	h.responseJSON(w, r, http.StatusInternalServerError, errorBody{Error: "internal error", Code: code})
}

func (h *Handler) responseJSON(w http.ResponseWriter, r *http.Request, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	data, err := json.Marshal(v)
	if err != nil {
		h.logger.Errorf("%v %v: marshal response: %v", r.Method, r.RequestURI, err)
		code, data = http.StatusInternalServerError, []byte(`{"error":"internal error","code":"marshal"}`)
	}
	w.WriteHeader(code)
	_, _ = w.Write(data)
}

// Serve runs an HTTP server for handler on addr until ctx is done, then
// shuts it down gracefully. It returns nil after a clean shutdown.
func Serve(ctx context.Context, addr string, readHeaderTimeout time.Duration, handler http.Handler, logger logrus.FieldLogger) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("server: listen %s: %w", addr, err)
	}

	return serve(ctx, listener, readHeaderTimeout, handler, logger)
}

func serve(ctx context.Context, listener net.Listener, readHeaderTimeout time.Duration, handler http.Handler, logger logrus.FieldLogger) error {
	srv := &http.Server{
		ReadHeaderTimeout: readHeaderTimeout,
		Handler:           handler,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.Serve(listener)
	}()
	if logger != nil {
		logger.WithField("addr", listener.Addr().String()).Info("listening")
	}

	select {
	case err := <-errc:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server: %w", err)
	}

	return nil
}
