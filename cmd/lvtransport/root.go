// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtransport/balance"
	"github.com/katalvlaran/lvtransport/config"
	"github.com/katalvlaran/lvtransport/problem"
	"github.com/katalvlaran/lvtransport/problemio"
	"github.com/katalvlaran/lvtransport/render"
	"github.com/katalvlaran/lvtransport/server"
	"github.com/katalvlaran/lvtransport/solve"
)

// app carries what PersistentPreRunE prepares for the subcommands.
type app struct {
	configPath string
	cfg        config.Config
	log        *logrus.Logger
}

func newRootCmd(ctx context.Context, version string) *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "lvtransport",
		Short:         "Initial feasible solutions for the transportation problem (Vogel, Northwest Corner)",
		Version:       version,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}
	root.SetContext(ctx)
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (yaml); defaults to $LVTRANSPORT_CONFIG or ./lvtransport.yaml")
	root.PersistentFlags().String("log-level", "info", "log level (trace, debug, info, warn, error)")
	root.PersistentFlags().String("log-format", "text", "log format (text, json)")

	root.AddCommand(a.newSolveCmd(), a.newBalanceCmd(), a.newServeCmd(), newVersionCmd(version))

	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath, cmd.Flags())
	if err != nil {
		return err
	}
	logger, err := cfg.Log.NewLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, logger

	return nil
}

// readProblem loads the file named by args[0], or standard input for "-"
// or no argument.
func readProblem(cmd *cobra.Command, args []string) (problem.Problem, error) {
	if len(args) == 0 || args[0] == "-" {
		return problemio.Decode(cmd.InOrStdin())
	}

	return problemio.Load(args[0])
}

func (a *app) newSolveCmd() *cobra.Command {
	var (
		noBalance bool
		steps     bool
		asJSON    bool
	)
	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Solve a problem file (YAML or JSON; stdin when omitted)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := readProblem(cmd, args)
			if err != nil {
				return err
			}
			opts, err := a.cfg.SolveOptions(a.log.WithField("module", "solve"))
			if err != nil {
				return err
			}
			if noBalance {
				opts.AutoBalance = false
			}

			out, err := solve.Solve(cmd.Context(), p, opts)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), out)
			}
			_, err = io.WriteString(cmd.OutOrStdout(), render.Outcome(out, steps))

			return err
		},
	}
	cmd.Flags().String("method", "", "solver: vogel (vam) or northwest (nw)")
	cmd.Flags().BoolVar(&noBalance, "no-balance", false, "do not pad unbalanced problems with a dummy row/column")
	cmd.Flags().BoolVar(&steps, "steps", false, "print the before/after tables of every step")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the outcome as JSON")

	return cmd
}

func (a *app) newBalanceCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "balance [file]",
		Short: "Print the balanced version of a problem",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := readProblem(cmd, args)
			if err != nil {
				return err
			}
			out, meta, err := balance.Balance(p)
			if err != nil {
				return err
			}
			a.log.WithFields(logrus.Fields{
				"kind":       meta.Kind,
				"difference": meta.Difference,
			}).Info("balanced")

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), struct {
					Balance balance.Meta    `json:"balance"`
					Problem problem.Problem `json:"problem"`
				}{meta, out})
			}

			return problemio.Encode(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print metadata and problem as JSON")

	return cmd
}

func (a *app) newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the solvers over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

			h := server.NewHandler(server.Options{
				Logger:      a.log,
				Registry:    reg,
				AutoBalance: a.cfg.Solver.AutoBalance,
			})

			return server.Serve(cmd.Context(), a.cfg.Server.Addr, a.cfg.Server.ReadHeaderTimeout, h, a.log)
		},
	}
	cmd.Flags().String("addr", "", "listen address (default from config, :8080)")

	return cmd
}

func newVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		// The root PersistentPreRunE needs no config for this.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "lvtransport", version)

			return err
		},
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
