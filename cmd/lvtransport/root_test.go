package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const problemYAML = `costs:
  - [4, 8]
  - [6, 3]
supply: [8, 4]
demand: [5, 5]
`

// run executes the CLI in an isolated directory and returns stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("LVTRANSPORT_CONFIG", "")

	var out, errOut bytes.Buffer
	cmd := newRootCmd(context.Background(), "1.2.3")
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()

	return out.String(), err
}

func TestSolve_Report(t *testing.T) {
	out, err := run(t, problemYAML, "solve", "--steps")
	require.NoError(t, err)
	assert.Contains(t, out, "Method: vogel | Status: done")
	assert.Contains(t, out, "D3 (dummy)")
	assert.Contains(t, out, "Before:")
	assert.Contains(t, out, "Min Z =")
}

func TestSolve_JSONNorthwestNoBalance(t *testing.T) {
	out, err := run(t, problemYAML, "solve", "--json", "--method", "nw", "--no-balance")
	require.NoError(t, err)

	var got struct {
		Result struct {
			Method     string      `json:"method"`
			Status     string      `json:"status"`
			Allocation [][]float64 `json:"allocation"`
		} `json:"result"`
		Balance struct {
			Kind string `json:"kind"`
		} `json:"balance"`
		TotalCost float64 `json:"total_cost"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "northwest", got.Result.Method)
	assert.Equal(t, "stopped", got.Result.Status)
	assert.Equal(t, [][]float64{{5, 3}, {0, 2}}, got.Result.Allocation)
	assert.Equal(t, "unbalanced", got.Balance.Kind)
	assert.Equal(t, 50.0, got.TotalCost)
}

func TestSolve_FileArgument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "p.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"costs": [[7]], "supply": [3], "demand": [3]}`), 0o600))

	out, err := run(t, "", "solve", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Min Z = 21")
}

func TestSolve_Errors(t *testing.T) {
	_, err := run(t, `{"costs": [[1, 2]], "supply": [1], "demand": [1]}`, "solve")
	assert.Error(t, err)

	_, err = run(t, problemYAML, "solve", "--method", "simplex")
	assert.ErrorContains(t, err, "solver.method")

	_, err = run(t, problemYAML, "solve", "--log-format", "xml")
	assert.ErrorContains(t, err, "log.format")
}

func TestBalance(t *testing.T) {
	out, err := run(t, problemYAML, "balance")
	require.NoError(t, err)
	assert.Contains(t, out, "demand:")
	assert.Contains(t, out, "- 2")

	out, err = run(t, problemYAML, "balance", "--json")
	require.NoError(t, err)
	var got struct {
		Balance struct {
			Kind       string  `json:"kind"`
			Difference float64 `json:"difference"`
		} `json:"balance"`
		Problem struct {
			Demand []float64 `json:"demand"`
		} `json:"problem"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "dummy_column_added", got.Balance.Kind)
	assert.Equal(t, 2.0, got.Balance.Difference)
	assert.Equal(t, []float64{5, 5, 2}, got.Problem.Demand)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "lvtransport 1.2.3\n", out)
}

func TestServe_StopsOnCancel(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("LVTRANSPORT_CONFIG", "")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cmd := newRootCmd(ctx, "test")
	cmd.SetArgs([]string{"serve", "--addr", "127.0.0.1:0"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	assert.NoError(t, cmd.Execute())
}
