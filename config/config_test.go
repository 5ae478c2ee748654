package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtransport/config"
	"github.com/katalvlaran/lvtransport/problem"
)

// chdir isolates Load from any lvtransport.yaml next to the tests.
func chdir(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("LVTRANSPORT_CONFIG", "")
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t)

	c, err := config.Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, ":8080", c.Server.Addr)
	assert.Equal(t, 5*time.Second, c.Server.ReadHeaderTimeout)
	assert.Equal(t, "vogel", c.Solver.Method)
	assert.True(t, c.Solver.AutoBalance)
	assert.Equal(t, "info", c.Log.Level)
	assert.Equal(t, "text", c.Log.Format)
}

func TestLoad_FileEnvFlags(t *testing.T) {
	chdir(t)

	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  addr: ":9000"
  read_header_timeout: 2s
solver:
  method: northwest
  auto_balance: false
log:
  level: debug
`), 0o600))

	c, err := config.Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, ":9000", c.Server.Addr)
	assert.Equal(t, 2*time.Second, c.Server.ReadHeaderTimeout)
	assert.Equal(t, "northwest", c.Solver.Method)
	assert.False(t, c.Solver.AutoBalance)
	assert.Equal(t, "debug", c.Log.Level)

	t.Setenv("LVTRANSPORT_LOG_FORMAT", "json")
	t.Setenv("LVTRANSPORT_SERVER_ADDR", ":9100")
	c, err = config.Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "json", c.Log.Format)
	assert.Equal(t, ":9100", c.Server.Addr)

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("addr", "", "")
	fs.String("method", "", "")
	require.NoError(t, fs.Parse([]string{"--addr", ":9200", "--method", "vam"}))
	c, err = config.Load(path, fs)
	require.NoError(t, err)
	assert.Equal(t, ":9200", c.Server.Addr)
	assert.Equal(t, "vam", c.Solver.Method)

	t.Setenv("LVTRANSPORT_CONFIG", path)
	c, err = config.Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "northwest", c.Solver.Method)
}

func TestLoad_Errors(t *testing.T) {
	chdir(t)

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)

	t.Setenv("LVTRANSPORT_SOLVER_METHOD", "simplex")
	_, err = config.Load("", nil)
	assert.ErrorContains(t, err, "solver.method")
}

func TestValidate(t *testing.T) {
	ok := config.Config{
		Server: config.ServerConfig{Addr: ":1"},
		Solver: config.SolverConfig{Method: "vogel"},
		Log:    config.LogConfig{Level: "warn", Format: "json"},
	}
	require.NoError(t, ok.Validate())

	bad := ok
	bad.Log.Format = "xml"
	assert.ErrorContains(t, bad.Validate(), "log.format")

	bad = ok
	bad.Log.Level = "loud"
	assert.ErrorContains(t, bad.Validate(), "log.level")

	bad = ok
	bad.Server.Addr = ""
	assert.ErrorContains(t, bad.Validate(), "server.addr")
}

func TestSolveOptionsAndLogger(t *testing.T) {
	c := config.Config{Solver: config.SolverConfig{Method: "nw", AutoBalance: true}}
	opts, err := c.SolveOptions(nil)
	require.NoError(t, err)
	assert.Equal(t, problem.Northwest, opts.Method)
	assert.True(t, opts.AutoBalance)

	var buf bytes.Buffer
	l, err := config.LogConfig{Level: "debug", Format: "json"}.NewLogger(&buf)
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, l.GetLevel())
	l.WithField("module", "test").Debug("hello")
	assert.Contains(t, buf.String(), `"module":"test"`)

	_, err = config.LogConfig{Level: "nope"}.NewLogger(&buf)
	assert.Error(t, err)
}
