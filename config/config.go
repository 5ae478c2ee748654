// SPDX-License-Identifier: MIT

// Package config loads lvtransport settings from defaults, an optional YAML
// file, LVTRANSPORT_* environment variables and command-line flags, in that
// order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvtransport/problem"
	"github.com/katalvlaran/lvtransport/solve"
)

// EnvPrefix prefixes every environment override, e.g. LVTRANSPORT_SERVER_ADDR.
const EnvPrefix = "LVTRANSPORT"

// Config holds application configuration.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Solver SolverConfig `mapstructure:"solver"`
	Log    LogConfig    `mapstructure:"log"`
}

// ServerConfig holds HTTP transport settings.
type ServerConfig struct {
	Addr              string        `mapstructure:"addr"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
}

// SolverConfig holds the dispatch defaults.
type SolverConfig struct {
	Method      string `mapstructure:"method"`
	AutoBalance bool   `mapstructure:"auto_balance"`
}

// LogConfig holds logrus settings; Format is "text" or "json".
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"addr":       "server.addr",
	"method":     "solver.method",
	"log-level":  "log.level",
	"log-format": "log.format",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_header_timeout", 5*time.Second)
	v.SetDefault("solver.method", string(problem.Vogel))
	v.SetDefault("solver.auto_balance", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// Load reads configuration. path names an explicit YAML file; when empty,
// $LVTRANSPORT_CONFIG is tried, then lvtransport.yaml in the working
// directory and in $HOME/.config/lvtransport (both optional). flags may be
// nil; any flag listed in flagKeys that was set on the command line wins.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("yaml")
	if path == "" {
		path = os.Getenv(EnvPrefix + "_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("lvtransport")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "lvtransport"))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: read: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("config: bind %s: %w", name, err)
				}
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate checks the values Load cannot type-check.
func (c Config) Validate() error {
	if _, err := problem.ParseMethod(c.Solver.Method); err != nil {
		return fmt.Errorf("config: solver.method: %w", err)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("config: log.format: unknown format %q", c.Log.Format)
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("config: server.addr is empty")
	}

	return nil
}

// SolveOptions returns the dispatch options described by c.
func (c Config) SolveOptions(logger logrus.FieldLogger) (solve.Options, error) {
	m, err := problem.ParseMethod(c.Solver.Method)
	if err != nil {
		return solve.Options{}, fmt.Errorf("config: %w", err)
	}

	return solve.Options{Method: m, AutoBalance: c.Solver.AutoBalance, Logger: logger}, nil
}

// NewLogger builds a logrus logger writing to out per c.
func (c LogConfig) NewLogger(out io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(c.Level)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(lvl)
	if c.Format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return l, nil
}
