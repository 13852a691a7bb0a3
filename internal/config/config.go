// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
)

const (
	defaultConfigDir    = "randgen_sdk"
	defaultConfigSubdir = "configs"
	defaultConfigFile   = "config.json"
)

// Config is the process-wide configuration assembled once at startup.
type Config struct {
	// Options is the merged option mapping passed to every client constructor.
	Options Options

	// Runtime holds settings that drive the CLI process itself rather than the
	// voting client (logging, exit code policy).
	Runtime Runtime

	// FilePath is the JSON file that was consulted, whether or not it existed.
	FilePath string

	// FileLoaded reports whether FilePath existed and was merged.
	FileLoaded bool
}

// Runtime holds CLI process settings.
//
// Struct tags:
//   - env: environment variable name (caarlos0/env).
type Runtime struct {
	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: RANDGEN_LOG_LEVEL
	LogLevel string `env:"RANDGEN_LOG_LEVEL"`

	// LogFormat selects the log encoding: "json" (default) or "console".
	// Env: RANDGEN_LOG_FORMAT
	LogFormat string `env:"RANDGEN_LOG_FORMAT"`

	// ExitZeroOnError makes the process exit with status 0 even when a command
	// fails. Failures are still logged.
	// Env: RANDGEN_EXIT_ZERO_ON_ERROR
	ExitZeroOnError bool `env:"RANDGEN_EXIT_ZERO_ON_ERROR"`
}

// Load builds the process configuration from flags, environment variables and
// the JSON config file, in that priority order.
//
// A missing file at the default location yields an empty option mapping. A
// missing file at a path given explicitly through flags or RANDGEN_CONFIG is an
// error, as is a file that cannot be decoded.
func Load(flags *Flags) (*Config, error) {
	return newConfigBuilder().
		withFlags(flags).
		withEnv().
		withFile().
		build()
}

// DefaultFilePath returns the fixed location of the JSON config file, resolved
// relative to the running executable.
func DefaultFilePath() string {
	execPath, err := os.Executable()
	if err != nil {
		return filepath.Join(defaultConfigDir, defaultConfigSubdir, defaultConfigFile)
	}
	if resolved, err := filepath.EvalSymlinks(execPath); err == nil {
		execPath = resolved
	}

	return filepath.Join(filepath.Dir(execPath), defaultConfigDir, defaultConfigSubdir, defaultConfigFile)
}
