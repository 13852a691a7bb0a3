// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements the randgen command line on top of spf13/cobra.
//
// The root command owns the global flags, loads the configuration and builds
// the logger and the command dispatcher once per process in its
// PersistentPreRunE hook. Each subcommand parses its own arguments and calls
// exactly one dispatcher handler. [Execute] turns the outcome into a process
// exit status.
package cli
