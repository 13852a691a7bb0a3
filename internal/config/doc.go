// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the randgen CLI.
//
// The configuration is an open mapping of option names to values ([Options])
// that is handed to the voting client as-is. It is assembled from several
// sources in the following priority order (earlier sources win):
//  1. Command-line flags
//  2. Environment variables
//  3. JSON config file (<executable dir>/randgen_sdk/configs/config.json by
//     default)
//
// The file is read once at startup and never written back. Per-command
// overrides such as the hot wallet private key are applied to a copy with
// [Options.WithOverrides] so the loaded configuration is never mutated.
package config
