// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package dispatcher maps randgen CLI commands onto the voting client.
//
// Every command follows the same path: apply the per-command overrides to a
// copy of the loaded options, build a fresh client from that copy, call one
// client method and write exactly one structured log record describing the
// outcome. Failures are logged at the command boundary and returned as
// [*CommandError] so the entry point can choose an exit code.
package dispatcher
