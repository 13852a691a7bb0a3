// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig mirrors the options that may be supplied through the environment.
type envConfig struct {
	// ConfigPath overrides the location of the JSON config file.
	ConfigPath string `env:"RANDGEN_CONFIG"`

	GatewayURL          string        `env:"RANDGEN_GATEWAY_URL"`
	RequestTimeout      time.Duration `env:"RANDGEN_REQUEST_TIMEOUT"`
	VoteInterval        time.Duration `env:"RANDGEN_VOTE_INTERVAL"`
	VoteMaxValue        int64         `env:"RANDGEN_VOTE_MAX_VALUE"`
	VoteMaxRetries      int           `env:"RANDGEN_VOTE_MAX_RETRIES"`
	HotWalletPrivateKey string        `env:"RANDGEN_HOT_WALLET_PRIVATE_KEY"`

	Runtime Runtime
}

// parseEnv populates cfg from environment variables using the caarlos0/env
// library.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be converted
// to the target type).
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// options returns only the variables that were actually set.
func (e *envConfig) options() Options {
	opts := Options{}
	if e.GatewayURL != "" {
		opts[KeyGatewayURL] = e.GatewayURL
	}
	if e.RequestTimeout != 0 {
		opts[KeyRequestTimeout] = e.RequestTimeout
	}
	if e.VoteInterval != 0 {
		opts[KeyVoteInterval] = e.VoteInterval
	}
	if e.VoteMaxValue != 0 {
		opts[KeyVoteMaxValue] = e.VoteMaxValue
	}
	if e.VoteMaxRetries != 0 {
		opts[KeyVoteMaxRetries] = int64(e.VoteMaxRetries)
	}
	if e.HotWalletPrivateKey != "" {
		opts[KeyHotWalletPrivateKey] = e.HotWalletPrivateKey
	}

	return opts
}
