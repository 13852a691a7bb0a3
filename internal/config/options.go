// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"

	"dario.cat/mergo"
)

// Well-known option names. Any other key found in the config file is kept and
// passed through to the client untouched.
const (
	KeyHotWalletPrivateKey = "hot_wallet_private_key"
	KeyGatewayURL          = "gateway_url"
	KeyRequestTimeout      = "request_timeout"
	KeyVoteInterval        = "vote_interval"
	KeyVoteMaxValue        = "vote_max_value"
	KeyVoteMaxRetries      = "vote_max_retries"
)

// Options maps option names to values.
type Options map[string]any

// Clone returns a shallow copy of o. A nil receiver yields an empty, non-nil
// mapping.
func (o Options) Clone() Options {
	clone := make(Options, len(o))
	for k, v := range o {
		clone[k] = v
	}
	return clone
}

// WithOverrides returns a copy of o with every entry of overrides written on
// top of it. The receiver is left unchanged.
func (o Options) WithOverrides(overrides Options) (Options, error) {
	merged := o.Clone()
	if len(overrides) == 0 {
		return merged, nil
	}

	if err := mergo.Merge(&merged, overrides, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("error applying overrides: %w", err)
	}

	return merged, nil
}

// String returns the string value stored under key.
func (o Options) String(key string) (string, bool, error) {
	raw, ok := o[key]
	if !ok || raw == nil {
		return "", false, nil
	}

	switch v := raw.(type) {
	case string:
		return v, true, nil
	case json.Number:
		return v.String(), true, nil
	default:
		return "", false, fmt.Errorf("%w: %s must be a string, got %T", ErrInvalidOption, key, raw)
	}
}

// Duration returns the duration stored under key. Strings are parsed with
// time.ParseDuration ("30s", "1m"); bare numbers are seconds.
func (o Options) Duration(key string) (time.Duration, bool, error) {
	raw, ok := o[key]
	if !ok || raw == nil {
		return 0, false, nil
	}

	var seconds float64
	switch v := raw.(type) {
	case time.Duration:
		return v, true, nil
	case string:
		d, err := time.ParseDuration(v)
		if err != nil {
			return 0, false, fmt.Errorf("%w: %s: %w", ErrInvalidOption, key, err)
		}
		return d, true, nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false, fmt.Errorf("%w: %s: %w", ErrInvalidOption, key, err)
		}
		seconds = f
	case float64:
		seconds = v
	case int:
		seconds = float64(v)
	case int64:
		seconds = float64(v)
	default:
		return 0, false, fmt.Errorf("%w: %s must be a duration, got %T", ErrInvalidOption, key, raw)
	}

	return time.Duration(seconds * float64(time.Second)), true, nil
}

// Int returns the integer stored under key. Numeric strings are accepted.
func (o Options) Int(key string) (int64, bool, error) {
	raw, ok := o[key]
	if !ok || raw == nil {
		return 0, false, nil
	}

	switch v := raw.(type) {
	case int:
		return int64(v), true, nil
	case int64:
		return v, true, nil
	case float64:
		if v != math.Trunc(v) {
			return 0, false, fmt.Errorf("%w: %s must be an integer, got %v", ErrInvalidOption, key, v)
		}
		return int64(v), true, nil
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false, fmt.Errorf("%w: %s: %w", ErrInvalidOption, key, err)
		}
		return n, true, nil
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, false, fmt.Errorf("%w: %s: %w", ErrInvalidOption, key, err)
		}
		return n, true, nil
	default:
		return 0, false, fmt.Errorf("%w: %s must be an integer, got %T", ErrInvalidOption, key, raw)
	}
}
