package config

import (
	"fmt"
	"time"
)

// Client defaults applied when an option is absent.
const (
	DefaultGatewayURL     = "http://127.0.0.1:16001"
	DefaultRequestTimeout = 30 * time.Second
	DefaultVoteInterval   = time.Minute
	DefaultVoteMaxValue   = 2
	DefaultVoteMaxRetries = 5
)

// ClientSettings is the typed view of [Options] consumed by the HTTP voting
// client.
type ClientSettings struct {
	// GatewayURL is the base URL of the randgen gateway.
	GatewayURL string
	// RequestTimeout bounds every outbound request.
	RequestTimeout time.Duration
	// HotWalletPrivateKey signs register and vote requests. May be empty, in
	// which case the gateway falls back to its own wallet.
	HotWalletPrivateKey string
	// VoteInterval is the pause between continuous voting rounds.
	VoteInterval time.Duration
	// VoteMaxValue is the exclusive upper bound of a continuous vote.
	VoteMaxValue int64
	// VoteMaxRetries caps the retries of one continuous voting round.
	VoteMaxRetries int
}

// ClientSettings extracts the client settings from o, filling in defaults for
// absent options and validating the result.
func (o Options) ClientSettings() (ClientSettings, error) {
	settings := ClientSettings{
		GatewayURL:     DefaultGatewayURL,
		RequestTimeout: DefaultRequestTimeout,
		VoteInterval:   DefaultVoteInterval,
		VoteMaxValue:   DefaultVoteMaxValue,
		VoteMaxRetries: DefaultVoteMaxRetries,
	}

	if v, ok, err := o.String(KeyGatewayURL); err != nil {
		return ClientSettings{}, err
	} else if ok && v != "" {
		settings.GatewayURL = v
	}

	if v, ok, err := o.String(KeyHotWalletPrivateKey); err != nil {
		return ClientSettings{}, err
	} else if ok {
		settings.HotWalletPrivateKey = v
	}

	if v, ok, err := o.Duration(KeyRequestTimeout); err != nil {
		return ClientSettings{}, err
	} else if ok {
		settings.RequestTimeout = v
	}

	if v, ok, err := o.Duration(KeyVoteInterval); err != nil {
		return ClientSettings{}, err
	} else if ok {
		settings.VoteInterval = v
	}

	if v, ok, err := o.Int(KeyVoteMaxValue); err != nil {
		return ClientSettings{}, err
	} else if ok {
		settings.VoteMaxValue = v
	}

	if v, ok, err := o.Int(KeyVoteMaxRetries); err != nil {
		return ClientSettings{}, err
	} else if ok {
		settings.VoteMaxRetries = int(v)
	}

	return settings, settings.validate()
}

func (s ClientSettings) validate() error {
	if s.RequestTimeout <= 0 {
		return fmt.Errorf("%w: %s must be positive", ErrInvalidOption, KeyRequestTimeout)
	}
	if s.VoteInterval <= 0 {
		return fmt.Errorf("%w: %s must be positive", ErrInvalidOption, KeyVoteInterval)
	}
	if s.VoteMaxValue < 1 {
		return fmt.Errorf("%w: %s must be at least 1", ErrInvalidOption, KeyVoteMaxValue)
	}
	if s.VoteMaxRetries < 0 {
		return fmt.Errorf("%w: %s must not be negative", ErrInvalidOption, KeyVoteMaxRetries)
	}

	return nil
}
