package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientSettings_Defaults(t *testing.T) {
	s, err := Options{}.ClientSettings()
	require.NoError(t, err)

	assert.Equal(t, DefaultGatewayURL, s.GatewayURL)
	assert.Equal(t, DefaultRequestTimeout, s.RequestTimeout)
	assert.Equal(t, DefaultVoteInterval, s.VoteInterval)
	assert.Equal(t, int64(DefaultVoteMaxValue), s.VoteMaxValue)
	assert.Equal(t, DefaultVoteMaxRetries, s.VoteMaxRetries)
	assert.Empty(t, s.HotWalletPrivateKey)
}

func TestClientSettings_FromOptions(t *testing.T) {
	s, err := Options{
		KeyGatewayURL:          "https://gw.example",
		KeyRequestTimeout:      "10s",
		KeyVoteInterval:        json.Number("30"),
		KeyVoteMaxValue:        json.Number("100"),
		KeyVoteMaxRetries:      json.Number("0"),
		KeyHotWalletPrivateKey: "0xkey",
	}.ClientSettings()
	require.NoError(t, err)

	assert.Equal(t, "https://gw.example", s.GatewayURL)
	assert.Equal(t, 10*time.Second, s.RequestTimeout)
	assert.Equal(t, 30*time.Second, s.VoteInterval)
	assert.Equal(t, int64(100), s.VoteMaxValue)
	assert.Equal(t, 0, s.VoteMaxRetries)
	assert.Equal(t, "0xkey", s.HotWalletPrivateKey)
}

func TestClientSettings_Invalid(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{name: "zero timeout", opts: Options{KeyRequestTimeout: "0s"}},
		{name: "negative interval", opts: Options{KeyVoteInterval: "-1s"}},
		{name: "zero max value", opts: Options{KeyVoteMaxValue: 0}},
		{name: "negative retries", opts: Options{KeyVoteMaxRetries: -1}},
		{name: "key not a string", opts: Options{KeyHotWalletPrivateKey: 42}},
		{name: "timeout not a duration", opts: Options{KeyRequestTimeout: "soon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.opts.ClientSettings()
			assert.ErrorIs(t, err, ErrInvalidOption)
		})
	}
}
