package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmount_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Amount
	}{
		{name: "integer", in: `12`, want: "12"},
		{name: "decimal", in: `0.125`, want: "0.125"},
		{name: "big integer keeps precision", in: `123456789012345678901234567890`, want: "123456789012345678901234567890"},
		{name: "string", in: `"42.5"`, want: "42.5"},
		{name: "null", in: `null`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Amount
			require.NoError(t, json.Unmarshal([]byte(tt.in), &a))
			assert.Equal(t, tt.want, a)
		})
	}
}

func TestAmount_UnmarshalJSON_Invalid(t *testing.T) {
	for _, in := range []string{`"lots"`, `true`, `{}`, `[1]`} {
		var a Amount
		assert.Error(t, json.Unmarshal([]byte(in), &a), in)
	}
}

func TestRewardResponse_Decode(t *testing.T) {
	var resp RewardResponse
	require.NoError(t, json.Unmarshal([]byte(`{"reward_amount": 7}`), &resp))
	assert.Equal(t, "7", resp.RewardAmount.String())
}

func TestRegisterVoterRequest_NilAddressIsNull(t *testing.T) {
	b, err := json.Marshal(RegisterVoterRequest{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"cold_wallet_address": null}`, string(b))
}

func TestKeyset_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(struct {
		Keyset Keyset `json:"keyset"`
	}{Keyset: Keyset(`{"pk":"abc"}`)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"keyset":{"pk":"abc"}}`, string(b))

	b, err = json.Marshal(Keyset(nil))
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))
}
