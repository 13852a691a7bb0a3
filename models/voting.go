// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// TxHash is the hash of a transaction submitted on chain.
type TxHash string

// CipherTextURL references encrypted vote data produced by the encrypt
// operation and consumed by vote submission.
type CipherTextURL string

// Keyset is the FHE key material published by the gateway, kept as raw JSON.
type Keyset json.RawMessage

// MarshalJSON emits the keyset verbatim.
func (k Keyset) MarshalJSON() ([]byte, error) {
	return marshalRaw(k)
}

// SubmitResult is the unstructured outcome of a vote submission, kept as raw
// JSON.
type SubmitResult json.RawMessage

// MarshalJSON emits the result verbatim.
func (r SubmitResult) MarshalJSON() ([]byte, error) {
	return marshalRaw(r)
}

func marshalRaw(b []byte) ([]byte, error) {
	if len(b) == 0 {
		return []byte("null"), nil
	}
	return b, nil
}

// RegisterVoterRequest is the body of POST /api/voters.
type RegisterVoterRequest struct {
	// ColdWalletAddress is sent as null when absent; validating it is the
	// gateway's job.
	ColdWalletAddress   *string `json:"cold_wallet_address"`
	HotWalletPrivateKey string  `json:"hot_wallet_private_key,omitempty"`
}

// RegisterVoterResponse is the body returned by POST /api/voters.
type RegisterVoterResponse struct {
	TxHash TxHash `json:"tx_hash"`
}

// RewardRequest is the body of POST /api/voters/reward.
type RewardRequest struct {
	ColdWalletAddress *string `json:"cold_wallet_address"`
}

// RewardResponse is the body returned by POST /api/voters/reward.
type RewardResponse struct {
	RewardAmount Amount `json:"reward_amount"`
}

// EncryptRequest is the body of POST /api/fhe/encrypt.
type EncryptRequest struct {
	Num int64 `json:"num"`
}

// EncryptResponse is the body returned by POST /api/fhe/encrypt.
type EncryptResponse struct {
	CypherTextURL CipherTextURL `json:"cypher_text_url"`
}

// SubmitVoteRequest is the body of POST /api/votes.
type SubmitVoteRequest struct {
	CypherTextURL       CipherTextURL `json:"cypher_text_url"`
	HotWalletPrivateKey string        `json:"hot_wallet_private_key,omitempty"`
}
