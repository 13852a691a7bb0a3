// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the voting client the CLI forwards its commands
// to.
//
// The primary abstraction is [VoterClient], which decouples the command
// dispatcher from the component that actually owns wallets, FHE encryption
// and chain submission. The package ships an HTTP/REST implementation
// ([NewHTTPVoterClient]) that talks to a randgen gateway.
//
// Error values defined in errors.go are mapped from HTTP status codes and
// transport failures so that callers can use [errors.Is] for
// transport-agnostic error handling and [IsRetryable] to tell transient
// failures from permanent ones.
package adapter

import (
	"context"

	"github.com/MKhiriev/randgen-voter/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/voter_client_mock.go -package=mock

// VoterClient defines the voting operations consumed by the CLI. A client is
// bound to one configuration snapshot at construction time and is meant to be
// used for a single command.
type VoterClient interface {
	// RegisterVoter registers the hot wallet as a voter whose rewards go to
	// coldWalletAddress and returns the registration transaction hash. A nil
	// address is forwarded as-is; validating it is not the caller's concern.
	RegisterVoter(ctx context.Context, coldWalletAddress *string) (models.TxHash, error)

	// CheckColdWalletReward returns the reward accumulated by
	// coldWalletAddress. A nil address is forwarded as-is.
	CheckColdWalletReward(ctx context.Context, coldWalletAddress *string) (models.Amount, error)

	// FetchFHEKeyset returns the published FHE key material.
	FetchFHEKeyset(ctx context.Context) (models.Keyset, error)

	// Encrypt encrypts num under the FHE keyset and returns a reference to
	// the stored cipher text.
	Encrypt(ctx context.Context, num int64) (models.CipherTextURL, error)

	// SubmitVote signs and submits the vote stored at cypherTextURL and
	// returns the gateway's submission result.
	SubmitVote(ctx context.Context, cypherTextURL models.CipherTextURL) (models.SubmitResult, error)

	// VoteContinuously votes round after round until ctx is cancelled or a
	// non-retryable error occurs. It returns nil on cancellation.
	VoteContinuously(ctx context.Context) error
}
