// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// randgen command dispatcher and background workers.
//
// All Msg* constants are human-readable message strings written into log
// entries to describe the outcome of an operation. Keeping them in one place
// keeps the wording stable for anything that parses the logs.
package app

const (
	// MsgRegistrationSuccessful accompanies the transaction hash of a
	// successful voter registration.
	MsgRegistrationSuccessful = "Registration successful"

	// MsgRewardChecked accompanies the reward amount of a cold wallet.
	MsgRewardChecked = "voting reward checked"

	// MsgKeysetFetched accompanies the published FHE keyset.
	MsgKeysetFetched = "FHE keyset fetched"

	// MsgEncrypting is logged before a number is sent for encryption.
	MsgEncrypting = "encrypting"

	// MsgEncrypted accompanies the cipher-text URL of an encrypted number.
	MsgEncrypted = "encryption successful"

	// MsgVoteSubmitted accompanies the gateway's result of a vote submission.
	MsgVoteSubmitted = "vote submitted"

	// MsgVotingStarted is logged when continuous voting begins.
	MsgVotingStarted = "continuous voting started"

	// MsgVotingStopped is logged when continuous voting returns, whatever the
	// reason.
	MsgVotingStopped = "continuous voting stopped"

	// MsgCommandFailed accompanies the error that ended a command.
	MsgCommandFailed = "command failed"

	// MsgHotWalletOverride is logged at debug level when a hot wallet key
	// from the command line replaces the configured one.
	MsgHotWalletOverride = "hot wallet key override applied"

	// MsgClipboardCopied is logged when the cipher-text URL was copied.
	MsgClipboardCopied = "cypher text url copied to clipboard"

	// MsgClipboardFailed is logged when the clipboard is unavailable.
	MsgClipboardFailed = "failed to copy cypher text url to clipboard"
)
