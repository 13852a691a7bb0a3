// Package workers provides long-running background jobs driven by the CLI.
//
// The only job today is [VoteLoop], which keeps casting random votes through
// a [Voter] until its context is cancelled.
package workers

import (
	"context"

	"github.com/MKhiriev/randgen-voter/models"
)

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks for the duration of the work and returns nil once ctx is
// cancelled. A non-nil error means the worker stopped on its own.
type Worker interface {
	Run(ctx context.Context) error
}

// Voter is the subset of the voting client a [VoteLoop] needs.
type Voter interface {
	Encrypt(ctx context.Context, num int64) (models.CipherTextURL, error)
	SubmitVote(ctx context.Context, cypherTextURL models.CipherTextURL) (models.SubmitResult, error)
}
