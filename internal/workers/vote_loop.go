// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"time"

	"github.com/MKhiriev/randgen-voter/internal/app"
	"github.com/MKhiriev/randgen-voter/internal/logger"
	"github.com/sethvargo/go-retry"
)

// DefaultRetryBase is the first backoff delay of a failed voting round.
const DefaultRetryBase = time.Second

// VoteLoopConfig configures a [VoteLoop].
type VoteLoopConfig struct {
	// Interval is the pause between the start of two rounds. It also caps
	// the backoff delay between retries of one round.
	Interval time.Duration
	// MaxValue is the exclusive upper bound of a vote; votes are drawn
	// uniformly from [0, MaxValue).
	MaxValue int64
	// MaxRetries caps the retries of one round.
	MaxRetries int
	// RetryBase is the first backoff delay. Zero means DefaultRetryBase.
	RetryBase time.Duration
	// IsRetryable classifies round failures. A nil func treats every
	// failure as fatal.
	IsRetryable func(error) bool
	// Rand is the entropy source for votes. Nil means crypto/rand.
	Rand io.Reader
}

// VoteLoop is a [Worker] that casts a random vote immediately and then once
// per interval.
//
// Retryable round failures are retried with capped exponential backoff; a
// round that exhausts its retries is logged and skipped. A fatal failure ends
// the loop.
type VoteLoop struct {
	voter  Voter
	cfg    VoteLoopConfig
	logger *logger.Logger
}

var _ Worker = (*VoteLoop)(nil)

// NewVoteLoop returns a VoteLoop submitting through voter.
func NewVoteLoop(voter Voter, cfg VoteLoopConfig, log *logger.Logger) *VoteLoop {
	if cfg.RetryBase <= 0 {
		cfg.RetryBase = DefaultRetryBase
	}
	if cfg.IsRetryable == nil {
		cfg.IsRetryable = func(error) bool { return false }
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.Reader
	}
	if log == nil {
		log = logger.Nop()
	}

	return &VoteLoop{voter: voter, cfg: cfg, logger: log}
}

// Run votes until ctx is cancelled, in which case it returns nil, or until a
// round fails with a non-retryable error, which is returned.
func (l *VoteLoop) Run(ctx context.Context) error {
	if l.cfg.Interval <= 0 {
		return fmt.Errorf("vote interval must be positive, got %s", l.cfg.Interval)
	}
	if l.cfg.MaxValue < 1 {
		return fmt.Errorf("vote max value must be at least 1, got %d", l.cfg.MaxValue)
	}

	ticker := time.NewTicker(l.cfg.Interval)
	defer ticker.Stop()

	for round := 1; ; round++ {
		err := l.runRound(ctx, round)
		switch {
		case ctx.Err() != nil:
			return nil
		case err == nil:
		case l.cfg.IsRetryable(err):
			l.logger.Warn().Err(err).Int("round", round).Msg("voting round failed, retries exhausted")
		default:
			return fmt.Errorf("voting round %d: %w", round, err)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (l *VoteLoop) runRound(ctx context.Context, round int) error {
	vote, err := l.drawVote()
	if err != nil {
		return err
	}

	backoff := retry.NewExponential(l.cfg.RetryBase)
	backoff = retry.WithCappedDuration(l.cfg.Interval, backoff)
	backoff = retry.WithMaxRetries(uint64(l.cfg.MaxRetries), backoff)

	attempt := 0
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++

		url, err := l.voter.Encrypt(ctx, vote)
		if err != nil {
			return l.classify(err, round, attempt, "encrypt")
		}

		result, err := l.voter.SubmitVote(ctx, url)
		if err != nil {
			return l.classify(err, round, attempt, "submit vote")
		}

		raw, _ := result.MarshalJSON()
		l.logger.Info().
			Int("round", round).
			Int64("vote", vote).
			Str("cypher_text_url", string(url)).
			RawJSON("result", raw).
			Msg(app.MsgVoteSubmitted)
		return nil
	})
}

func (l *VoteLoop) classify(err error, round, attempt int, op string) error {
	err = fmt.Errorf("%s: %w", op, err)
	if !l.cfg.IsRetryable(err) {
		return err
	}

	l.logger.Debug().Err(err).Int("round", round).Int("attempt", attempt).Msg("voting attempt failed")
	return retry.RetryableError(err)
}

func (l *VoteLoop) drawVote() (int64, error) {
	n, err := rand.Int(l.cfg.Rand, big.NewInt(l.cfg.MaxValue))
	if err != nil {
		return 0, fmt.Errorf("draw vote: %w", err)
	}
	return n.Int64(), nil
}
