package dispatcher

import (
	"context"
	"fmt"

	"github.com/MKhiriev/randgen-voter/internal/adapter"
	"github.com/MKhiriev/randgen-voter/internal/app"
	"github.com/MKhiriev/randgen-voter/internal/config"
	"github.com/MKhiriev/randgen-voter/internal/logger"
	"github.com/MKhiriev/randgen-voter/internal/utils"
	"github.com/MKhiriev/randgen-voter/models"
	"github.com/rs/zerolog"
)

// Command names as they appear in log records and errors.
const (
	CommandRegisterVoter     = "register_voter"
	CommandCheckVotingReward = "check_voting_reward"
	CommandPrintFHEKeyset    = "print_fhe_keyset"
	CommandEncrypt           = "encrypt"
	CommandSubmitVote        = "submit_vote"
	CommandVoteNonstop       = "vote_nonstop"
)

// ClientFactory builds a voting client bound to opts.
type ClientFactory func(opts config.Options) (adapter.VoterClient, error)

// RegisterVoterInput holds the arguments of register_voter. Nil fields were
// not given on the command line.
type RegisterVoterInput struct {
	HotWalletPrivateKey *string
	ColdWalletAddress   *string
}

// CheckVotingRewardInput holds the arguments of check_voting_reward.
type CheckVotingRewardInput struct {
	ColdWalletAddress *string
}

// EncryptInput holds the arguments of encrypt.
type EncryptInput struct {
	Num int64
	// CopyToClipboard also puts the resulting cipher-text URL on the system
	// clipboard.
	CopyToClipboard bool
}

// SubmitVoteInput holds the arguments of submit_vote.
type SubmitVoteInput struct {
	CypherTextURL       string
	HotWalletPrivateKey *string
}

// VoteNonstopInput holds the arguments of vote_nonstop.
type VoteNonstopInput struct {
	HotWalletPrivateKey *string
}

// Dispatcher runs CLI commands against a voting client.
type Dispatcher struct {
	options   config.Options
	newClient ClientFactory
	logger    *logger.Logger
	clipboard utils.Clipboard
	ids       utils.IDGenerator
}

// Option customises a Dispatcher.
type Option func(*Dispatcher)

// WithClipboard replaces the system clipboard.
func WithClipboard(c utils.Clipboard) Option {
	return func(d *Dispatcher) {
		d.clipboard = c
	}
}

// WithIDGenerator replaces the UUIDv7 invocation ID generator.
func WithIDGenerator(g utils.IDGenerator) Option {
	return func(d *Dispatcher) {
		d.ids = g
	}
}

// New returns a Dispatcher over the base options. The base options are never
// modified; overrides are applied to a copy for each command. A nil factory
// selects the HTTP gateway client.
func New(options config.Options, newClient ClientFactory, log *logger.Logger, opts ...Option) *Dispatcher {
	if newClient == nil {
		newClient = adapter.NewHTTPVoterClient
	}
	if log == nil {
		log = logger.Nop()
	}

	d := &Dispatcher{
		options:   options.Clone(),
		newClient: newClient,
		logger:    log,
		clipboard: utils.NewSystemClipboard(),
		ids:       utils.NewUUIDGenerator(),
	}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// RegisterVoter registers the configured hot wallet as a voter and returns
// the registration transaction hash.
func (d *Dispatcher) RegisterVoter(ctx context.Context, in RegisterVoterInput) (models.TxHash, error) {
	ctx, log := d.begin(ctx, CommandRegisterVoter)

	client, err := d.client(log, hotWalletOverride(in.HotWalletPrivateKey))
	if err != nil {
		return "", d.fail(log, CommandRegisterVoter, err)
	}

	txHash, err := client.RegisterVoter(ctx, in.ColdWalletAddress)
	if err != nil {
		return "", d.fail(log, CommandRegisterVoter, err)
	}

	log.Info().Str("tx_hash", string(txHash)).Msg(app.MsgRegistrationSuccessful)
	return txHash, nil
}

// CheckVotingReward returns the reward accumulated by a cold wallet.
func (d *Dispatcher) CheckVotingReward(ctx context.Context, in CheckVotingRewardInput) (models.Amount, error) {
	ctx, log := d.begin(ctx, CommandCheckVotingReward)

	client, err := d.client(log, nil)
	if err != nil {
		return "", d.fail(log, CommandCheckVotingReward, err)
	}

	amount, err := client.CheckColdWalletReward(ctx, in.ColdWalletAddress)
	if err != nil {
		return "", d.fail(log, CommandCheckVotingReward, err)
	}

	log.Info().Str("reward_amount", amount.String()).Msg(app.MsgRewardChecked)
	return amount, nil
}

// PrintFHEKeyset fetches the published FHE keyset.
func (d *Dispatcher) PrintFHEKeyset(ctx context.Context) (models.Keyset, error) {
	ctx, log := d.begin(ctx, CommandPrintFHEKeyset)

	client, err := d.client(log, nil)
	if err != nil {
		return nil, d.fail(log, CommandPrintFHEKeyset, err)
	}

	keyset, err := client.FetchFHEKeyset(ctx)
	if err != nil {
		return nil, d.fail(log, CommandPrintFHEKeyset, err)
	}

	raw, _ := keyset.MarshalJSON()
	log.Info().RawJSON("keyset", raw).Msg(app.MsgKeysetFetched)
	return keyset, nil
}

// Encrypt encrypts in.Num and returns the cipher-text URL.
func (d *Dispatcher) Encrypt(ctx context.Context, in EncryptInput) (models.CipherTextURL, error) {
	ctx, log := d.begin(ctx, CommandEncrypt)

	client, err := d.client(log, nil)
	if err != nil {
		return "", d.fail(log, CommandEncrypt, err)
	}

	log.Info().Int64("num", in.Num).Msg(app.MsgEncrypting)

	url, err := client.Encrypt(ctx, in.Num)
	if err != nil {
		return "", d.fail(log, CommandEncrypt, err)
	}

	log.Info().Str("cypher_text_url", string(url)).Msg(app.MsgEncrypted)

	if in.CopyToClipboard {
		if err = d.clipboard.WriteAll(string(url)); err != nil {
			log.Warn().Err(err).Msg(app.MsgClipboardFailed)
		} else {
			log.Debug().Msg(app.MsgClipboardCopied)
		}
	}

	return url, nil
}

// SubmitVote submits the vote stored at in.CypherTextURL and returns the
// gateway's result.
func (d *Dispatcher) SubmitVote(ctx context.Context, in SubmitVoteInput) (models.SubmitResult, error) {
	ctx, log := d.begin(ctx, CommandSubmitVote)

	client, err := d.client(log, hotWalletOverride(in.HotWalletPrivateKey))
	if err != nil {
		return nil, d.fail(log, CommandSubmitVote, err)
	}

	result, err := client.SubmitVote(ctx, models.CipherTextURL(in.CypherTextURL))
	if err != nil {
		return nil, d.fail(log, CommandSubmitVote, err)
	}

	raw, _ := result.MarshalJSON()
	log.Info().RawJSON("result", raw).Msg(app.MsgVoteSubmitted)
	return result, nil
}

// VoteNonstop votes continuously until ctx is cancelled or the client stops
// with an error.
func (d *Dispatcher) VoteNonstop(ctx context.Context, in VoteNonstopInput) error {
	ctx, log := d.begin(ctx, CommandVoteNonstop)

	client, err := d.client(log, hotWalletOverride(in.HotWalletPrivateKey))
	if err != nil {
		return d.fail(log, CommandVoteNonstop, err)
	}

	log.Info().Msg(app.MsgVotingStarted)
	err = client.VoteContinuously(ctx)
	log.Info().Msg(app.MsgVotingStopped)

	if err != nil {
		return d.fail(log, CommandVoteNonstop, err)
	}
	return nil
}

// begin tags ctx and a child logger with a fresh invocation ID.
func (d *Dispatcher) begin(ctx context.Context, command string) (context.Context, *logger.Logger) {
	id := d.ids.Generate()

	l := d.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("invocation_id", id).Str("command", command)
	})

	ctx = utils.WithInvocationID(ctx, id)
	return l.WithContext(ctx), l
}

func (d *Dispatcher) client(log *logger.Logger, overrides config.Options) (adapter.VoterClient, error) {
	opts, err := d.options.WithOverrides(overrides)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrClientConstruction, err)
	}

	if key, ok := overrides[config.KeyHotWalletPrivateKey].(string); ok {
		log.Debug().
			Str("hot_wallet_fingerprint", utils.KeyFingerprint(key)).
			Msg(app.MsgHotWalletOverride)
	}

	client, err := d.newClient(opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrClientConstruction, err)
	}

	return client, nil
}

func (d *Dispatcher) fail(log *logger.Logger, command string, err error) error {
	cmdErr := &CommandError{Command: command, Err: err}
	log.Error().Err(err).Bool("retryable", cmdErr.Retryable()).Msg(app.MsgCommandFailed)
	return cmdErr
}

func hotWalletOverride(key *string) config.Options {
	if key == nil {
		return nil
	}
	return config.Options{config.KeyHotWalletPrivateKey: *key}
}
