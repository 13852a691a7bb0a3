package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/url"
	"strings"

	"github.com/MKhiriev/randgen-voter/internal/config"
	"github.com/MKhiriev/randgen-voter/internal/logger"
	"github.com/MKhiriev/randgen-voter/internal/utils"
	"github.com/MKhiriev/randgen-voter/internal/workers"
	"github.com/MKhiriev/randgen-voter/models"
	"github.com/go-resty/resty/v2"
)

// RequestIDHeader carries the invocation ID of the CLI command that issued a
// request.
const RequestIDHeader = "X-Request-ID"

type httpVoterClient struct {
	client   *utils.HTTPClient
	settings config.ClientSettings

	// secure is true when the gateway is reached over TLS or on a loopback
	// address, i.e. when a wallet key may be put on the wire.
	secure bool
}

// NewHTTPVoterClient constructs an HTTP/REST implementation of [VoterClient]
// bound to opts. It extracts the typed client settings, normalises and
// validates the gateway base URL and configures the underlying HTTP client
// with the request timeout.
//
// Returns an error if an option is malformed or the gateway URL cannot be
// parsed.
func NewHTTPVoterClient(opts config.Options) (VoterClient, error) {
	settings, err := opts.ClientSettings()
	if err != nil {
		return nil, fmt.Errorf("invalid client options: %w", err)
	}

	baseURL, err := normalizeBaseURL(settings.GatewayURL)
	if err != nil {
		return nil, fmt.Errorf("invalid gateway url: %w", err)
	}

	return &httpVoterClient{
		client:   utils.NewHTTPClient(baseURL, settings.RequestTimeout),
		settings: settings,
		secure:   isSecureBaseURL(baseURL),
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func isSecureBaseURL(baseURL string) bool {
	u, err := url.Parse(baseURL)
	if err != nil {
		return false
	}
	if u.Scheme == "https" {
		return true
	}

	host := u.Hostname()
	if host == "localhost" {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}

// RegisterVoter implements [VoterClient]. It POSTs the cold wallet address
// and the hot wallet key to POST /api/voters and returns the transaction hash.
func (h *httpVoterClient) RegisterVoter(ctx context.Context, coldWalletAddress *string) (models.TxHash, error) {
	key, err := h.signingKey()
	if err != nil {
		return "", fmt.Errorf("register voter: %w", err)
	}

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.RegisterVoterRequest{
			ColdWalletAddress:   coldWalletAddress,
			HotWalletPrivateKey: key,
		}).
		Post("/api/voters")
	if err != nil {
		return "", mapTransportError("register voter request", err)
	}
	h.logResponse(ctx, resp)
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var out models.RegisterVoterResponse
	if err = decodeJSON(resp, &out); err != nil {
		return "", fmt.Errorf("decode register voter response: %w", err)
	}
	if out.TxHash == "" {
		return "", fmt.Errorf("%w: missing tx_hash", ErrInvalidResponse)
	}

	return out.TxHash, nil
}

// CheckColdWalletReward implements [VoterClient]. It POSTs the cold wallet
// address to POST /api/voters/reward and returns the reward amount.
func (h *httpVoterClient) CheckColdWalletReward(ctx context.Context, coldWalletAddress *string) (models.Amount, error) {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.RewardRequest{ColdWalletAddress: coldWalletAddress}).
		Post("/api/voters/reward")
	if err != nil {
		return "", mapTransportError("check reward request", err)
	}
	h.logResponse(ctx, resp)
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var out models.RewardResponse
	if err = decodeJSON(resp, &out); err != nil {
		return "", fmt.Errorf("decode reward response: %w", err)
	}
	if out.RewardAmount == "" {
		return "", fmt.Errorf("%w: missing reward_amount", ErrInvalidResponse)
	}

	return out.RewardAmount, nil
}

// FetchFHEKeyset implements [VoterClient]. It GETs GET /api/fhe/keyset and
// returns the body verbatim.
func (h *httpVoterClient) FetchFHEKeyset(ctx context.Context) (models.Keyset, error) {
	resp, err := h.request(ctx).Get("/api/fhe/keyset")
	if err != nil {
		return nil, mapTransportError("fetch keyset request", err)
	}
	h.logResponse(ctx, resp)
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	body := bytes.TrimSpace(resp.Body())
	if len(body) == 0 || !json.Valid(body) {
		return nil, fmt.Errorf("%w: keyset is not valid JSON", ErrInvalidResponse)
	}

	return models.Keyset(bytes.Clone(body)), nil
}

// Encrypt implements [VoterClient]. It POSTs num to POST /api/fhe/encrypt and
// returns the cipher-text URL.
func (h *httpVoterClient) Encrypt(ctx context.Context, num int64) (models.CipherTextURL, error) {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.EncryptRequest{Num: num}).
		Post("/api/fhe/encrypt")
	if err != nil {
		return "", mapTransportError("encrypt request", err)
	}
	h.logResponse(ctx, resp)
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var out models.EncryptResponse
	if err = decodeJSON(resp, &out); err != nil {
		return "", fmt.Errorf("decode encrypt response: %w", err)
	}
	if out.CypherTextURL == "" {
		return "", fmt.Errorf("%w: missing cypher_text_url", ErrInvalidResponse)
	}

	return out.CypherTextURL, nil
}

// SubmitVote implements [VoterClient]. It POSTs the cipher-text URL and the
// hot wallet key to POST /api/votes. A JSON body is returned verbatim, a
// non-JSON body is returned as a JSON string and an empty body as null.
func (h *httpVoterClient) SubmitVote(ctx context.Context, cypherTextURL models.CipherTextURL) (models.SubmitResult, error) {
	key, err := h.signingKey()
	if err != nil {
		return nil, fmt.Errorf("submit vote: %w", err)
	}

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.SubmitVoteRequest{
			CypherTextURL:       cypherTextURL,
			HotWalletPrivateKey: key,
		}).
		Post("/api/votes")
	if err != nil {
		return nil, mapTransportError("submit vote request", err)
	}
	h.logResponse(ctx, resp)
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	body := bytes.TrimSpace(resp.Body())
	switch {
	case len(body) == 0:
		return nil, nil
	case json.Valid(body):
		return models.SubmitResult(bytes.Clone(body)), nil
	default:
		quoted, err := json.Marshal(string(body))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
		}
		return models.SubmitResult(quoted), nil
	}
}

// VoteContinuously implements [VoterClient]. It runs a [workers.VoteLoop]
// over this client until ctx is cancelled or a round fails permanently.
func (h *httpVoterClient) VoteContinuously(ctx context.Context) error {
	if _, err := h.signingKey(); err != nil {
		return fmt.Errorf("vote continuously: %w", err)
	}

	loop := workers.NewVoteLoop(h, workers.VoteLoopConfig{
		Interval:    h.settings.VoteInterval,
		MaxValue:    h.settings.VoteMaxValue,
		MaxRetries:  h.settings.VoteMaxRetries,
		IsRetryable: IsRetryable,
	}, logger.FromContext(ctx))

	return loop.Run(ctx)
}

func (h *httpVoterClient) signingKey() (string, error) {
	key := strings.TrimSpace(h.settings.HotWalletPrivateKey)
	if key != "" && !h.secure {
		return "", ErrInsecureTransport
	}
	return key, nil
}

func (h *httpVoterClient) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if id, ok := utils.GetInvocationIDFromContext(ctx); ok {
		req.SetHeader(RequestIDHeader, id)
	}
	return req
}

func (h *httpVoterClient) logResponse(ctx context.Context, resp *resty.Response) {
	logger.FromContext(ctx).Debug().
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Int("status", resp.StatusCode()).
		Dur("latency", resp.Time()).
		Msg("gateway request")
}

func decodeJSON(resp *resty.Response, v any) error {
	if err := json.Unmarshal(resp.Body(), v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}
	return nil
}
