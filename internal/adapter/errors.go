package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrRateLimited         = errors.New("rate limited")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnavailable         = errors.New("gateway unavailable")

	// ErrTransport wraps network-level failures (connection refused, reset,
	// timeouts) where no HTTP response was received.
	ErrTransport = errors.New("transport error")
	// ErrInsecureTransport is returned when a request carrying a hot wallet
	// key would be sent in clear text to a non-loopback host.
	ErrInsecureTransport = errors.New("refusing to send wallet key over insecure transport")
	// ErrInvalidResponse is returned when a 2xx response cannot be decoded or
	// lacks the expected field.
	ErrInvalidResponse = errors.New("invalid gateway response")
)
