package cli

import (
	"errors"

	"github.com/MKhiriev/randgen-voter/internal/config"
	"github.com/MKhiriev/randgen-voter/internal/dispatcher"
)

// Process exit statuses.
const (
	ExitOK = 0
	// ExitFailure means the command failed and repeating it will not help.
	ExitFailure = 1
	// ExitUsage means the command line or the configuration is invalid.
	ExitUsage = 2
	// ExitTempFail (EX_TEMPFAIL) means the command failed on a transient
	// error and may be retried.
	ExitTempFail = 75
)

// ExitCode maps the error returned by a command to an exit status. When
// exitZeroOnError is set, command failures exit with ExitOK; invalid command
// lines and configurations still exit with ExitUsage.
func ExitCode(err error, exitZeroOnError bool) int {
	if err == nil {
		return ExitOK
	}

	var cmdErr *dispatcher.CommandError
	if !errors.As(err, &cmdErr) {
		return ExitUsage
	}

	switch {
	case errors.Is(err, config.ErrInvalidOption):
		return ExitUsage
	case exitZeroOnError:
		return ExitOK
	case cmdErr.Retryable():
		return ExitTempFail
	default:
		return ExitFailure
	}
}
