package dispatcher

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/randgen-voter/internal/adapter"
)

// ErrClientConstruction is returned when the voting client cannot be built
// from the effective options.
var ErrClientConstruction = errors.New("cannot construct voting client")

// CommandError is returned by every failed command. The underlying error has
// already been logged.
type CommandError struct {
	Command string
	Err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %v", e.Command, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Retryable reports whether running the command again may succeed.
func (e *CommandError) Retryable() bool {
	return adapter.IsRetryable(e.Err)
}
