package dial

import (
	"errors"

	"github.com/guyguy2/dial/internal/browser"
	"github.com/guyguy2/dial/internal/core/phone"
)

// Sentinel errors for the call pipeline. Each maps to a process exit code.
var (
	// ErrInvalidInput means the target is neither a known contact nor a
	// plausible number (no digit content).
	ErrInvalidInput = errors.New("neither a known contact nor a plausible number")
	// ErrOpenFailed means the external opener invocation itself failed.
	ErrOpenFailed = errors.New("failed to open call url")
	// ErrStoreWrite means contact or history persistence failed.
	ErrStoreWrite = errors.New("failed to persist store changes")
)

// Process exit codes.
const (
	ExitOK           = 0
	ExitGeneral      = 1
	ExitInvalidInput = 2
	ExitNoBrowser    = 3
	ExitOpenFailed   = 4
)

// ExitCode maps a pipeline error to its process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrInvalidInput), errors.Is(err, phone.ErrInvalidFormat):
		return ExitInvalidInput
	case errors.Is(err, browser.ErrNoneAvailable):
		return ExitNoBrowser
	case errors.Is(err, ErrOpenFailed):
		return ExitOpenFailed
	default:
		return ExitGeneral
	}
}
