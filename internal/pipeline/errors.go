package pipeline

import (
	"errors"
	"fmt"
)

// Exit codes for failures that do not carry their own.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// UsageError reports missing or invalid command input. Nothing has been
// written when it is returned.
type UsageError struct {
	Msg string
	Err error
}

func (e *UsageError) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *UsageError) Unwrap() error { return e.Err }

// InstallError reports a package manager that exited non-zero. The project
// directory and manifest are left in place.
type InstallError struct {
	Code int
}

func (e *InstallError) Error() string {
	return fmt.Sprintf("installing dependencies failed with exit code %d", e.Code)
}

// InitializerError reports an initializer that exited non-zero while strict
// initialization was requested.
type InitializerError struct {
	Code int
}

func (e *InitializerError) Error() string {
	return fmt.Sprintf("initializer exited with code %d", e.Code)
}

// ExitCode returns the process exit code for err. A child killed by a
// signal reports a negative code, which maps to ExitFailure.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var usage *UsageError
	if errors.As(err, &usage) {
		return ExitUsage
	}
	var install *InstallError
	if errors.As(err, &install) && install.Code > 0 {
		return install.Code
	}
	var initErr *InitializerError
	if errors.As(err, &initErr) && initErr.Code > 0 {
		return initErr.Code
	}
	return ExitFailure
}
