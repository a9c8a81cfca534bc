package main

import (
	"errors"
	"os"

	invoicegen "github.com/avdeyev/go-invoicegen"
	"github.com/avdeyev/go-invoicegen/internal/config"
)

// Exit codes for the invoicegen CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful generation, or user cancellation
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags or config
	ExitIO      = 3 // Locked output, unreadable files, permission denied
	ExitBrowser = 4 // Browser/PDF engine errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// User cancellation is a clean exit, never a failure.
	if errors.Is(err, errCancelled) {
		return ExitSuccess
	}

	// Browser/engine errors (exit 4)
	if errors.Is(err, invoicegen.ErrBrowserConnect) ||
		errors.Is(err, invoicegen.ErrPageCreate) ||
		errors.Is(err, invoicegen.ErrPageLoad) ||
		errors.Is(err, invoicegen.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, invoicegen.ErrOutputLocked) ||
		errors.Is(err, invoicegen.ErrWritePDF) ||
		errors.Is(err, invoicegen.ErrReadData) ||
		errors.Is(err, ErrReadTemplate) {
		return ExitIO
	}

	// Usage/config errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidTimeout) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, ErrParseFlags) {
		return ExitUsage
	}

	return ExitGeneral
}
