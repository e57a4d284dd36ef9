package main

import (
	"errors"
	"os"

	blogen "github.com/alnah/go-blogen"
	"github.com/alnah/go-blogen/internal/config"
)

// Exit codes for the blogen CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage.
const (
	ExitSuccess = 0 // Site generated (possibly with skipped documents)
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied, write failure
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use
// fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, blogen.ErrReadCSS) ||
		errors.Is(err, blogen.ErrReadSource) ||
		errors.Is(err, blogen.ErrOutputDir) ||
		errors.Is(err, blogen.ErrWriteIndex) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrConfigInvalid) ||
		errors.Is(err, blogen.ErrNoCSS) ||
		errors.Is(err, blogen.ErrNoSource) ||
		errors.Is(err, blogen.ErrNoOutput) ||
		errors.Is(err, blogen.ErrBadPolicy) ||
		errors.Is(err, blogen.ErrBadWorkers) {
		return ExitUsage
	}

	return ExitGeneral
}
