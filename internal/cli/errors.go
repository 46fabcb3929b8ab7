package cli

// This file holds debug-mode state and the structured error logging used by
// commands. Errors returned by this package are wrapped with the package's
// generated wrap so they carry erreport's own frame chain.

import (
	"errors"
	"sync"

	"go.uber.org/zap"

	"erreport/pkg/report/reportlog"
)

var (
	debugMode   bool
	debugModeMu sync.RWMutex
)

// SetDebugMode sets the global debug mode flag.
// When enabled, logStructuredError writes the full frame chain to the logger.
func SetDebugMode(enabled bool) {
	debugModeMu.Lock()
	defer debugModeMu.Unlock()
	debugMode = enabled
}

// IsDebugMode returns whether debug mode is enabled.
func IsDebugMode() bool {
	debugModeMu.RLock()
	defer debugModeMu.RUnlock()
	return debugMode
}

// ErrCheckDryRun is returned when gen is asked to both check and dry-run.
var ErrCheckDryRun = errors.New("--check and --dry-run are mutually exclusive")

// logStructuredError logs err with its report fields (component, location,
// chain, frames, cause). Only logs when debug mode is enabled.
func logStructuredError(logger *zap.Logger, err error, msg string) {
	if logger == nil || err == nil || !IsDebugMode() {
		return
	}
	reportlog.Zap(logger, err, msg)
}
