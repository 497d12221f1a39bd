package cvoutline

import (
	"io"
	"log/slog"

	"github.com/tsawler/cvoutline/layout"
)

// ProcessOptions holds configuration for outline and profile extraction.
type ProcessOptions struct {
	// Engine thresholds and weights
	config layout.Config

	// Schema-validate layout JSON before decoding
	strict bool

	logger *slog.Logger
}

// defaultOptions returns the default processing options.
func defaultOptions() ProcessOptions {
	return ProcessOptions{
		config: layout.DefaultConfig(),
		strict: false,
		logger: discardLogger,
	}
}

// clone creates a copy of ProcessOptions. Config holds only values, so a
// plain copy is enough.
func (o ProcessOptions) clone() ProcessOptions {
	return o
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
