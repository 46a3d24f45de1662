// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/pulsegen/pulsegen/internal/contract"
	"github.com/pulsegen/pulsegen/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for
// the generation core.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteActivities prints a batch generation result using the configured
// output format.
func (ow *OutWriter) WriteActivities(result schema.GenerateResult, cfg *contract.Config, duration time.Duration) error {
	return PrintActivityResults(result, cfg, duration)
}

// WritePreview prints a single activity record, stream included, using the
// configured output format.
func (ow *OutWriter) WritePreview(rec schema.ActivityRecord, cfg *contract.Config) error {
	return PrintPreview(rec, cfg)
}
