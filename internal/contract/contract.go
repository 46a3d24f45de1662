// Package contract has the configuration contract and the store interfaces
// shared by the pulsegen CLI, the generation core and the persistence layer.
package contract

import (
	"time"

	"github.com/pulsegen/pulsegen/schema"
)

// RunRecord is the stored metadata for one batch generation run.
type RunRecord struct {
	RunID           string
	StartTime       time.Time
	EndTime         *time.Time
	RunDurationMs   *int64
	TotalActivities int
	ConfigParams    string // JSON-encoded generation parameters
}

// StoredActivity is one persisted activity row: the summary columns plus the
// JSON-encoded stream axes.
type StoredActivity struct {
	RunID      string
	Summary    schema.ActivitySummary
	StreamJSON string
}

// ActivityStore persists generation runs and their activity records.
type ActivityStore interface {
	// BeginRun records the start of a batch run.
	BeginRun(runID string, startTime time.Time, configParams map[string]any) error

	// EndRun records completion data for a batch run.
	EndRun(runID string, endTime time.Time, totalActivities int) error

	// SaveActivity persists one generated activity under the given run.
	SaveActivity(runID string, rec schema.ActivityRecord) error

	// GetStatus reports backend state and row counts.
	GetStatus() (*schema.StoreStatus, error)

	// GetAllRuns returns every stored run, oldest first.
	GetAllRuns() ([]RunRecord, error)

	// GetAllActivities returns every stored activity, oldest run first.
	GetAllActivities() ([]StoredActivity, error)

	// Clear removes all stored runs and activities.
	Clear() error

	// Close releases the underlying database handle.
	Close() error
}

// StoreManager provides access to the configured activity store.
type StoreManager interface {
	GetActivityStore() ActivityStore
}
