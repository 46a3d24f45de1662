package schema

import "time"

// ActivitySummary is the summary record for one synthetic activity.
// The activity ID is derived from the athlete ID and the per-athlete
// sequence number, so a (seed, athlete, sequence) triple fully identifies
// the record.
type ActivitySummary struct {
	ActivityID      int64     `json:"activity_id"`
	AthleteID       int64     `json:"athlete_id"`
	Sequence        int       `json:"sequence"`
	Sport           Sport     `json:"sport"`
	Title           string    `json:"title"`
	StartTime       time.Time `json:"start_time"`
	DurationSeconds int       `json:"duration_seconds"`
	SamplingSeconds int       `json:"sampling_seconds"`
	Seed            int64     `json:"seed"`
	SampleCount     int       `json:"sample_count"`
	DroppedSamples  int       `json:"dropped_samples"`
	AvgBpm          float64   `json:"avg_bpm"` // Mean over non-dropout samples
	MaxBpm          int       `json:"max_bpm"` // Highest recorded sample
	ThresholdBpm    int       `json:"threshold_bpm"`
	AboveThreshold  int       `json:"above_threshold"` // Samples strictly above ThresholdBpm
	Effort          float64   `json:"effort"`          // Heart-rate reserve usage (0-100)
}

// ActivityRecord pairs a summary with its full stream. Both are produced
// atomically by one generation call and are immutable afterwards.
type ActivityRecord struct {
	Summary ActivitySummary `json:"summary"`
	Stream  StreamSeries    `json:"stream"`
}

// GenerateResult holds the outcome of one batch generation run.
type GenerateResult struct {
	RunID      string            `json:"run_id"`
	OutputDir  string            `json:"output_dir,omitempty"`
	Activities []ActivitySummary `json:"activities"`
}

// StoreStatus describes the state of the run tracking store.
type StoreStatus struct {
	Backend         DatabaseBackend  `json:"backend"`
	Connected       bool             `json:"connected"`
	TotalRuns       int64            `json:"total_runs"`
	TotalActivities int64            `json:"total_activities"`
	LastRun         *time.Time       `json:"last_run,omitempty"`
	TableSizes      map[string]int64 `json:"table_sizes"`
}
