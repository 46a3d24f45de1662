// Package parquet provides data structures and functions for exporting
// pulsegen run tracking data to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	parquetgo "github.com/parquet-go/parquet-go"
	"github.com/pulsegen/pulsegen/internal/contract"
)

// GenerationRun represents a single batch generation run with metadata.
// This struct maps to the pulsegen_runs database table.
type GenerationRun struct {
	// RunID is the unique identifier for this generation run
	RunID string `parquet:"run_id,snappy"`

	// StartTime is when the run began (stored as TIMESTAMP with nanosecond precision)
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the run completed (nullable)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// RunDurationMs is the duration of the run in milliseconds (nullable)
	RunDurationMs *int64 `parquet:"run_duration_ms,optional,snappy"`

	// TotalActivities is the number of activities generated in this run
	TotalActivities int32 `parquet:"total_activities,snappy"`

	// ConfigParams contains the JSON-encoded generation parameters
	ConfigParams string `parquet:"config_params,snappy"`
}

// Activity represents one generated activity within a run.
// This struct maps to the pulsegen_activities database table.
type Activity struct {
	// RunID references the parent generation run
	RunID string `parquet:"run_id,snappy"`

	// ActivityID is the derived identifier for this activity
	ActivityID int64 `parquet:"activity_id,snappy"`

	// AthleteID is the athlete this activity belongs to
	AthleteID int64 `parquet:"athlete_id,snappy"`

	// Sequence is the 1-based position within the athlete's batch
	Sequence int32 `parquet:"sequence,snappy"`

	// Sport is the drawn sport type
	Sport string `parquet:"sport,snappy"`

	// Title is the human-readable activity title
	Title string `parquet:"title,snappy"`

	// StartTime is the synthetic calendar start of the activity
	StartTime time.Time `parquet:"start_time,snappy"`

	// DurationSeconds is the activity length in seconds
	DurationSeconds int32 `parquet:"duration_seconds,snappy"`

	// SamplingSeconds is the stream sampling interval in seconds
	SamplingSeconds int32 `parquet:"sampling_seconds,snappy"`

	// Seed is the per-activity generator seed
	Seed int64 `parquet:"seed,snappy"`

	// SampleCount is the number of stream samples
	SampleCount int32 `parquet:"sample_count,snappy"`

	// DroppedSamples is the number of zeroed dropout samples
	DroppedSamples int32 `parquet:"dropped_samples,snappy"`

	// AvgBpm is the mean heart rate over non-dropout samples
	AvgBpm float64 `parquet:"avg_bpm,snappy"`

	// MaxBpm is the highest recorded sample
	MaxBpm int32 `parquet:"max_bpm,snappy"`

	// ThresholdBpm is the threshold used for time-above accounting
	ThresholdBpm int32 `parquet:"threshold_bpm,snappy"`

	// AboveThreshold is the number of samples strictly above the threshold
	AboveThreshold int32 `parquet:"above_threshold,snappy"`

	// Effort is the heart-rate reserve usage (0-100)
	Effort float64 `parquet:"effort,snappy"`

	// StreamJSON contains the JSON-encoded stream axes
	StreamJSON string `parquet:"stream_json,snappy"`
}

// WriteGenerationRunsParquet writes a slice of GenerationRun structs to a Parquet file.
func WriteGenerationRunsParquet(data []GenerationRun, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the GenerationRun struct tags
	writer := parquetgo.NewGenericWriter[GenerationRun](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteActivitiesParquet writes a slice of Activity structs to a Parquet file.
func WriteActivitiesParquet(data []Activity, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the Activity struct tags
	writer := parquetgo.NewGenericWriter[Activity](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertRunRecords converts contract.RunRecord to GenerationRun for Parquet export.
func ConvertRunRecords(records []contract.RunRecord) []GenerationRun {
	result := make([]GenerationRun, len(records))
	for i, record := range records {
		result[i] = GenerationRun{
			RunID:           record.RunID,
			StartTime:       record.StartTime,
			EndTime:         record.EndTime,
			RunDurationMs:   record.RunDurationMs,
			TotalActivities: int32(record.TotalActivities),
			ConfigParams:    record.ConfigParams,
		}
	}
	return result
}

// ConvertStoredActivities converts contract.StoredActivity to Activity for Parquet export.
func ConvertStoredActivities(records []contract.StoredActivity) []Activity {
	result := make([]Activity, len(records))
	for i, record := range records {
		s := record.Summary
		result[i] = Activity{
			RunID:           record.RunID,
			ActivityID:      s.ActivityID,
			AthleteID:       s.AthleteID,
			Sequence:        int32(s.Sequence),
			Sport:           string(s.Sport),
			Title:           s.Title,
			StartTime:       s.StartTime,
			DurationSeconds: int32(s.DurationSeconds),
			SamplingSeconds: int32(s.SamplingSeconds),
			Seed:            s.Seed,
			SampleCount:     int32(s.SampleCount),
			DroppedSamples:  int32(s.DroppedSamples),
			AvgBpm:          s.AvgBpm,
			MaxBpm:          int32(s.MaxBpm),
			ThresholdBpm:    int32(s.ThresholdBpm),
			AboveThreshold:  int32(s.AboveThreshold),
			Effort:          s.Effort,
			StreamJSON:      record.StreamJSON,
		}
	}
	return result
}
