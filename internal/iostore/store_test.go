package iostore

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/pulsegen/pulsegen/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord(activityID, athleteID int64, sequence int) schema.ActivityRecord {
	return schema.ActivityRecord{
		Summary: schema.ActivitySummary{
			ActivityID:      activityID,
			AthleteID:       athleteID,
			Sequence:        sequence,
			Sport:           schema.RunSport,
			Title:           "Run #1",
			StartTime:       time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC),
			DurationSeconds: 600,
			SamplingSeconds: 1,
			Seed:            activityID + 1,
			SampleCount:     601,
			DroppedSamples:  6,
			AvgBpm:          131.2,
			MaxBpm:          177,
			ThresholdBpm:    160,
			AboveThreshold:  88,
			Effort:          58.6,
		},
		Stream: schema.StreamSeries{
			Timestamps: []int{0, 1, 2},
			HeartRates: []int{72, 74, 0},
		},
	}
}

func TestActivityStore_NoneBackend(t *testing.T) {
	store, err := NewActivityStore(schema.NoneBackend, "")
	require.NoError(t, err)
	require.NotNil(t, store)

	// All operations should be no-ops for NoneBackend
	err = store.BeginRun("run-1", time.Now(), map[string]any{"test": "value"})
	assert.NoError(t, err)

	err = store.SaveActivity("run-1", sampleRecord(101001, 101, 1))
	assert.NoError(t, err)

	err = store.EndRun("run-1", time.Now(), 1)
	assert.NoError(t, err)

	runs, err := store.GetAllRuns()
	assert.NoError(t, err)
	assert.Nil(t, runs)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.False(t, status.Connected)

	err = store.Close()
	assert.NoError(t, err)
}

func TestActivityStore_SQLite(t *testing.T) {
	// Use in-memory SQLite for testing
	store, err := NewActivityStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	require.NotNil(t, store)
	defer func() { _ = store.Close() }()

	// Test BeginRun
	startTime := time.Now()
	configParams := map[string]any{
		"seed":     int64(1),
		"count":    3,
		"athletes": []int64{101, 204},
	}
	err = store.BeginRun("run-1", startTime, configParams)
	require.NoError(t, err)

	// Test SaveActivity
	err = store.SaveActivity("run-1", sampleRecord(101001, 101, 1))
	assert.NoError(t, err)

	// Test EndRun
	err = store.EndRun("run-1", time.Now(), 1)
	assert.NoError(t, err)

	// The run record should carry the completion data
	runs, err := store.GetAllRuns()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "run-1", runs[0].RunID)
	assert.Equal(t, 1, runs[0].TotalActivities)
	require.NotNil(t, runs[0].EndTime)
	require.NotNil(t, runs[0].RunDurationMs)
	assert.GreaterOrEqual(t, *runs[0].RunDurationMs, int64(0))

	// The config params survive the round trip
	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(runs[0].ConfigParams), &decoded))
	assert.EqualValues(t, 3, decoded["count"])
}

func TestActivityStore_GetAllActivities(t *testing.T) {
	store, err := NewActivityStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	require.NoError(t, store.BeginRun("run-1", time.Now(), nil))

	records := []schema.ActivityRecord{
		sampleRecord(101001, 101, 1),
		sampleRecord(101002, 101, 2),
		sampleRecord(204001, 204, 1),
	}
	for _, rec := range records {
		require.NoError(t, store.SaveActivity("run-1", rec))
	}
	require.NoError(t, store.EndRun("run-1", time.Now(), len(records)))

	stored, err := store.GetAllActivities()
	require.NoError(t, err)
	require.Len(t, stored, 3)

	// Ordered by run then activity ID
	assert.Equal(t, int64(101001), stored[0].Summary.ActivityID)
	assert.Equal(t, int64(101002), stored[1].Summary.ActivityID)
	assert.Equal(t, int64(204001), stored[2].Summary.ActivityID)

	// Summary columns survive the round trip
	first := stored[0].Summary
	assert.Equal(t, schema.RunSport, first.Sport)
	assert.Equal(t, 600, first.DurationSeconds)
	assert.Equal(t, 131.2, first.AvgBpm)
	assert.True(t, first.StartTime.Equal(records[0].Summary.StartTime))

	// The stream is stored as JSON and decodes back to the original axes
	var stream schema.StreamSeries
	require.NoError(t, json.Unmarshal([]byte(stored[0].StreamJSON), &stream))
	assert.Equal(t, records[0].Stream, stream)
}

func TestActivityStore_Status(t *testing.T) {
	store, err := NewActivityStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	// Empty store
	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.True(t, status.Connected)
	assert.Equal(t, int64(0), status.TotalRuns)
	assert.Nil(t, status.LastRun)

	// One completed run with two activities
	require.NoError(t, store.BeginRun("run-1", time.Now(), nil))
	require.NoError(t, store.SaveActivity("run-1", sampleRecord(101001, 101, 1)))
	require.NoError(t, store.SaveActivity("run-1", sampleRecord(101002, 101, 2)))
	require.NoError(t, store.EndRun("run-1", time.Now(), 2))

	status, err = store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, int64(1), status.TotalRuns)
	assert.Equal(t, int64(2), status.TotalActivities)
	require.NotNil(t, status.LastRun)
	assert.Equal(t, int64(1), status.TableSizes[runsTable])
	assert.Equal(t, int64(2), status.TableSizes[activitiesTable])
}

func TestActivityStore_Clear(t *testing.T) {
	store, err := NewActivityStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	require.NoError(t, store.BeginRun("run-1", time.Now(), nil))
	require.NoError(t, store.SaveActivity("run-1", sampleRecord(101001, 101, 1)))
	require.NoError(t, store.EndRun("run-1", time.Now(), 1))

	require.NoError(t, store.Clear())

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, int64(0), status.TotalRuns)
	assert.Equal(t, int64(0), status.TableSizes[activitiesTable])
}

func TestActivityStore_MultipleRuns(t *testing.T) {
	store, err := NewActivityStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	for i, runID := range []string{"run-1", "run-2", "run-3"} {
		require.NoError(t, store.BeginRun(runID, time.Now().Add(time.Duration(i)*time.Second), nil))
		require.NoError(t, store.EndRun(runID, time.Now().Add(time.Duration(i)*time.Second+time.Millisecond), 0))
	}

	runs, err := store.GetAllRuns()
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, "run-1", runs[0].RunID)
	assert.Equal(t, "run-3", runs[2].RunID)
}

func TestActivityStore_UnsupportedBackend(t *testing.T) {
	_, err := NewActivityStore(schema.DatabaseBackend("oracle"), "")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported backend")
}
