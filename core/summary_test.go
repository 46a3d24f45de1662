package core

import (
	"testing"

	"github.com/pulsegen/pulsegen/internal/contract"
	"github.com/pulsegen/pulsegen/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testConfig returns a validated generation config for core tests.
func testConfig() *contract.Config {
	return &contract.Config{
		Athletes:          []int64{101, 204},
		Count:             2,
		Seed:              40,
		DurationSeconds:   300,
		SamplingSeconds:   1,
		RestingBpm:        55,
		MaxBpm:            185,
		IntervalIntensity: 0.05,
		Dropout:           0.02,
		ThresholdBpm:      150,
		Workers:           2,
		OutDir:            "out",
	}
}

// TestDeriveActivityID checks the athlete/sequence to ID mapping.
func TestDeriveActivityID(t *testing.T) {
	assert.Equal(t, int64(101001), DeriveActivityID(101, 1))
	assert.Equal(t, int64(101002), DeriveActivityID(101, 2))
	assert.Equal(t, int64(204003), DeriveActivityID(204, 3))
}

// TestGenerateActivityDeterminism checks that records are fully determined
// by (seed, athlete, sequence).
func TestGenerateActivityDeterminism(t *testing.T) {
	cfg := testConfig()

	first := GenerateActivity(cfg, 101, 1)
	second := GenerateActivity(cfg, 101, 1)
	assert.Equal(t, first, second)

	sibling := GenerateActivity(cfg, 101, 2)
	assert.NotEqual(t, first.Summary.Seed, sibling.Summary.Seed)
	assert.NotEqual(t, first.Stream.HeartRates, sibling.Stream.HeartRates)
}

// TestGenerateActivitySummaryFields verifies the derived summary fields
// against the stream they were computed from.
func TestGenerateActivitySummaryFields(t *testing.T) {
	cfg := testConfig()
	rec := GenerateActivity(cfg, 101, 1)
	s := rec.Summary

	assert.Equal(t, int64(101001), s.ActivityID)
	assert.Equal(t, int64(101), s.AthleteID)
	assert.Equal(t, 1, s.Sequence)
	assert.Contains(t, schema.AllSports, s.Sport)
	assert.NotEmpty(t, s.Title)
	assert.Equal(t, cfg.DurationSeconds, s.DurationSeconds)
	assert.Equal(t, rec.Stream.Len(), s.SampleCount)
	assert.Equal(t, 301, s.SampleCount)

	// Recompute aggregates from the stream.
	var sum, recorded, maxBpm int
	for _, v := range rec.Stream.HeartRates {
		if v == 0 {
			continue
		}
		sum += v
		recorded++
		if v > maxBpm {
			maxBpm = v
		}
	}
	require.Positive(t, recorded)
	assert.Equal(t, s.SampleCount-recorded, s.DroppedSamples)
	assert.InDelta(t, float64(sum)/float64(recorded), s.AvgBpm, 0.0001)
	assert.Equal(t, maxBpm, s.MaxBpm)
	assert.Equal(t,
		CountAboveThreshold(rec.Stream.Timestamps, rec.Stream.HeartRates, cfg.ThresholdBpm),
		s.AboveThreshold)
	assert.GreaterOrEqual(t, s.Effort, 0.0)
	assert.LessOrEqual(t, s.Effort, 100.0)
}

// TestGenerateActivityFullDropout checks the summary stays defined when
// every sample is dropped.
func TestGenerateActivityFullDropout(t *testing.T) {
	cfg := testConfig()
	cfg.Dropout = 1.0

	rec := GenerateActivity(cfg, 101, 1)
	s := rec.Summary
	assert.Equal(t, s.SampleCount, s.DroppedSamples)
	assert.Zero(t, s.AvgBpm)
	assert.Zero(t, s.MaxBpm)
	assert.Zero(t, s.Effort)
	assert.Zero(t, s.AboveThreshold)
}

// TestGenerateActivityStartTimes checks start times are deterministic and
// ordered by sequence.
func TestGenerateActivityStartTimes(t *testing.T) {
	cfg := testConfig()
	first := GenerateActivity(cfg, 101, 1)
	second := GenerateActivity(cfg, 101, 2)
	assert.True(t, first.Summary.StartTime.Before(second.Summary.StartTime))
}
