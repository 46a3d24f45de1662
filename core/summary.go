package core

import (
	"math/rand"
	"time"

	"github.com/pulsegen/pulsegen/internal/contract"
	"github.com/pulsegen/pulsegen/schema"
)

// activityIDBase spaces athlete IDs so that athlete and sequence can be
// recovered from an activity ID.
const activityIDBase = 1000

// calendarBase anchors synthetic start times so repeated runs produce the
// same timestamps.
var calendarBase = time.Date(2024, time.January, 1, 6, 0, 0, 0, time.UTC)

// DeriveActivityID maps an athlete ID and a 1-based sequence number to the
// numeric activity identifier.
func DeriveActivityID(athleteID int64, sequence int) int64 {
	return athleteID*activityIDBase + int64(sequence)
}

// DeriveSeed computes the per-activity seed from the configured base seed.
// Every activity gets its own generator built from this value, which keeps
// parallel generation deterministic.
func DeriveSeed(baseSeed, activityID int64) int64 {
	return baseSeed + activityID
}

// GenerateActivity builds one complete activity record: summary metadata
// drawn from a fresh per-activity generator, then the stream synthesized
// from the same generator. The metadata draws happen first and have a fixed
// count, so the stream remains reproducible for a given (seed, athlete,
// sequence) triple.
func GenerateActivity(cfg *contract.Config, athleteID int64, sequence int) schema.ActivityRecord {
	activityID := DeriveActivityID(athleteID, sequence)
	seed := DeriveSeed(cfg.Seed, activityID)
	rng := rand.New(rand.NewSource(seed))

	sport := schema.AllSports[rng.Intn(len(schema.AllSports))]
	startHour := rng.Intn(12) // morning to early evening starts

	stream := SynthesizeStream(schema.StreamParams{
		DurationSeconds:    cfg.DurationSeconds,
		SamplingSeconds:    cfg.SamplingSeconds,
		RestingBpm:         cfg.RestingBpm,
		MaxBpm:             cfg.MaxBpm,
		IntervalIntensity:  cfg.IntervalIntensity,
		DropoutProbability: cfg.Dropout,
	}, rng)

	summary := buildSummary(cfg, athleteID, sequence, activityID, seed, sport, startHour, stream)

	return schema.ActivityRecord{Summary: summary, Stream: stream}
}

// buildSummary derives the activity summary from the finished stream.
// All fields are set at construction; records are never patched afterwards.
func buildSummary(cfg *contract.Config, athleteID int64, sequence int, activityID, seed int64,
	sport schema.Sport, startHour int, stream schema.StreamSeries) schema.ActivitySummary {

	var sum, recorded int
	maxBpm := 0
	for _, v := range stream.HeartRates {
		if v == 0 {
			continue // dropout sentinel, not a reading
		}
		sum += v
		recorded++
		if v > maxBpm {
			maxBpm = v
		}
	}

	avg := 0.0
	if recorded > 0 {
		avg = float64(sum) / float64(recorded)
	}

	effort := 0.0
	if recorded > 0 && cfg.MaxBpm > cfg.RestingBpm {
		effort = clampRange((avg-float64(cfg.RestingBpm))/float64(cfg.MaxBpm-cfg.RestingBpm), 0, 1) * 100
	}

	start := calendarBase.
		AddDate(0, 0, (sequence-1)*2).
		Add(time.Duration(startHour) * time.Hour)

	return schema.ActivitySummary{
		ActivityID:      activityID,
		AthleteID:       athleteID,
		Sequence:        sequence,
		Sport:           sport,
		Title:           schema.ActivityTitle(sport, sequence-1),
		StartTime:       start,
		DurationSeconds: cfg.DurationSeconds,
		SamplingSeconds: cfg.SamplingSeconds,
		Seed:            seed,
		SampleCount:     stream.Len(),
		DroppedSamples:  stream.Len() - recorded,
		AvgBpm:          avg,
		MaxBpm:          maxBpm,
		ThresholdBpm:    cfg.ThresholdBpm,
		AboveThreshold:  CountAboveThreshold(stream.Timestamps, stream.HeartRates, cfg.ThresholdBpm),
		Effort:          effort,
	}
}
