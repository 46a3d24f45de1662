package outwriter

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/pulsegen/pulsegen/internal/contract"
	"github.com/pulsegen/pulsegen/schema"
)

// writeJSONResultsForActivities marshals the schema.GenerateResult to JSON
// and writes it.
func writeJSONResultsForActivities(w io.Writer, result schema.GenerateResult) error {
	return writeJSON(w, result)
}

// writeCSVResultsForActivities writes the batch summaries to a CSV writer.
func writeCSVResultsForActivities(w *csv.Writer, result schema.GenerateResult, fmtFloat func(float64) string) error {
	header := []string{
		"activity_id",
		"athlete_id",
		"sequence",
		"sport",
		"title",
		"start_time",
		"duration_seconds",
		"sampling_seconds",
		"seed",
		"samples",
		"dropped",
		"avg_bpm",
		"max_bpm",
		"threshold_bpm",
		"above_threshold",
		"effort",
		"label",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, s := range result.Activities {
		row := []string{
			strconv.FormatInt(s.ActivityID, 10),
			strconv.FormatInt(s.AthleteID, 10),
			strconv.Itoa(s.Sequence),
			string(s.Sport),
			s.Title,
			s.StartTime.Format(time.RFC3339),
			strconv.Itoa(s.DurationSeconds),
			strconv.Itoa(s.SamplingSeconds),
			strconv.FormatInt(s.Seed, 10),
			strconv.Itoa(s.SampleCount),
			strconv.Itoa(s.DroppedSamples),
			fmtFloat(s.AvgBpm),
			strconv.Itoa(s.MaxBpm),
			strconv.Itoa(s.ThresholdBpm),
			strconv.Itoa(s.AboveThreshold),
			fmtFloat(s.Effort),
			contract.GetPlainLabel(s.Effort),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// writeCSVResultsForStream writes one stream as (timestamp, heart_rate)
// rows, used by the preview command.
func writeCSVResultsForStream(w *csv.Writer, stream schema.StreamSeries) error {
	if err := w.Write([]string{"timestamp", "heart_rate"}); err != nil {
		return err
	}
	for i, ts := range stream.Timestamps {
		if i >= len(stream.HeartRates) {
			break
		}
		row := []string{strconv.Itoa(ts), strconv.Itoa(stream.HeartRates[i])}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
