package core

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pulsegen/pulsegen/internal/contract"
	"github.com/pulsegen/pulsegen/internal/outwriter"
	"github.com/pulsegen/pulsegen/schema"
)

// GenerateBatch runs the athlete x count grid through a worker pool and
// returns the records sorted by activity ID. Each job owns its generator,
// so worker count and scheduling never affect the output.
func GenerateBatch(ctx context.Context, cfg *contract.Config) []schema.ActivityRecord {
	type job struct {
		athlete  int64
		sequence int
	}

	total := len(cfg.Athletes) * cfg.Count
	jobs := make(chan job, total)
	results := make(chan schema.ActivityRecord, total)
	var wg sync.WaitGroup

	for range cfg.Workers {
		wg.Go(func() {
			for j := range jobs {
				if ctx.Err() != nil {
					continue
				}
				results <- GenerateActivity(cfg, j.athlete, j.sequence)
			}
		})
	}

	for _, athlete := range cfg.Athletes {
		for seq := 1; seq <= cfg.Count; seq++ {
			jobs <- job{athlete: athlete, sequence: seq}
		}
	}
	close(jobs)

	wg.Wait()
	close(results)

	records := make([]schema.ActivityRecord, 0, total)
	for rec := range results {
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Summary.ActivityID < records[j].Summary.ActivityID
	})
	return records
}

// ExecuteGenerate runs a full batch: generate, write record files, persist
// to the run store when one is configured, and print the batch summary.
func ExecuteGenerate(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()
	runID := uuid.New().String()

	store := mgr.GetActivityStore()
	if store != nil {
		configParams := map[string]any{
			"athletes":           cfg.Athletes,
			"count":              cfg.Count,
			"seed":               cfg.Seed,
			"duration_seconds":   cfg.DurationSeconds,
			"sampling_seconds":   cfg.SamplingSeconds,
			"resting_bpm":        cfg.RestingBpm,
			"max_bpm":            cfg.MaxBpm,
			"interval_intensity": cfg.IntervalIntensity,
			"dropout":            cfg.Dropout,
			"threshold_bpm":      cfg.ThresholdBpm,
		}
		if err := store.BeginRun(runID, start, configParams); err != nil {
			contract.LogWarn("Run tracking initialization failed", err)
			store = nil
		}
	}

	records := GenerateBatch(ctx, cfg)

	summaries := make([]schema.ActivitySummary, 0, len(records))
	for _, rec := range records {
		if err := writeRecordFiles(cfg.OutDir, rec); err != nil {
			return fmt.Errorf("failed to write activity %d: %w", rec.Summary.ActivityID, err)
		}
		if store != nil {
			if err := store.SaveActivity(runID, rec); err != nil {
				contract.LogWarn("Failed to persist activity", err)
			}
		}
		summaries = append(summaries, rec.Summary)
	}

	if store != nil {
		if err := store.EndRun(runID, time.Now(), len(records)); err != nil {
			contract.LogWarn("Failed to finalize run tracking", err)
		}
	}

	result := schema.GenerateResult{
		RunID:      runID,
		OutputDir:  cfg.OutDir,
		Activities: summaries,
	}
	return outwriter.NewOutWriter().WriteActivities(result, cfg, time.Since(start))
}

// ExecutePreview synthesizes a single activity for the preview athlete and
// prints it without touching disk or the store.
func ExecutePreview(cfg *contract.Config) error {
	rec := GenerateActivity(cfg, cfg.PreviewAthlete, 1)
	return outwriter.NewOutWriter().WritePreview(rec, cfg)
}

// writeRecordFiles emits the two JSON record files for one activity under
// <outDir>/<athleteID>/.
func writeRecordFiles(outDir string, rec schema.ActivityRecord) error {
	dir := filepath.Join(outDir, fmt.Sprintf("%d", rec.Summary.AthleteID))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	summaryPath := filepath.Join(dir, fmt.Sprintf("%d_summary.json", rec.Summary.ActivityID))
	if err := writeJSONFile(summaryPath, rec.Summary); err != nil {
		return err
	}

	streamPath := filepath.Join(dir, fmt.Sprintf("%d_stream.json", rec.Summary.ActivityID))
	return writeJSONFile(streamPath, rec.Stream)
}

func writeJSONFile(path string, data any) error {
	payload, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
