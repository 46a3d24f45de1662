package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/pulsegen/pulsegen/internal/contract"
	"github.com/pulsegen/pulsegen/schema"
)

// PrintActivityResults outputs a batch generation result, dispatching based
// on the output format configured.
func PrintActivityResults(result schema.GenerateResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForActivities(result, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForActivities(result, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable table
		if err := printActivityTable(result, cfg, fmtFloat, duration); err != nil {
			return fmt.Errorf("error writing activity table output: %w", err)
		}
	}
	return nil
}

// printJSONResultsForActivities handles opening the file and calling the JSON writer.
func printJSONResultsForActivities(result schema.GenerateResult, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForActivities(w, result)
	}, "JSON activity results")
}

// printCSVResultsForActivities handles opening the file and calling the CSV writer.
func printCSVResultsForActivities(result schema.GenerateResult, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForActivities(csvWriter, result, fmtFloat)
	}, "CSV activity results")
}

// printActivityTable prints the batch summaries in a table.
func printActivityTable(result schema.GenerateResult, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	table := tablewriter.NewWriter(os.Stdout)

	headers := []string{"Athlete", "Activity", "Sport", "Title", "Duration", "Samples", "Drop%", "Avg", "Max", ">Thr", "Label"}
	table.Header(headers)

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	// Keep title width proportional to the terminal; the remaining columns
	// are all short numerics.
	titleWidth := max(getTermWidth(cfg)/5, 10)

	label := contract.GetPlainLabel
	if cfg.UseColors {
		label = contract.GetColorLabel
	}

	var data [][]string
	for _, s := range result.Activities {
		row := []string{
			strconv.FormatInt(s.AthleteID, 10),
			strconv.FormatInt(s.ActivityID, 10),
			string(s.Sport),
			truncateTitle(s.Title, titleWidth),
			schema.FormatDuration(s.DurationSeconds),
			strconv.Itoa(s.SampleCount),
			fmtFloat(schema.DropoutPercent(s)),
			fmtFloat(s.AvgBpm),
			strconv.Itoa(s.MaxBpm),
			strconv.Itoa(s.AboveThreshold),
			label(s.Effort),
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	// Preview tables have no run attached; skip the batch footer there.
	if result.RunID != "" {
		fmt.Printf("Generated %d activities in %v with %d workers. Run %s, records under %s. Store backend: %s\n",
			len(result.Activities), duration, cfg.Workers, result.RunID, result.OutputDir, cfg.StoreBackend)
	}
	return nil
}

// PrintPreview outputs a single activity record including its stream.
func PrintPreview(rec schema.ActivityRecord, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, rec)
		}, "JSON activity preview")
	case schema.CSVOut:
		// CSV preview emits the raw stream, one sample per row.
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			return writeCSVResultsForStream(csvWriter, rec.Stream)
		}, "CSV stream preview")
	default:
		result := schema.GenerateResult{Activities: []schema.ActivitySummary{rec.Summary}}
		if err := printActivityTable(result, cfg, fmtFloat, 0); err != nil {
			return err
		}
		fmt.Printf("Stream: %d samples, %d dropped. Re-run with --output json for the full series.\n",
			rec.Stream.Len(), rec.Summary.DroppedSamples)
		return nil
	}
}
