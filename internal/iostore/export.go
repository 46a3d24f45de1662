package iostore

import (
	"errors"
	"fmt"

	"github.com/pulsegen/pulsegen/internal/parquet"
)

// ExecuteRunsExport performs the actual export of run tracking data to Parquet files.
func ExecuteRunsExport(outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	// Get the activity store
	store := Manager.GetActivityStore()
	if store == nil {
		return errors.New("run tracking is not configured")
	}

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get store status: %w", err)
	}

	if status.TotalRuns == 0 {
		return errors.New("no run data found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total generation runs: %d\n", status.TotalRuns)
	fmt.Printf("Total activity records: %d\n", status.TableSizes[activitiesTable])

	// Retrieve all generation runs
	runs, err := store.GetAllRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve generation runs: %w", err)
	}

	// Retrieve all stored activities
	activities, err := store.GetAllActivities()
	if err != nil {
		return fmt.Errorf("failed to retrieve activities: %w", err)
	}

	// Convert to Parquet format
	parquetRuns := parquet.ConvertRunRecords(runs)
	parquetActivities := parquet.ConvertStoredActivities(activities)

	// Write generation runs to Parquet
	runsFile := outputFile + ".runs.parquet"
	if err := parquet.WriteGenerationRunsParquet(parquetRuns, runsFile); err != nil {
		return fmt.Errorf("failed to write generation runs: %w", err)
	}
	fmt.Printf("Exported %d generation runs to: %s\n", len(parquetRuns), runsFile)

	// Write activities to Parquet
	activitiesFile := outputFile + ".activities.parquet"
	if err := parquet.WriteActivitiesParquet(parquetActivities, activitiesFile); err != nil {
		return fmt.Errorf("failed to write activities: %w", err)
	}
	fmt.Printf("Exported %d activity records to: %s\n", len(parquetActivities), activitiesFile)

	fmt.Println("\nExport complete! The Parquet files can be used with:")
	fmt.Println("  - Apache Spark")
	fmt.Println("  - Apache Arrow")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}
