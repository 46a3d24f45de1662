package cmd

import (
	"fmt"

	"github.com/pulsegen/pulsegen/internal/contract"
	"github.com/pulsegen/pulsegen/internal/iostore"
	"github.com/pulsegen/pulsegen/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// runsSetup loads minimal configuration needed for run tracking operations.
// This is used by commands that need store access without full shared setup.
func runsSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get store-related config values
	backendStr := viper.GetString("store-backend")
	connStr := viper.GetString("store-db-connect")

	// Handle empty backend as SQLite so plain 'pulsegen runs status' works
	var backend schema.DatabaseBackend
	if backendStr == "" {
		backend = schema.SQLiteBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Get output-related config values (used by export command)
	outputFile := viper.GetString("output-file")

	// Initialize the store with the loaded config
	if err := iostore.InitStore(backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize run tracking: %w", err)
	}

	cfg.StoreBackend = backend
	cfg.StoreDBConnect = connStr
	cfg.OutputFile = outputFile

	return nil
}

// runsSetupWrapper wraps runsSetup to provide PreRunE for runs commands.
func runsSetupWrapper(_ *cobra.Command, _ []string) error {
	return runsSetup()
}

// runsMigrateSetup loads minimal configuration needed for migrate operations.
// This is a specialized setup that does NOT initialize the store or create
// tables, allowing migrations to run on a fresh database.
func runsMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get store-related config values
	backendStr := viper.GetString("store-backend")
	connStr := viper.GetString("store-db-connect")

	// Handle empty backend as SQLite
	var backend schema.DatabaseBackend
	if backendStr == "" {
		backend = schema.SQLiteBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// For SQLite backend with empty connection string, use default path
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = contract.GetStoreDBFilePath()
	}

	cfg.StoreBackend = backend
	cfg.StoreDBConnect = connStr

	return nil
}

// runsMigrateSetupWrapper wraps runsMigrateSetup to provide PreRunE for migrate command.
func runsMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return runsMigrateSetup()
}

// runsCmd focused on run tracking data management.
//
// Note: Runs subcommands use minimal initialization (runsSetup) instead of
// the full sharedSetup used by generation commands. This avoids generation
// config validation for simple store operations.
var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Manage generation run tracking and exports",
	Long: `Manage historical generation run data used for auditing and reporting.

When enabled, pulsegen tracks every generation run, storing:
- Run metadata (timestamp, configuration, duration)
- Every generated activity summary
- The full heart-rate streams as JSON

This makes batches reproducible and auditable, and enables data export for
analytics tools.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status  - Show run tracking statistics
  export  - Export data to Parquet for analytics
  clear   - Remove all tracking data
  migrate - Run database schema migrations

Examples:
  # Check tracking status
  pulsegen runs status

  # Export for analysis in pandas/DuckDB
  pulsegen runs export --output-file run-data.parquet`,
}

// runsStatusCmd shows run tracking status.
var runsStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display run tracking statistics and connection details",
	Long: `Show detailed information about generation run tracking.

Displays:
- Backend type and connection status
- Total number of runs stored
- Last run timestamp
- Total activities generated across all runs
- Database table sizes

Examples:
  # Check run tracking status
  pulsegen runs status`,
	PreRunE: runsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := iostore.Manager.GetActivityStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get run tracking status", err)
		}
		iostore.PrintStoreStatus(status)
	},
}

// runsClearCmd clears the run tracking data.
var runsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all generation run tracking data",
	Long: `Delete all stored generation runs and activity records.

WARNING: This action cannot be undone. Consider exporting data first.

Examples:
  # Export before clearing
  pulsegen runs export --output-file backup.parquet
  pulsegen runs clear

  # Clear and start fresh
  pulsegen runs clear`,
	PreRunE: runsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iostore.ClearStore(cfg.StoreBackend, contract.GetStoreDBFilePath(), cfg.StoreDBConnect); err != nil {
			contract.LogFatal("Failed to clear run tracking data", err)
		}
		fmt.Println("Run tracking data cleared successfully.")
	},
}

// runsExportCmd exports run tracking data to Parquet files.
var runsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export run data to Parquet for BI tools and analytics",
	Long: `Export all stored run tracking data to Parquet format.

Exports two datasets:
- Generation runs - metadata about each batch execution
- Activities - every generated activity with its stream as JSON

Requires: --output-file parameter

Examples:
  # Export all data
  pulsegen runs export --output-file pulsegen-data.parquet

  # Use with DuckDB for analysis
  pulsegen runs export --output-file data.parquet
  duckdb -c "SELECT * FROM read_parquet('data.parquet.runs.parquet') LIMIT 10"`,
	PreRunE: runsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iostore.ExecuteRunsExport(cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export run tracking data", err)
		}
	},
}

// runsMigrateCmd runs database migrations for the run tracking store.
var runsMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the run tracking store.

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  pulsegen runs migrate

  # Migrate to specific version
  pulsegen runs migrate --target-version 1

  # Rollback to initial state
  pulsegen runs migrate --target-version 0`,
	PreRunE: runsMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := iostore.MigrateStore(cfg.StoreBackend, cfg.StoreDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
