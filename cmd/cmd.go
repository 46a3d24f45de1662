// Package cmd defines the command-line interface for pulsegen.
package cmd

import (
	"github.com/pulsegen/pulsegen/internal/contract"
	"github.com/pulsegen/pulsegen/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the runs subcommands to the parent runs command
	runsCmd.AddCommand(runsStatusCmd)
	runsCmd.AddCommand(runsClearCmd)
	runsCmd.AddCommand(runsExportCmd)
	runsCmd.AddCommand(runsMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("athletes", "a", "", "Comma-separated athlete IDs (e.g. '101,204,317')")
	rootCmd.PersistentFlags().IntP("count", "c", contract.DefaultCount, "Activities to generate per athlete")
	rootCmd.PersistentFlags().Int64P("seed", "s", contract.DefaultSeed, "Base generator seed; same seed yields same output")
	rootCmd.PersistentFlags().StringP("duration", "d", "", "Activity duration as seconds or a Go duration (e.g. '45m')")
	rootCmd.PersistentFlags().Int("sampling", contract.DefaultSamplingSeconds, "Stream sampling interval in seconds")
	rootCmd.PersistentFlags().Int("resting-bpm", contract.DefaultRestingBpm, "Resting heart rate floor")
	rootCmd.PersistentFlags().Int("max-bpm", contract.DefaultMaxBpm, "Maximum heart rate ceiling")
	rootCmd.PersistentFlags().Float64("interval-intensity", contract.DefaultIntervalIntensity, "Probability of an interval burst per sample (0-1)")
	rootCmd.PersistentFlags().Float64("dropout", contract.DefaultDropout, "Probability of a sensor dropout per sample (0-1)")
	rootCmd.PersistentFlags().Int("threshold", contract.DefaultThresholdBpm, "Heart rate threshold for time-above accounting")
	rootCmd.PersistentFlags().StringP("out-dir", "o", contract.DefaultOutDir, "Directory for per-activity record files")
	rootCmd.PersistentFlags().Int("workers", contract.DefaultWorkers, "Number of concurrent workers")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("output", string(schema.TableOut), "Output format: table or csv or json")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("store-backend", "", "Run tracking backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("store-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of previewCmd to Viper
	previewCmd.Flags().Int64("athlete", 0, "Athlete ID to preview (defaults to the first of the roster)")
	if err := viper.BindPFlags(previewCmd.Flags()); err != nil {
		contract.LogFatal("Error binding preview flags", err)
	}

	// Bind all flags of runsMigrateCmd to Viper
	runsMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(runsMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding runs migrate flags", err)
	}
}
