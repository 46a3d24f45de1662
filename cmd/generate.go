package cmd

import (
	"github.com/pulsegen/pulsegen/core"
	"github.com/pulsegen/pulsegen/internal/contract"
	"github.com/spf13/cobra"
)

// generateCmd generates a batch of synthetic activities.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a batch of synthetic activities for a roster of athletes.",
	Long: `Generate reproducible heart-rate activities and write them as JSON record files.

For every athlete in the roster, pulsegen synthesizes a sequence of activities,
each with a summary record and a full heart-rate stream. The same seed always
produces byte-identical output, so generated fixtures are safe to commit and
diff.

Each activity gets two files under <out-dir>/<athlete>/:
- <activity>_summary.json - metadata and derived statistics
- <activity>_stream.json  - the timestamp and heart-rate axes

When a store backend is configured, every run is tracked with its parameters
so batches can be audited and exported later.

Examples:
  # Generate with defaults (3 activities each for the default roster)
  pulsegen generate

  # A bigger deterministic batch for two athletes
  pulsegen generate --athletes 101,204 --count 10 --seed 7

  # Hour-long rides sampled every 5 seconds
  pulsegen generate --duration 1h --sampling 5

  # Track runs in SQLite and print a CSV summary
  pulsegen generate --store-backend sqlite --output csv`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteGenerate(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot generate activities", err)
		}
	},
}
