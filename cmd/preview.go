package cmd

import (
	"github.com/pulsegen/pulsegen/core"
	"github.com/pulsegen/pulsegen/internal/contract"
	"github.com/spf13/cobra"
)

// previewCmd shows a single activity without writing files.
var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview a single synthetic activity without writing files.",
	Long: `Synthesize one activity and print it, leaving disk and store untouched.

Useful for tuning generation parameters: adjust duration, intensity or dropout
and inspect the resulting stream before committing to a full batch.

The preview uses sequence 1 for the chosen athlete, so it matches the first
activity a 'generate' run would produce with the same parameters.

Examples:
  # Preview the first activity of the default roster
  pulsegen preview

  # Preview a specific athlete with the full stream as JSON
  pulsegen preview --athlete 204 --output json

  # Inspect dropout behavior
  pulsegen preview --dropout 0.2 --output csv`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecutePreview(cfg); err != nil {
			contract.LogFatal("Cannot preview activity", err)
		}
	},
}
