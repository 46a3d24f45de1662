// main is the entry point for the pulsegen CLI.
package main

import (
	"github.com/pulsegen/pulsegen/cmd"
	"github.com/pulsegen/pulsegen/internal/contract"
	"github.com/pulsegen/pulsegen/internal/iostore"
)

func main() {
	// Wire the global store manager into the command layer. The store itself
	// is initialized lazily during command setup once config is validated.
	cmd.SetStoreManager(iostore.Manager)
	defer iostore.CloseStore()

	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Command failed", err)
	}

	if err := cmd.StopProfiling(); err != nil {
		contract.LogFatal("Failed to stop profiling", err)
	}
}
