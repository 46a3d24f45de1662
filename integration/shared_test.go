//go:build integration || database

package integration

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
)

var (
	// sharedPulsegenPath holds the path to a shared pulsegen binary built once for all tests.
	sharedPulsegenPath string

	// buildOnce ensures we only build the binary once.
	buildOnce sync.Once

	// buildMutex protects the shared binary path.
	buildMutex sync.Mutex

	// tempDir holds the temp directory for cleanup.
	tempDir string
)

// TestMain handles setup and cleanup for all integration tests.
func TestMain(m *testing.M) {
	// Run all tests
	code := m.Run()

	// Cleanup the shared binary after all tests
	if tempDir != "" {
		_ = os.RemoveAll(tempDir)
	}

	os.Exit(code)
}

// getPulsegenBinary returns the path to the pulsegen binary, building it once if needed.
func getPulsegenBinary() string {
	buildMutex.Lock()
	defer buildMutex.Unlock()

	buildOnce.Do(func() {
		// Create a temp directory for the binary
		var err error
		tempDir, err = os.MkdirTemp("", "pulsegen-integration-*")
		if err != nil {
			panic(fmt.Sprintf("failed to create temp dir: %v", err))
		}

		pulsegenPath := filepath.Join(tempDir, "pulsegen")
		buildCmd := exec.Command("go", "build", "-o", pulsegenPath, "./cmd/pulsegen")
		buildCmd.Dir = ".." // Build from parent directory (project root)
		err = buildCmd.Run()
		if err != nil {
			panic(fmt.Sprintf("failed to build pulsegen: %v", err))
		}

		sharedPulsegenPath = pulsegenPath
	})

	return sharedPulsegenPath
}

// runPulsegenCommand runs the shared binary with the given args from the project root.
func runPulsegenCommand(t *testing.T, args ...string) error {
	pulsegenPath := getPulsegenBinary()
	cmd := exec.Command(pulsegenPath, args...)
	cmd.Dir = "../" // Run from project root
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Logf("Command failed: %s\nOutput: %s", cmd.String(), string(output))
		return err
	}
	return nil
}
