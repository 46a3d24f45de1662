package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// Effort label constants.
const (
	PeakValue     = "Peak"     // Near-maximal heart-rate reserve usage
	HardValue     = "Hard"     // Sustained high intensity
	ModerateValue = "Moderate" // Aerobic steady state
	EasyValue     = "Easy"     // Low intensity / recovery
)

// Color variables for console output.
var (
	PeakColor     = color.New(color.FgRed, color.Bold)     // peakColor represents near-maximal effort.
	HardColor     = color.New(color.FgMagenta, color.Bold) // hardColor represents strong sustained effort.
	ModerateColor = color.New(color.FgYellow)              // moderateColor represents steady aerobic work.
	EasyColor     = color.New(color.FgCyan)                // easyColor represents recovery-level work.
)

// GetPlainLabel returns a plain text effort label for an effort score in
// [0,100] (percent of heart-rate reserve). This is the core logic used for
// CSV, JSON, and table printing.
func GetPlainLabel(effort float64) string {
	switch {
	case effort >= 80:
		return PeakValue
	case effort >= 60:
		return HardValue
	case effort >= 40:
		return ModerateValue
	default:
		return EasyValue
	}
}

// GetColorLabel returns a colored effort label for console output (table).
// It uses GetPlainLabel to determine the string, and then applies the
// appropriate color.
func GetColorLabel(effort float64) string {
	text := GetPlainLabel(effort)

	switch text {
	case PeakValue:
		return PeakColor.Sprint(text)
	case HardValue:
		return HardColor.Sprint(text)
	case ModerateValue:
		return ModerateColor.Sprint(text)
	default: // "Easy"
		return EasyColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It returns os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetStoreDBFilePath returns the path to the SQLite DB file for run storage.
func GetStoreDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".pulsegen_runs.db"
	}
	return filepath.Join(homeDir, ".pulsegen_runs.db")
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1", "":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
