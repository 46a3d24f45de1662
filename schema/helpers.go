package schema

import (
	"fmt"
	"strings"
)

// FormatDuration renders a second count as a compact h/m/s string for
// table output, e.g. 4500 -> "1h15m0s", 615 -> "10m15s".
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%dh%dm%ds", h, m, s)
	}
	if m > 0 {
		return fmt.Sprintf("%dm%ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}

// DropoutPercent returns the share of missing samples in the summary as a
// percentage of the total sample count.
func DropoutPercent(s ActivitySummary) float64 {
	if s.SampleCount == 0 {
		return 0
	}
	return float64(s.DroppedSamples) / float64(s.SampleCount) * 100.0
}

// ActivityTitle builds a human-readable activity title from the sport and
// the per-athlete sequence number.
func ActivityTitle(sport Sport, sequence int) string {
	return fmt.Sprintf("%s #%d", strings.ToUpper(string(sport)[:1])+string(sport)[1:], sequence+1)
}
