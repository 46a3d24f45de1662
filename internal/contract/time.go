package contract

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseDurationSeconds parses an activity duration given either as a bare
// second count ("2700") or as a Go duration string ("45m", "1h30m").
// An empty string yields the default duration.
func ParseDurationSeconds(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultDurationSeconds, nil
	}

	if secs, err := strconv.Atoi(s); err == nil {
		if secs < 0 {
			return 0, fmt.Errorf("duration must not be negative, got %d", secs)
		}
		return secs, nil
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("cannot parse %q as seconds or duration: %w", s, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("duration must not be negative, got %s", s)
	}
	return int(d / time.Second), nil
}
