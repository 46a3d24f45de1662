package contract

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"github.com/pulsegen/pulsegen/schema"
)

// Default values for configuration.
const (
	DefaultCount             = 3    // Activities per athlete
	DefaultDurationSeconds   = 2700 // 45 minutes
	DefaultSamplingSeconds   = 1
	DefaultRestingBpm        = 55
	DefaultMaxBpm            = 185
	DefaultIntervalIntensity = 0.05
	DefaultDropout           = 0.01
	DefaultThresholdBpm      = 160
	DefaultSeed              = 1
	DefaultPrecision         = 1
	DefaultOutDir            = "out"
	MaxCount                 = 1000
)

// DefaultWorkers is the default number of concurrent workers to use.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// DefaultAthletes is the athlete roster used when none is configured.
var DefaultAthletes = []int64{101, 204, 317}

// Config holds the runtime configuration for generation.
// This struct remains the "final, validated" config.
type Config struct {
	Athletes []int64
	Count    int
	Seed     int64

	DurationSeconds    int
	SamplingSeconds    int
	RestingBpm         int
	MaxBpm             int
	IntervalIntensity  float64
	Dropout            float64
	ThresholdBpm       int

	OutDir     string
	Workers    int
	Precision  int
	Output     schema.OutputMode
	OutputFile string
	Width      int // Terminal width override (0 = auto-detect)
	UseColors  bool

	StoreBackend   schema.DatabaseBackend
	StoreDBConnect string // Please use env var as this is plaintext

	PreviewAthlete int64 // Athlete used by the preview command
}

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	Athletes  string `mapstructure:"athletes"`
	Count     int    `mapstructure:"count"`
	Seed      int64  `mapstructure:"seed"`
	Duration  string `mapstructure:"duration"`
	Sampling  int    `mapstructure:"sampling"`
	Resting   int    `mapstructure:"resting-bpm"`
	Max       int    `mapstructure:"max-bpm"`
	Intervals float64 `mapstructure:"interval-intensity"`
	Dropout   float64 `mapstructure:"dropout"`
	Threshold int    `mapstructure:"threshold"`

	OutDir     string `mapstructure:"out-dir"`
	Workers    int    `mapstructure:"workers"`
	Precision  int    `mapstructure:"precision"`
	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	Width      int    `mapstructure:"width"`
	Color      string `mapstructure:"color"`

	StoreBackend   string `mapstructure:"store-backend"`
	StoreDBConnect string `mapstructure:"store-db-connect"`

	Athlete int64 `mapstructure:"athlete"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Athletes != nil {
		clone.Athletes = make([]int64, len(c.Athletes))
		copy(clone.Athletes, c.Athletes)
	}
	return &clone
}

// ParseAthletes parses a comma-separated athlete ID list like "101,204,317".
// An empty string yields the default roster.
func ParseAthletes(s string) ([]int64, error) {
	if strings.TrimSpace(s) == "" {
		out := make([]int64, len(DefaultAthletes))
		copy(out, DefaultAthletes)
		return out, nil
	}
	parts := strings.Split(s, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		id, err := strconv.ParseInt(p, 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid athlete ID %q: must be a positive integer", p)
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("athlete list %q contains no IDs", s)
	}
	return ids, nil
}

// ProcessAndValidate turns the raw viper input into the final validated
// config. Generation probabilities are not range-checked here: the
// synthesizer treats out-of-range values as never/always, so only the
// parameters that would make generation meaningless are rejected.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	athletes, err := ParseAthletes(input.Athletes)
	if err != nil {
		return err
	}
	cfg.Athletes = athletes

	cfg.Count = input.Count
	if cfg.Count < 1 {
		cfg.Count = DefaultCount
	}
	if cfg.Count > MaxCount {
		cfg.Count = MaxCount
	}

	cfg.Seed = input.Seed

	duration, err := ParseDurationSeconds(input.Duration)
	if err != nil {
		return fmt.Errorf("invalid duration: %w", err)
	}
	cfg.DurationSeconds = duration

	cfg.SamplingSeconds = input.Sampling
	if cfg.SamplingSeconds < 1 {
		return fmt.Errorf("sampling step must be at least 1 second, got %d", input.Sampling)
	}

	cfg.RestingBpm = input.Resting
	cfg.MaxBpm = input.Max
	if cfg.RestingBpm <= 0 {
		return fmt.Errorf("resting bpm must be positive, got %d", cfg.RestingBpm)
	}
	if cfg.RestingBpm >= cfg.MaxBpm {
		return fmt.Errorf("resting bpm (%d) must be below max bpm (%d)", cfg.RestingBpm, cfg.MaxBpm)
	}

	cfg.IntervalIntensity = input.Intervals
	cfg.Dropout = input.Dropout
	cfg.ThresholdBpm = input.Threshold

	cfg.OutDir = input.OutDir
	if cfg.OutDir == "" {
		cfg.OutDir = DefaultOutDir
	}

	cfg.Workers = input.Workers
	if cfg.Workers < 1 {
		cfg.Workers = DefaultWorkers
	}

	cfg.Precision = input.Precision
	if cfg.Precision < 0 {
		cfg.Precision = 0
	}
	if cfg.Precision > 3 {
		cfg.Precision = 3
	}

	output := schema.OutputMode(strings.ToLower(input.Output))
	if output == "" {
		output = schema.TableOut
	}
	if _, ok := schema.ValidOutputModes[output]; !ok {
		return fmt.Errorf("invalid output mode %q (expected table, csv or json)", input.Output)
	}
	cfg.Output = output
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width

	useColors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid color setting: %w", err)
	}
	cfg.UseColors = useColors

	backend := schema.DatabaseBackend(strings.ToLower(input.StoreBackend))
	if backend == "" {
		backend = schema.NoneBackend
	}
	if _, ok := schema.ValidStoreBackends[backend]; !ok {
		return fmt.Errorf("invalid store backend %q (expected sqlite, mysql, postgresql or none)", input.StoreBackend)
	}
	if err := ValidateDatabaseConnectionString(backend, input.StoreDBConnect); err != nil {
		return err
	}
	cfg.StoreBackend = backend
	cfg.StoreDBConnect = input.StoreDBConnect

	cfg.PreviewAthlete = input.Athlete
	if cfg.PreviewAthlete <= 0 {
		cfg.PreviewAthlete = cfg.Athletes[0]
	}

	return nil
}

// ValidateDatabaseConnectionString checks that backends requiring a
// connection string were given one.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.MySQLBackend, schema.PostgreSQLBackend:
		if strings.TrimSpace(connStr) == "" {
			return fmt.Errorf("backend %s requires --store-db-connect", backend)
		}
	}
	return nil
}
