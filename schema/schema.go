// Package schema has configs, models and shared constants for all parts of pulsegen.
package schema

// StreamParams holds the generation parameters for a single heart-rate stream.
// Resting and max bounds clamp every non-dropout sample; the probabilities
// are permissive (out-of-range values degrade to never/always rather than fail).
type StreamParams struct {
	DurationSeconds    int     // Total activity duration in seconds
	SamplingSeconds    int     // Fixed sampling step in seconds (>= 1)
	RestingBpm         int     // Lower heart-rate bound
	MaxBpm             int     // Upper heart-rate bound
	IntervalIntensity  float64 // Probability [0,1] that a sample is a high-intensity burst
	DropoutProbability float64 // Probability [0,1] that a sample is recorded as missing
}

// StreamSeries holds the two index-aligned axes produced by one synthesis run.
// Timestamps start at 0 and increase by the sampling step; a heart rate of 0
// marks a missing sample (dropout sentinel).
type StreamSeries struct {
	Timestamps []int `json:"timestamps"`
	HeartRates []int `json:"heart_rates"`
}

// Len returns the number of samples in the series.
func (s StreamSeries) Len() int {
	return len(s.Timestamps)
}
