package core

import (
	"math"
	"math/rand"

	"github.com/pulsegen/pulsegen/schema"
)

// Warmup and cooldown each cover the first/last 10% of the activity.
const rampFraction = 0.10

// SynthesizeStream produces the time axis and the heart-rate axis for one
// activity. The model ramps from resting pace through a blended steady
// state, overlays randomized high-intensity bursts and per-sample noise,
// clamps every value into [RestingBpm, MaxBpm], and optionally replaces
// samples with the missing-sample sentinel 0.
//
// The function is total: a zero duration yields a single sample at t=0, a
// sampling step below 1 is lifted to 1, and probabilities outside [0,1]
// behave as never/always. Identical params and an identically seeded rng
// produce bit-identical output; the rng is consumed with exactly four
// draws per sample (burst selector, burst magnitude on either branch,
// noise, dropout), so the draw sequence never depends on earlier values.
func SynthesizeStream(p schema.StreamParams, rng *rand.Rand) schema.StreamSeries {
	if p.SamplingSeconds < 1 {
		p.SamplingSeconds = 1
	}
	if p.DurationSeconds < 0 {
		p.DurationSeconds = 0
	}

	n := p.DurationSeconds/p.SamplingSeconds + 1
	series := schema.StreamSeries{
		Timestamps: make([]int, 0, n),
		HeartRates: make([]int, 0, n),
	}

	// Guard the progress denominator so a zero-duration activity still
	// yields a defined fraction.
	den := float64(p.DurationSeconds)
	if den < 1 {
		den = 1
	}

	for t := 0; t <= p.DurationSeconds; t += p.SamplingSeconds {
		progress := float64(t) / den
		warmup := clamp01(progress / rampFraction)
		cooldown := clamp01((1 - progress) / rampFraction)

		// Kept as the two-step comparison the original model performs;
		// it ramps the baseline down gently near the end of the activity.
		baseFactor := math.Max(math.Min(warmup, cooldown), cooldown)

		steady := float64(p.RestingBpm) +
			float64(p.MaxBpm-p.RestingBpm)*(0.5*baseFactor+0.35*(1-baseFactor))

		var burst float64
		if rng.Float64() < p.IntervalIntensity {
			burst = 0.15 + rng.Float64()*0.25
		} else {
			burst = rng.Float64() * 0.05
		}

		noise := (rng.Float64() - 0.5) * 6.0

		bpm := int(math.Round(clampRange(
			steady*(1+burst)+noise,
			float64(p.RestingBpm),
			float64(p.MaxBpm),
		)))

		if rng.Float64() < p.DropoutProbability {
			bpm = 0
		}

		series.Timestamps = append(series.Timestamps, t)
		series.HeartRates = append(series.HeartRates, bpm)
	}

	return series
}

func clamp01(v float64) float64 {
	return clampRange(v, 0, 1)
}

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
