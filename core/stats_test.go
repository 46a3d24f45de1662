package core

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestCountAboveThreshold covers the documented examples and edge cases.
func TestCountAboveThreshold(t *testing.T) {
	tests := []struct {
		name      string
		times     []int
		rates     []int
		threshold int
		expected  int
	}{
		{
			name:      "two above",
			times:     []int{0, 1, 2},
			rates:     []int{90, 110, 120},
			threshold: 100,
			expected:  2,
		},
		{
			name:      "truncates to overlap",
			times:     []int{0, 1, 2},
			rates:     []int{90, 110},
			threshold: 100,
			expected:  1,
		},
		{
			name:      "shorter times truncates too",
			times:     []int{0},
			rates:     []int{90, 110, 120},
			threshold: 100,
			expected:  0,
		},
		{
			name:      "strict inequality",
			times:     []int{0, 1},
			rates:     []int{100, 101},
			threshold: 100,
			expected:  1,
		},
		{
			name:      "dropout sentinel never counts",
			times:     []int{0, 1, 2},
			rates:     []int{0, 0, 150},
			threshold: 100,
			expected:  1,
		},
		{
			name:      "negative threshold counts sentinels",
			times:     []int{0, 1},
			rates:     []int{0, 0},
			threshold: -1,
			expected:  2,
		},
		{
			name:      "nil axes are empty",
			times:     nil,
			rates:     nil,
			threshold: 0,
			expected:  0,
		},
		{
			name:      "nil rates only",
			times:     []int{0, 1},
			rates:     nil,
			threshold: 0,
			expected:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CountAboveThreshold(tt.times, tt.rates, tt.threshold))
		})
	}
}

// TestCountAboveThresholdMonotonicity checks that raising the threshold
// never raises the count, across a synthesized series.
func TestCountAboveThresholdMonotonicity(t *testing.T) {
	s := SynthesizeStream(baseParams(), rand.New(rand.NewSource(17)))

	prev := CountAboveThreshold(s.Timestamps, s.HeartRates, 0)
	assert.LessOrEqual(t, prev, s.Len())
	for threshold := 10; threshold <= 200; threshold += 10 {
		count := CountAboveThreshold(s.Timestamps, s.HeartRates, threshold)
		assert.LessOrEqual(t, count, prev, "threshold %d", threshold)
		assert.GreaterOrEqual(t, count, 0)
		prev = count
	}
}
