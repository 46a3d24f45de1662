package core

// CountAboveThreshold counts samples whose heart rate strictly exceeds the
// threshold. The two axes are expected to be index-aligned; if their lengths
// differ only the overlapping prefix is considered, and nil axes count as
// empty. The dropout sentinel 0 never qualifies unless the threshold is
// negative.
func CountAboveThreshold(times, heartRates []int, threshold int) int {
	n := min(len(times), len(heartRates))
	count := 0
	for i := range n {
		if heartRates[i] > threshold {
			count++
		}
	}
	return count
}
