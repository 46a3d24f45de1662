// Package core holds the heart-rate stream synthesis model and the batch
// generation logic built on top of it. The synthesizer and the threshold
// statistic are pure functions: all randomness comes from an explicitly
// constructed generator owned by the caller, so independent generations can
// run in parallel without shared state.
package core
