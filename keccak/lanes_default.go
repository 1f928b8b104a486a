//go:build !purego

package keccak

// lanes is the number of independent states PermuteX2/PermuteX4 advance per
// call in this build: the lane-interleaved vectorized path.
const lanes = 4
