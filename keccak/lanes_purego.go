//go:build purego

package keccak

// lanes is 1 in the purego build: PermuteX2/PermuteX4 fall back to
// sequential scalar permutes rather than lane-interleaved vector code.
const lanes = 1
