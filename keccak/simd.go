//go:build !purego

package keccak

// PermuteX2 applies the Keccak-p[1600,12] permutation to state1 and state2
// in parallel: identical to two independent calls to Permute, but every
// θ/ρ/π/χ/ι step operates element-wise on a packed pair of lanes, so no
// cross-lane reduction ever crosses between the two states. See
// permutex2 in the original Rust reference for the widening this mirrors.
func PermuteX2(state1, state2 *State) {
	var packed [25][2]uint64
	for i := range 25 {
		packed[i] = [2]uint64{state1[i], state2[i]}
	}

	var scratch [25][2]uint64
	for r := range rounds {
		roundX2(&packed, &scratch, roundConstants[r])
	}

	for i := range 25 {
		state1[i], state2[i] = packed[i][0], packed[i][1]
	}
}

// PermuteX4 applies the Keccak-p[1600,12] permutation to four states in
// parallel, widening every step element-wise over a packed 4-lane group.
func PermuteX4(state1, state2, state3, state4 *State) {
	var packed [25][4]uint64
	for i := range 25 {
		packed[i] = [4]uint64{state1[i], state2[i], state3[i], state4[i]}
	}

	var scratch [25][4]uint64
	for r := range rounds {
		roundX4(&packed, &scratch, roundConstants[r])
	}

	for i := range 25 {
		state1[i], state2[i], state3[i], state4[i] = packed[i][0], packed[i][1], packed[i][2], packed[i][3]
	}
}

func roundX2(state, scratch *[25][2]uint64, rc uint64) {
	thetaX2(state)
	rhoX2(state)
	piX2(state, scratch)
	chiX2(scratch, state)
	state[0][0] ^= rc
	state[0][1] ^= rc
}

func thetaX2(state *[25][2]uint64) {
	var c [5][2]uint64
	for x := range 5 {
		for lane := range 2 {
			c[x][lane] = state[x][lane] ^ state[x+5][lane] ^ state[x+10][lane] ^ state[x+15][lane] ^ state[x+20][lane]
		}
	}

	var d [5][2]uint64
	for x := range 5 {
		for lane := range 2 {
			d[x][lane] = c[(x+4)%5][lane] ^ rotl64(c[(x+1)%5][lane], 1)
		}
	}

	for y := range 5 {
		off := 5 * y
		for x := range 5 {
			for lane := range 2 {
				state[off+x][lane] ^= d[x][lane]
			}
		}
	}
}

func rhoX2(state *[25][2]uint64) {
	for i := range 25 {
		for lane := range 2 {
			state[i][lane] = rotl64(state[i][lane], rotOffsets[i])
		}
	}
}

func piX2(istate, ostate *[25][2]uint64) {
	for i := range 25 {
		ostate[i] = istate[piPerm[i]]
	}
}

func chiX2(istate, ostate *[25][2]uint64) {
	for y := range 5 {
		off := 5 * y
		for lane := range 2 {
			a0, a1, a2, a3, a4 := istate[off][lane], istate[off+1][lane], istate[off+2][lane], istate[off+3][lane], istate[off+4][lane]
			ostate[off+0][lane] = a0 ^ (^a1 & a2)
			ostate[off+1][lane] = a1 ^ (^a2 & a3)
			ostate[off+2][lane] = a2 ^ (^a3 & a4)
			ostate[off+3][lane] = a3 ^ (^a4 & a0)
			ostate[off+4][lane] = a4 ^ (^a0 & a1)
		}
	}
}

func roundX4(state, scratch *[25][4]uint64, rc uint64) {
	thetaX4(state)
	rhoX4(state)
	piX4(state, scratch)
	chiX4(scratch, state)
	for lane := range 4 {
		state[0][lane] ^= rc
	}
}

func thetaX4(state *[25][4]uint64) {
	var c [5][4]uint64
	for x := range 5 {
		for lane := range 4 {
			c[x][lane] = state[x][lane] ^ state[x+5][lane] ^ state[x+10][lane] ^ state[x+15][lane] ^ state[x+20][lane]
		}
	}

	var d [5][4]uint64
	for x := range 5 {
		for lane := range 4 {
			d[x][lane] = c[(x+4)%5][lane] ^ rotl64(c[(x+1)%5][lane], 1)
		}
	}

	for y := range 5 {
		off := 5 * y
		for x := range 5 {
			for lane := range 4 {
				state[off+x][lane] ^= d[x][lane]
			}
		}
	}
}

func rhoX4(state *[25][4]uint64) {
	for i := range 25 {
		for lane := range 4 {
			state[i][lane] = rotl64(state[i][lane], rotOffsets[i])
		}
	}
}

func piX4(istate, ostate *[25][4]uint64) {
	for i := range 25 {
		ostate[i] = istate[piPerm[i]]
	}
}

func chiX4(istate, ostate *[25][4]uint64) {
	for y := range 5 {
		off := 5 * y
		for lane := range 4 {
			a0, a1, a2, a3, a4 := istate[off][lane], istate[off+1][lane], istate[off+2][lane], istate[off+3][lane], istate[off+4][lane]
			ostate[off+0][lane] = a0 ^ (^a1 & a2)
			ostate[off+1][lane] = a1 ^ (^a2 & a3)
			ostate[off+2][lane] = a2 ^ (^a3 & a4)
			ostate[off+3][lane] = a3 ^ (^a4 & a0)
			ostate[off+4][lane] = a4 ^ (^a0 & a1)
		}
	}
}
