package keccak

// permute applies the 12-round θ∘ρ∘π∘χ∘ι schedule to state: rounds 12..23
// of the full 24-round Keccak-f[1600] schedule.
func permute(state *State) {
	var scratch State

	for r := range rounds {
		round(state, &scratch, roundConstants[r])
	}
}

func round(state, scratch *State, rc uint64) {
	theta(state)
	rho(state)
	pi(state, scratch)
	chi(scratch, state)
	state[0] ^= rc
}

// theta is step-mapping θ: for each column x, C[x] is the XOR of its 5
// lanes; D[x] = C[x-1] ^ rotl(C[x+1], 1); every lane in column x is XORed
// with D[x].
func theta(state *State) {
	var c [5]uint64
	for x := range 5 {
		c[x] = state[x] ^ state[x+5] ^ state[x+10] ^ state[x+15] ^ state[x+20]
	}

	var d [5]uint64
	for x := range 5 {
		d[x] = c[(x+4)%5] ^ rotl64(c[(x+1)%5], 1)
	}

	for y := range 5 {
		off := 5 * y
		for x := range 5 {
			state[off+x] ^= d[x]
		}
	}
}

// rho is step-mapping ρ: each lane is rotated left by its fixed offset.
func rho(state *State) {
	for i := range 25 {
		state[i] = rotl64(state[i], rotOffsets[i])
	}
}

// pi is step-mapping π: ostate[5y+x] = istate[piPerm[5y+x]].
func pi(istate, ostate *State) {
	for i := range 25 {
		ostate[i] = istate[piPerm[i]]
	}
}

// chi is step-mapping χ: within each row, lane(x,y) ^= (NOT lane(x+1,y)) AND
// lane(x+2,y).
func chi(istate, ostate *State) {
	for y := range 5 {
		off := 5 * y
		a0, a1, a2, a3, a4 := istate[off], istate[off+1], istate[off+2], istate[off+3], istate[off+4]
		ostate[off+0] = a0 ^ (^a1 & a2)
		ostate[off+1] = a1 ^ (^a2 & a3)
		ostate[off+2] = a2 ^ (^a3 & a4)
		ostate[off+3] = a3 ^ (^a4 & a0)
		ostate[off+4] = a4 ^ (^a0 & a1)
	}
}

func rotl64(x uint64, k uint64) uint64 {
	if k == 0 {
		return x
	}
	return (x << k) | (x >> (64 - k))
}
