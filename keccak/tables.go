package keccak

// rounds is the number of rounds of the full 24-round Keccak-f[1600]
// schedule that Keccak-p[1600,12] applies: the last 12.
const rounds = 12

// fullRounds is the width of the schedule the round constants are drawn
// from; Keccak-p[1600,12] uses constants for round indices
// fullRounds-rounds .. fullRounds-1.
const fullRounds = 24

var (
	// rotOffsets holds the per-lane left-rotation amount used by ρ, generated
	// by the (x,y) <- (y, (2x+3y) mod 5) walk starting at (1,0), assigning
	// ((t+1)(t+2)/2) mod 64 for t = 0..23. Lane (0,0) never appears in the
	// walk and keeps its zero-initialized offset.
	rotOffsets [25]uint64

	// piPerm holds the π step mapping as an index table: ostate[i] =
	// istate[piPerm[i]], where i = 5y+x and piPerm[i] = 5x + (x+3y) mod 5.
	piPerm [25]int

	// roundConstants holds the ι step's per-round constant for the 12 rounds
	// Keccak-p[1600,12] actually runs, derived from the round-constant LFSR
	// defined over GF(2) by the primitive polynomial x^8+x^6+x^5+x^4+1.
	roundConstants [rounds]uint64
)

func init() {
	generateRotOffsets()
	generatePiPerm()
	generateRoundConstants()
}

func generateRotOffsets() {
	x, y := 1, 0
	for t := range 24 {
		idx := 5*y + x
		rotOffsets[idx] = uint64(((t + 1) * (t + 2) / 2) % 64)
		x, y = y, (2*x+3*y)%5
	}
}

func generatePiPerm() {
	for yy := range 5 {
		for xx := range 5 {
			piPerm[5*yy+xx] = 5*xx + (xx+3*yy)%5
		}
	}
}

// lfsrBit evaluates the rc(t) bit defined by FIPS 202 Algorithm 5: a
// maximal-length LFSR over the primitive polynomial x^8+x^6+x^5+x^4+1,
// seeded at a single 1 bit, stepped t mod 255 times.
func lfsrBit(t int) uint64 {
	if t%255 == 0 {
		return 1
	}

	r := [8]byte{1, 0, 0, 0, 0, 0, 0, 0}

	for range t % 255 {
		var nr [9]byte
		copy(nr[1:], r[:])
		nr[0] ^= nr[8]
		nr[4] ^= nr[8]
		nr[5] ^= nr[8]
		nr[6] ^= nr[8]
		copy(r[:], nr[:8])
	}

	return uint64(r[0])
}

func generateRoundConstants() {
	for r := range rounds {
		schedule := fullRounds - rounds + r

		var rc uint64
		for j := range 7 {
			bit := lfsrBit(j + 7*schedule)
			rc |= bit << ((1 << j) - 1)
		}

		roundConstants[r] = rc
	}
}
