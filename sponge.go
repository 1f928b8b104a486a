package turboshake

import "github.com/go-turboshake/turboshake/keccak"

// absorbBytes XORs msg into the rate region of state starting at *offset,
// permuting and wrapping the cursor back to 0 every time a full rate block
// fills, mirroring the eager permute-on-fill absorb loop in
// original_source/src/sponge.rs: a filled rate triggers an immediate
// permute, so 0 <= *offset < rate always holds on return. Chunking-
// transparent: absorbing [a|b] across two calls XORs the same bytes at the
// same positions as absorbing a||b in one call.
func absorbBytes(state *keccak.State, offset *int, rate int, msg []byte) {
	o := *offset
	for len(msg) > 0 {
		n := min(rate-o, len(msg))
		xorBytesIntoState(state, o, msg[:n])
		o += n
		msg = msg[n:]

		if o == rate {
			keccak.Permute(state)
			o = 0
		}
	}
	*offset = o
}

// finalizeBytes appends the TurboSHAKE padding: D at the current cursor,
// 0x80 at byte rate-1 (XORed into whatever is already there, so the two
// writes compose correctly even when they land on the same byte), then
// permutes and resets the cursor to 0.
func finalizeBytes(state *keccak.State, offset *int, rate int, d byte) {
	xorByteIntoState(state, *offset, d)
	xorByteIntoState(state, rate-1, 0x80)
	keccak.Permute(state)
	*offset = 0
}

// squeezeBytes fills out from the rate region starting at byte
// rate-*squeezable. Every time *squeezable drops to 0 a permutation is
// applied immediately and *squeezable is reset to rate, so the invariant
// "squeezable == 0 implies a fresh permutation has already run" holds
// between calls, not just lazily on the next one. Chunking-transparent
// exactly like absorbBytes.
func squeezeBytes(state *keccak.State, squeezable *int, rate int, out []byte) {
	off := 0
	for off < len(out) {
		n := min(*squeezable, len(out)-off)
		soff := rate - *squeezable
		readBytesFromState(state, soff, out[off:off+n])

		*squeezable -= n
		off += n

		if *squeezable == 0 {
			keccak.Permute(state)
			*squeezable = rate
		}
	}
}

// xorBytesIntoState XORs src into state's byte-addressed rate region
// starting at byte offset pos, interpreting the state's lanes as a
// little-endian byte sequence.
func xorBytesIntoState(state *keccak.State, pos int, src []byte) {
	for i, b := range src {
		xorByteIntoState(state, pos+i, b)
	}
}

func xorByteIntoState(state *keccak.State, pos int, b byte) {
	lane := pos / 8
	shift := uint(pos%8) * 8
	state[lane] ^= uint64(b) << shift
}

func readBytesFromState(state *keccak.State, pos int, dst []byte) {
	for i := range dst {
		lane := (pos + i) / 8
		shift := uint((pos+i)%8) * 8
		dst[i] = byte(state[lane] >> shift)
	}
}
