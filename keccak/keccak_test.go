package keccak

import (
	"crypto/sha3"
	"encoding/binary"
	"encoding/hex"
	"testing"
)

func stateFromHex(t *testing.T, s string) State {
	t.Helper()

	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatal(err)
	}
	if len(b) != 200 {
		t.Fatalf("want 200 bytes, got %d", len(b))
	}

	var state State
	for i := range 25 {
		state[i] = binary.LittleEndian.Uint64(b[i*8:])
	}
	return state
}

func hexFromState(state State) string {
	var b [200]byte
	for i := range 25 {
		binary.LittleEndian.PutUint64(b[i*8:], state[i])
	}
	return hex.EncodeToString(b[:])
}

// TestPermuteZeroState checks Permute against the known Keccak-p[1600,12]
// zero-state vector.
func TestPermuteZeroState(t *testing.T) {
	var state State
	Permute(&state)

	want := "1786a7b938545e8e1ed059f2506acdd9351fa952c6e7b887c5e0e4cd67e09310455ad9f290ab33b0451adda8722fa7e09c2f6714aa8037c51d075100f547dd3ecc8a170c311da3b3a0aa5792a586b5799bf9b1b33d7c4abc93678ae66340876866250e2e33036c5cda30f0b90212aa9c9f7acf2b789a3b5f2379ae61e0c136e5ec873cb718b6e96dc28a9170f1d1be2ab724edda53bdab6a5ae12e2c6a41c1bfaf5209b936e0cfc6d76070dc17365045e47a9fc2b21156627a64302cdb7136d41ca02c22760dfdcf"
	if got := hexFromState(state); got != want {
		t.Errorf("Permute(0) = %s, want %s", got, want)
	}
}

// TestTables cross-checks the LFSR/recurrence-generated tables against the
// literal reference arrays from the original Rust implementation.
func TestTables(t *testing.T) {
	wantRot := [25]uint64{
		0, 1, 190 % 64, 28, 91 % 64, 36, 300 % 64, 6, 55, 276 % 64,
		3, 10, 171 % 64, 153 % 64, 231 % 64, 105 % 64, 45, 15, 21, 136 % 64,
		210 % 64, 66 % 64, 253 % 64, 120 % 64, 78 % 64,
	}
	if rotOffsets != wantRot {
		t.Errorf("rotOffsets = %v, want %v", rotOffsets, wantRot)
	}

	wantPerm := [25]int{0, 6, 12, 18, 24, 3, 9, 10, 16, 22, 1, 7, 13, 19, 20, 4, 5, 11, 17, 23, 2, 8, 14, 15, 21}
	if piPerm != wantPerm {
		t.Errorf("piPerm = %v, want %v", piPerm, wantPerm)
	}

	wantRC := [rounds]uint64{
		2147516555, 9223372036854775947, 9223372036854808713, 9223372036854808579, 9223372036854808578,
		9223372036854775936, 32778, 9223372039002259466, 9223372039002292353, 9223372036854808704,
		2147483649, 9223372039002292232,
	}
	if roundConstants != wantRC {
		t.Errorf("roundConstants = %v, want %v", roundConstants, wantRC)
	}
}

// TestPermuteX2EquivalesSequential checks invariant 1: permutex2 on (A,B)
// matches two independent scalar permutes, for both the zero state and
// distinct pseudorandom states.
func TestPermuteX2EquivalesSequential(t *testing.T) {
	var zero1, zero2 State
	PermuteX2(&zero1, &zero2)

	var wantZero State
	Permute(&wantZero)

	if zero1 != wantZero || zero2 != wantZero {
		t.Fatalf("PermuteX2(0,0) mismatch against Permute(0)")
	}

	drbg := sha3.NewSHAKE128()
	_, _ = drbg.Write([]byte("keccak-permutex2"))

	a := randomState(t, drbg)
	b := randomState(t, drbg)
	aRef, bRef := a, b

	PermuteX2(&a, &b)
	Permute(&aRef)
	Permute(&bRef)

	if a != aRef {
		t.Errorf("PermuteX2 state A mismatch: got %x, want %x", a, aRef)
	}
	if b != bRef {
		t.Errorf("PermuteX2 state B mismatch: got %x, want %x", b, bRef)
	}
}

// TestPermuteX4EquivalesSequential checks invariant 1 for the ×4 path.
func TestPermuteX4EquivalesSequential(t *testing.T) {
	drbg := sha3.NewSHAKE128()
	_, _ = drbg.Write([]byte("keccak-permutex4"))

	a := randomState(t, drbg)
	b := randomState(t, drbg)
	c := randomState(t, drbg)
	d := randomState(t, drbg)
	aRef, bRef, cRef, dRef := a, b, c, d

	PermuteX4(&a, &b, &c, &d)
	Permute(&aRef)
	Permute(&bRef)
	Permute(&cRef)
	Permute(&dRef)

	for i, pair := range [][2]State{{a, aRef}, {b, bRef}, {c, cRef}, {d, dRef}} {
		if pair[0] != pair[1] {
			t.Errorf("PermuteX4 state %d mismatch: got %x, want %x", i, pair[0], pair[1])
		}
	}
}

func randomState(t *testing.T, drbg *sha3.SHAKE) State {
	t.Helper()

	var b [200]byte
	if _, err := drbg.Read(b[:]); err != nil {
		t.Fatal(err)
	}

	var state State
	for i := range 25 {
		state[i] = binary.LittleEndian.Uint64(b[i*8:])
	}
	return state
}

func FuzzPermuteX2(f *testing.F) {
	drbg := sha3.NewSHAKE128()
	_, _ = drbg.Write([]byte("fuzz-permutex2"))
	for range 8 {
		var seed [400]byte
		_, _ = drbg.Read(seed[:])
		f.Add(seed[:])
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) != 400 {
			t.Skip()
		}

		var a, b, aRef, bRef State
		for i := range 25 {
			a[i] = binary.LittleEndian.Uint64(data[i*8:])
			b[i] = binary.LittleEndian.Uint64(data[200+i*8:])
		}
		aRef, bRef = a, b

		PermuteX2(&a, &b)
		Permute(&aRef)
		Permute(&bRef)

		if a != aRef || b != bRef {
			t.Errorf("PermuteX2 diverged from sequential Permute")
		}
	})
}

func TestPermuteDistinctInputsDiverge(t *testing.T) {
	var s1, s2 State
	s1[0] = 1
	s2[24] = 1

	Permute(&s1)
	Permute(&s2)

	if s1 == s2 {
		t.Fatal("Permute(e0) == Permute(e24), expected distinct outputs")
	}
}
