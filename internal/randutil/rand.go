// Package randutil centralises how the engine obtains randomness: a
// crypto-backed generator for real sessions and seeded generators for tests
// and reproducible soak runs.
package randutil

import (
	crand "crypto/rand"
	"encoding/binary"
	rand "math/rand/v2"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Secure returns a *rand.Rand whose every draw reads fresh bytes from crypto/rand.
func Secure() *rand.Rand {
	return rand.New(cryptoSource{})
}

// Seed draws the cosmetic 32-bit seed shown in the audit trail.
func Seed(rng *rand.Rand) uint32 {
	return rng.Uint32()
}

type cryptoSource struct{}

func (cryptoSource) Uint64() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		panic("randutil: failed to read random bytes: " + err.Error())
	}
	return binary.LittleEndian.Uint64(b[:])
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
