// pkg/rand/rand.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package rand

import (
	"github.com/MichaelTJones/pcg"
)

///////////////////////////////////////////////////////////////////////////
// Random number streams.

// Rand is a seedable PCG32 stream. Unlike the hash functions in hash.go,
// it carries state, so a single Rand must not be shared between
// goroutines without synchronization.
type Rand struct {
	r *pcg.PCG32
}

func New() Rand {
	return Rand{r: pcg.NewPCG32()}
}

// Make returns a Rand seeded with s; the same s always produces the same
// sequence.
func Make(s int64) Rand {
	r := New()
	r.Seed(s)
	return r
}

func (r *Rand) Seed(s int64) {
	r.r.Seed(uint64(s), 0xda3e39cb94b95bdb)
}

func (r *Rand) Intn(n int) int {
	return int(r.r.Bounded(uint32(n)))
}

func (r *Rand) Float32() float32 {
	return float32(r.r.Random()) / (1<<32 - 1)
}

// Float32Range returns a value in [lo, hi].
func (r *Rand) Float32Range(lo, hi float32) float32 {
	return lo + (hi-lo)*r.Float32()
}

func (r *Rand) Uint32() uint32 {
	return r.r.Random()
}
