// pkg/rand/hash.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package rand

///////////////////////////////////////////////////////////////////////////
// Stateless hash-based values.
//
// These map an index to a fixed pseudo-random value, so a given index
// always returns the same result on every platform. They are not
// suitable for anything security related.

// Uint32 returns a 31-bit pseudo-random value for index. The arithmetic
// wraps at 32 bits.
func Uint32(index uint32) uint32 {
	index = (index << 13) ^ index
	return (index*(index*index*15731+789221) + 1376312589) & 0x7FFFFFFF
}

// Float32 returns a value in [0,1] for index.
func Float32(index uint32) float32 {
	return (float32(Uint32(index)) / 1073741824) * 0.5
}

func Float64(index uint32) float64 {
	return (float64(Uint32(index)) / 1073741824) * 0.5
}

// SignedFloat32 returns a value in [-1,1] for index.
func SignedFloat32(index uint32) float32 {
	return float32(Uint32(index))/1073741824 - 1
}

func SignedFloat64(index uint32) float64 {
	return float64(Uint32(index))/1073741824 - 1
}
