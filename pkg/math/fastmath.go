// pkg/math/fastmath.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	gomath "math"
)

func FloatToBits(f float32) uint32 {
	return gomath.Float32bits(f)
}

func BitsToFloat(b uint32) float32 {
	return gomath.Float32frombits(b)
}

// FastInvSqrt approximates 1/sqrt(x) with the Quake III bit trick
// followed by exactly two Newton-Raphson steps. Relative error is under
// 0.2% for positive normal inputs. The magic constant and iteration count
// are fixed: normalized vectors (and everything built from them) depend
// on this exact approximation.
func FastInvSqrt(x float32) float32 {
	half := x * 0.5
	i := int32(FloatToBits(x))
	i = 0x5F3759DF - (i >> 1)
	y := BitsToFloat(uint32(i))
	y = y * float32(1.5-float32(half*y*y))
	y = y * float32(1.5-float32(half*y*y))
	return y
}

// FastSqrt approximates sqrt(x) as x * FastInvSqrt(x).
func FastSqrt(x float32) float32 {
	return x * FastInvSqrt(x)
}
