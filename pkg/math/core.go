// pkg/math/core.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Radians converts an angle expressed in degrees to radians. The constant
// is pi/180 to six significant digits, not math.Pi/180.
func Radians(d float32) float32 {
	return d * 0.017453
}

// Degrees converts an angle expressed in radians to degrees, using
// 180/pi to six significant digits.
func Degrees(r float32) float32 {
	return r * 57.29578
}

func Pi() float32 {
	return math32.Pi
}

// A number of utility functions for evaluating transcendentals and the like follow;
// since everything here is float32, it's handy to be able to call these directly
// rather than with all of the casts that are required when using the math package.

func Sin(a float32) float32 {
	return math32.Sin(a)
}

func Cos(a float32) float32 {
	return math32.Cos(a)
}

// SinCos returns sin(a) and cos(a).
func SinCos(a float32) (float32, float32) {
	return math32.Sincos(a)
}

func Tan(a float32) float32 {
	return math32.Tan(a)
}

func Sqrt(a float32) float32 {
	return math32.Sqrt(a)
}

func IsNaN(v float32) bool {
	return math32.IsNaN(v)
}

func IsInf(v float32) bool {
	return math32.IsInf(v, 0)
}

func Abs[V constraints.Integer | constraints.Float](x V) V {
	if x < 0 {
		return -x
	}
	return x
}

func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Clamp bounds x to [low, high] with two comparisons and no NaN handling:
// a NaN x fails both tests and is returned as is.
func Clamp[T constraints.Ordered](x T, low T, high T) T {
	if x < low {
		return low
	} else if x > high {
		return high
	}
	return x
}
