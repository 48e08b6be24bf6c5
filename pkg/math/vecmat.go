// pkg/math/vecmat.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

///////////////////////////////////////////////////////////////////////////
// Vector2

// Vector2 is a 2D point or direction. All of the methods take and return
// values; nothing is modified in place.
type Vector2 struct {
	X, Y float32
}

func Vec2(x, y float32) Vector2 {
	return Vector2{X: x, Y: y}
}

func Vector2FromArray(a [2]float32) Vector2 {
	return Vector2{X: a[0], Y: a[1]}
}

func (v Vector2) Array() [2]float32 {
	return [2]float32{v.X, v.Y}
}

// v+b
func (v Vector2) Add(b Vector2) Vector2 {
	return Vector2{v.X + b.X, v.Y + b.Y}
}

// v-b
func (v Vector2) Sub(b Vector2) Vector2 {
	return Vector2{v.X - b.X, v.Y - b.Y}
}

// v*s
func (v Vector2) Scale(s float32) Vector2 {
	return Vector2{v.X * s, v.Y * s}
}

func (v Vector2) Dot(b Vector2) float32 {
	return v.X*b.X + v.Y*b.Y
}

// Length of v
func (v Vector2) Length() float32 {
	return Sqrt(v.Dot(v))
}

// Normalize scales v by FastInvSqrt of its squared length. There is no
// check for a zero-length vector.
func (v Vector2) Normalize() Vector2 {
	return v.Scale(FastInvSqrt(v.Dot(v)))
}

// Rotate returns v rotated counter-clockwise by the given angle in
// degrees. Both components are computed from the original v.
func (v Vector2) Rotate(angle float32) Vector2 {
	s, c := SinCos(Radians(angle))
	return Vector2{
		X: v.X*c - v.Y*s,
		Y: v.X*s + v.Y*c,
	}
}

///////////////////////////////////////////////////////////////////////////
// Vector3

type Vector3 struct {
	X, Y, Z float32
}

func Vec3(x, y, z float32) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

func Vector3FromArray(a [3]float32) Vector3 {
	return Vector3{X: a[0], Y: a[1], Z: a[2]}
}

func (v Vector3) Array() [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

func (v Vector3) Add(b Vector3) Vector3 {
	return Vector3{v.X + b.X, v.Y + b.Y, v.Z + b.Z}
}

func (v Vector3) Sub(b Vector3) Vector3 {
	return Vector3{v.X - b.X, v.Y - b.Y, v.Z - b.Z}
}

func (v Vector3) Scale(s float32) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vector3) Dot(b Vector3) float32 {
	return v.X*b.X + v.Y*b.Y + v.Z*b.Z
}

// v x b
func (v Vector3) Cross(b Vector3) Vector3 {
	return Vector3{
		X: v.Y*b.Z - v.Z*b.Y,
		Y: v.Z*b.X - v.X*b.Z,
		Z: v.X*b.Y - v.Y*b.X,
	}
}

func (v Vector3) Length() float32 {
	return Sqrt(v.Dot(v))
}

// Normalize scales v by FastInvSqrt of its squared length. As with
// Vector2, zero-length input is not special-cased.
func (v Vector3) Normalize() Vector3 {
	return v.Scale(FastInvSqrt(v.Dot(v)))
}
