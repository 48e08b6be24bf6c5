// pkg/math/mat4.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	"fmt"
	"io"
	"os"
)

///////////////////////////////////////////////////////////////////////////
// 4x4 matrix

// Matrix4 is a 4x4 matrix stored in column-major order: the element in
// column c and row r is at index c*4+r, matching what OpenGL expects for
// uniform uploads.
//
//	| 0  4  8  12 |
//	| 1  5  9  13 |
//	| 2  6  10 14 |
//	| 3  7  11 15 |
//
// Nothing about the type implies a particular kind of transform; whether a
// matrix is a rotation or a projection depends only on how it was built.
type Matrix4 [16]float32

func Zero4() Matrix4 {
	return Matrix4{}
}

func Identity4() Matrix4 {
	var m Matrix4
	m[0] = 1
	m[5] = 1
	m[10] = 1
	m[15] = 1
	return m
}

func Matrix4FromArray(a [16]float32) Matrix4 {
	return Matrix4(a)
}

func (m Matrix4) Array() [16]float32 {
	return [16]float32(m)
}

// At returns the element in the given column and row.
func (m Matrix4) At(col, row int) float32 {
	return m[col*4+row]
}

// With returns a copy of m with the element at (col, row) set to v.
func (m Matrix4) With(col, row int, v float32) Matrix4 {
	m[col*4+row] = v
	return m
}

func (m Matrix4) Column(col int) [4]float32 {
	return [4]float32(m[col*4 : col*4+4])
}

// Translation returns a homogeneous translation by (x, y, z).
func Translation(x, y, z float32) Matrix4 {
	m := Identity4()
	m[12] = x
	m[13] = y
	m[14] = z
	return m
}

func TranslationV(v Vector3) Matrix4 {
	return Translation(v.X, v.Y, v.Z)
}

// Scale4 returns a uniform scale by s; the homogeneous w is left at 1.
func Scale4(s float32) Matrix4 {
	var m Matrix4
	m[0] = s
	m[5] = s
	m[10] = s
	m[15] = 1
	return m
}

// Rotation returns the matrix that rotates by angle degrees around axis,
// following the right-hand rule. The axis is normalized first.
func Rotation(angle float32, axis Vector3) Matrix4 {
	a := axis.Normalize()
	r := Radians(angle)
	c, s := Cos(r), Sin(r)
	c1 := 1 - c

	var m Matrix4

	m[0] = c1*a.X*a.X + c
	m[1] = c1*a.X*a.Y + s*a.Z
	m[2] = c1*a.X*a.Z - s*a.Y

	m[4] = c1*a.X*a.Y - s*a.Z
	m[5] = c1*a.Y*a.Y + c
	m[6] = c1*a.Y*a.Z + s*a.X

	m[8] = c1*a.X*a.Z + s*a.Y
	m[9] = c1*a.Y*a.Z - s*a.X
	m[10] = c1*a.Z*a.Z + c

	m[15] = 1

	return m
}

func RotationXYZ(angle, x, y, z float32) Matrix4 {
	return Rotation(angle, Vec3(x, y, z))
}

// Perspective returns a symmetric-frustum projection matrix. fov is the
// vertical field of view in degrees and aspect is width/height. Nothing
// is checked: near == far divides by zero.
func Perspective(fov, aspect, near, far float32) Matrix4 {
	t := Tan(Radians(fov) / 2)
	fdelta := far - near

	var m Matrix4

	m[0] = 1 / (aspect * t)
	m[5] = 1 / t
	m[10] = -((far + near) / fdelta)
	m[11] = -1
	m[14] = (-2 * far * near) / fdelta

	return m
}

// LookAt returns the view matrix for a camera at eye looking toward
// center. up need not be perpendicular to the view direction but must not
// be parallel to it.
func LookAt(eye, center, up Vector3) Matrix4 {
	f := center.Sub(eye).Normalize()
	s := f.Cross(up).Normalize()
	u := s.Cross(f)

	return Matrix4{
		s.X, u.X, -f.X, 0,
		s.Y, u.Y, -f.Y, 0,
		s.Z, u.Z, -f.Z, 0,
		-s.Dot(eye), -u.Dot(eye), f.Dot(eye), 1,
	}
}

// Mul returns the product m*b. Applied to column vectors, b's transform
// happens first.
func (m Matrix4) Mul(b Matrix4) Matrix4 {
	var result Matrix4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for e := 0; e < 4; e++ {
				sum += m[e*4+row] * b[col*4+e]
			}
			result[col*4+row] = sum
		}
	}
	return result
}

func Mul4(a, b Matrix4) Matrix4 {
	return a.Mul(b)
}

// StripTranslation zeros the x, y, and z translation terms, which is
// what's needed for transforming directions such as normals.
func (m Matrix4) StripTranslation() Matrix4 {
	m[12] = 0
	m[13] = 0
	m[14] = 0
	return m
}

// TransformPoint applies m to p with w=1. No perspective divide is done.
func (m Matrix4) TransformPoint(p Vector3) Vector3 {
	return Vector3{
		X: m[0]*p.X + m[4]*p.Y + m[8]*p.Z + m[12],
		Y: m[1]*p.X + m[5]*p.Y + m[9]*p.Z + m[13],
		Z: m[2]*p.X + m[6]*p.Y + m[10]*p.Z + m[14],
	}
}

// TransformVector applies m to v with w=0, ignoring translation.
func (m Matrix4) TransformVector(v Vector3) Vector3 {
	return Vector3{
		X: m[0]*v.X + m[4]*v.Y + m[8]*v.Z,
		Y: m[1]*v.X + m[5]*v.Y + m[9]*v.Z,
		Z: m[2]*v.X + m[6]*v.Y + m[10]*v.Z,
	}
}

///////////////////////////////////////////////////////////////////////////
// Debugging

// FprintMatrix writes m as four rows of four "%f " values.
func FprintMatrix(w io.Writer, m Matrix4) error {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if _, err := fmt.Fprintf(w, "%f ", m[col*4+row]); err != nil {
				return fmt.Errorf("printing matrix: %w", err)
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return fmt.Errorf("printing matrix: %w", err)
		}
	}
	return nil
}

// PrintMatrix writes m to stdout; errors are ignored.
func PrintMatrix(m Matrix4) {
	_ = FprintMatrix(os.Stdout, m)
}

func (m Matrix4) String() string {
	return fmt.Sprintf("[%v %v %v %v]", m.Column(0), m.Column(1), m.Column(2), m.Column(3))
}
