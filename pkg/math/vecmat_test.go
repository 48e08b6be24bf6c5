// pkg/math/vecmat_test.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	"testing"

	"github.com/mmath-go/mmath/pkg/rand"
)

func randomVector2(r *rand.Rand, extent float32) Vector2 {
	return Vec2(r.Float32Range(-extent, extent), r.Float32Range(-extent, extent))
}

func randomVector3(r *rand.Rand, extent float32) Vector3 {
	return Vec3(r.Float32Range(-extent, extent), r.Float32Range(-extent, extent),
		r.Float32Range(-extent, extent))
}

func TestVector2Basics(t *testing.T) {
	a, b := Vec2(1, 2), Vec2(3, -5)
	if v := a.Add(b); v != Vec2(4, -3) {
		t.Errorf("Add: got %+v", v)
	}
	if v := a.Sub(b); v != Vec2(-2, 7) {
		t.Errorf("Sub: got %+v", v)
	}
	if v := a.Scale(3); v != Vec2(3, 6) {
		t.Errorf("Scale: got %+v", v)
	}
	if d := a.Dot(b); d != -7 {
		t.Errorf("Dot: got %v", d)
	}
	if l := Vec2(3, 4).Length(); l != 5 {
		t.Errorf("Length: got %v", l)
	}
	if v := Vector2FromArray(a.Array()); v != a {
		t.Errorf("array round trip: got %+v", v)
	}
	if arr := a.Array(); arr != [2]float32{1, 2} {
		t.Errorf("Array: got %v", arr)
	}
}

func TestVector3Basics(t *testing.T) {
	a, b := Vec3(1, 2, 3), Vec3(-2, 0.5, 4)
	if v := a.Add(b); v != Vec3(-1, 2.5, 7) {
		t.Errorf("Add: got %+v", v)
	}
	if v := a.Sub(b); v != Vec3(3, 1.5, -1) {
		t.Errorf("Sub: got %+v", v)
	}
	if v := a.Scale(-2); v != Vec3(-2, -4, -6) {
		t.Errorf("Scale: got %+v", v)
	}
	if d := a.Dot(b); d != 11 {
		t.Errorf("Dot: got %v", d)
	}
	if v := Vec3(1, 0, 0).Cross(Vec3(0, 1, 0)); v != Vec3(0, 0, 1) {
		t.Errorf("x cross y: got %+v", v)
	}
	if v := Vec3(0, 1, 0).Cross(Vec3(1, 0, 0)); v != Vec3(0, 0, -1) {
		t.Errorf("y cross x: got %+v", v)
	}
	if l := Vec3(2, 3, 6).Length(); l != 7 {
		t.Errorf("Length: got %v", l)
	}
	if v := Vector3FromArray(a.Array()); v != a {
		t.Errorf("array round trip: got %+v", v)
	}
}

func TestNormalize(t *testing.T) {
	r := rand.Make(1)
	for i := 0; i < 10000; i++ {
		v2 := randomVector2(&r, 100)
		if v2.Length() > 1e-3 {
			if l := v2.Normalize().Length(); relativeError(l, 1) > fastInvSqrtTolerance {
				t.Errorf("%+v: normalized length %v", v2, l)
			}
		}

		v3 := randomVector3(&r, 100)
		if v3.Length() > 1e-3 {
			if l := v3.Normalize().Length(); relativeError(l, 1) > fastInvSqrtTolerance {
				t.Errorf("%+v: normalized length %v", v3, l)
			}
		}
	}
}

func TestNormalizeZero(t *testing.T) {
	// Zero-length input isn't checked. The bit-trick estimate for 1/sqrt(0)
	// is large but finite, so the result is the zero vector rather than
	// NaNs.
	if v := Vec2(0, 0).Normalize(); v != Vec2(0, 0) {
		t.Errorf("Vector2 zero: got %+v", v)
	}
	if v := Vec3(0, 0, 0).Normalize(); v != Vec3(0, 0, 0) {
		t.Errorf("Vector3 zero: got %+v", v)
	}
}

func TestAddNegated(t *testing.T) {
	r := rand.Make(2)
	for i := 0; i < 1000; i++ {
		v2 := randomVector2(&r, 1000)
		if s := v2.Add(v2.Scale(-1)); s != (Vector2{}) {
			t.Errorf("%+v + -v = %+v", v2, s)
		}
		v3 := randomVector3(&r, 1000)
		if s := v3.Add(v3.Scale(-1)); s != (Vector3{}) {
			t.Errorf("%+v + -v = %+v", v3, s)
		}
	}
}

func TestCrossOrthogonal(t *testing.T) {
	r := rand.Make(3)
	for i := 0; i < 10000; i++ {
		a, b := randomVector3(&r, 10), randomVector3(&r, 10)
		c := a.Cross(b)
		la, lb := a.Length(), b.Length()
		if d := c.Dot(a); Abs(d) > 1e-4*la*la*lb {
			t.Errorf("(%+v x %+v) . a = %v", a, b, d)
		}
		if d := c.Dot(b); Abs(d) > 1e-4*la*lb*lb {
			t.Errorf("(%+v x %+v) . b = %v", a, b, d)
		}
	}
}

func TestVector2Rotate(t *testing.T) {
	const tol = 1e-4
	for _, tc := range []struct {
		name     string
		v        Vector2
		angle    float32
		expected Vector2
	}{
		{"x by 90", Vec2(1, 0), 90, Vec2(0, 1)},
		// Computing y from an already-rotated x gives (-1, -1) here.
		{"diagonal by 90", Vec2(1, 1), 90, Vec2(-1, 1)},
		{"y by 90", Vec2(0, 1), 90, Vec2(-1, 0)},
		{"x by 180", Vec2(1, 0), 180, Vec2(-1, 0)},
		{"x by -90", Vec2(1, 0), -90, Vec2(0, -1)},
		{"arbitrary by 0", Vec2(3, -7), 0, Vec2(3, -7)},
		{"diagonal by 45", Vec2(1, 1), 45, Vec2(0, 1.41421356)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.v.Rotate(tc.angle)
			if absoluteError(got.X, tc.expected.X) > tol || absoluteError(got.Y, tc.expected.Y) > tol {
				t.Errorf("%+v rotated by %v: got %+v, expected %+v", tc.v, tc.angle, got, tc.expected)
			}
		})
	}
}

func TestVector2RotatePreservesLength(t *testing.T) {
	r := rand.Make(4)
	for i := 0; i < 1000; i++ {
		v := randomVector2(&r, 50)
		angle := r.Float32Range(-720, 720)
		if l0, l1 := v.Length(), v.Rotate(angle).Length(); absoluteError(l0, l1) > 1e-4*Max(l0, 1) {
			t.Errorf("%+v rotated by %v: length %v -> %v", v, angle, l0, l1)
		}
	}
}
