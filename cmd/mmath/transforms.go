// cmd/mmath/transforms.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"fmt"
	"io"

	"github.com/mmath-go/mmath/pkg/math"
)

type Transforms struct {
	Model      math.Matrix4
	View       math.Matrix4
	Projection math.Matrix4
	MVP        math.Matrix4
	// Normal transforms directions: the model matrix without its
	// translation.
	Normal math.Matrix4
}

// BuildTransforms computes the per-frame matrices. The model matrix
// scales, then rotates, then translates.
func BuildTransforms(c Config) Transforms {
	var t Transforms
	t.Model = math.TranslationV(c.Translate).
		Mul(math.Rotation(c.Angle, c.Axis)).
		Mul(math.Scale4(c.Scale))
	t.View = math.LookAt(c.Eye, c.Center, c.Up)
	t.Projection = math.Perspective(c.FOV, c.Aspect, c.Near, c.Far)
	t.MVP = t.Projection.Mul(t.View).Mul(t.Model)
	t.Normal = t.Model.StripTranslation()
	return t
}

func (t Transforms) Fprint(w io.Writer) error {
	for _, m := range []struct {
		name string
		m    math.Matrix4
	}{
		{"model", t.Model},
		{"view", t.View},
		{"projection", t.Projection},
		{"mvp", t.MVP},
		{"normal", t.Normal},
	} {
		if _, err := fmt.Fprintf(w, "%s:\n", m.name); err != nil {
			return err
		}
		if err := math.FprintMatrix(w, m.m); err != nil {
			return err
		}
	}
	return nil
}

// checkDegenerate returns descriptions of inputs that will produce
// infinite or NaN entries. The matrices are still built as requested.
func checkDegenerate(c Config) []string {
	var warn []string
	if c.Near == c.Far {
		warn = append(warn, "near and far planes coincide")
	}
	f := c.Center.Sub(c.Eye)
	if f == (math.Vector3{}) {
		warn = append(warn, "eye and center coincide")
	} else if f.Cross(c.Up) == (math.Vector3{}) {
		warn = append(warn, "up is parallel to the view direction")
	}
	if c.Axis == (math.Vector3{}) {
		warn = append(warn, "rotation axis is zero")
	}
	return warn
}
