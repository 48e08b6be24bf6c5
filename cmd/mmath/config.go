// cmd/mmath/config.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"strconv"
	"strings"

	"github.com/mmath-go/mmath/pkg/math"
	"github.com/mmath-go/mmath/pkg/rand"
	"github.com/mmath-go/mmath/pkg/util"
)

// Config holds everything needed to build a frame's transforms.
type Config struct {
	Eye, Center, Up math.Vector3

	FOV, Aspect, Near, Far float32

	Angle     float32
	Axis      math.Vector3
	Scale     float32
	Translate math.Vector3
}

// parseVector3 parses "x,y,z". Problems are reported to e and the zero
// vector is returned.
func parseVector3(s string, e *util.ErrorLogger) math.Vector3 {
	fields := strings.Split(s, ",")
	if len(fields) != 3 {
		e.ErrorString("%q: expected 3 comma-separated components", s)
		return math.Vector3{}
	}

	var v [3]float32
	for i, f := range fields {
		e.Push([]string{"x", "y", "z"}[i])
		if c, err := strconv.ParseFloat(strings.TrimSpace(f), 32); err != nil {
			e.Error(err)
		} else {
			v[i] = float32(c)
		}
		e.Pop()
	}
	return math.Vector3FromArray(v)
}

// randomizeModel replaces the model rotation with one derived from seed
// using the stateless hash, so a given seed always gives the same frame.
func (c *Config) randomizeModel(seed uint32) {
	c.Angle = 180 * rand.SignedFloat32(seed)
	c.Axis = math.Vec3(rand.SignedFloat32(seed+1), rand.SignedFloat32(seed+2),
		rand.SignedFloat32(seed+3))
	c.Scale = 0.5 + rand.Float32(seed+4)
}
