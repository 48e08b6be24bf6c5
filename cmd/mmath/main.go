// cmd/mmath/main.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// mmath builds the model, view, and projection matrices for a single
// frame from command-line parameters and prints them. It's a debugging
// aid for checking what a renderer should be uploading.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/goforj/godump"
	"github.com/mmath-go/mmath/pkg/log"
	"github.com/mmath-go/mmath/pkg/math"
	"github.com/mmath-go/mmath/pkg/util"
)

var (
	logLevel  = flag.String("loglevel", "info", "logging level: debug, info, warn, error")
	logDir    = flag.String("logdir", "", "log file directory")
	eye       = flag.String("eye", "0,0,5", "camera position, as x,y,z")
	center    = flag.String("center", "0,0,0", "point the camera looks at, as x,y,z")
	up        = flag.String("up", "0,1,0", "camera up direction, as x,y,z")
	fov       = flag.Float64("fov", 60, "vertical field of view in degrees")
	aspect    = flag.Float64("aspect", 16.0/9.0, "viewport aspect ratio (width/height)")
	near      = flag.Float64("near", 0.1, "near clip plane distance")
	far       = flag.Float64("far", 100, "far clip plane distance")
	angle     = flag.Float64("angle", 0, "model rotation in degrees")
	axis      = flag.String("axis", "0,1,0", "model rotation axis, as x,y,z")
	scale     = flag.Float64("scale", 1, "uniform model scale")
	translate = flag.String("translate", "0,0,0", "model translation, as x,y,z")
	random    = flag.Bool("random", false, "derive the model rotation and scale from -seed")
	seed      = flag.Uint("seed", 42, "seed used with -random")
	dump      = flag.Bool("dump", false, "dump the computed transforms to stderr")
)

func main() {
	flag.Parse()

	lg := log.New(*logLevel, *logDir)

	var e util.ErrorLogger
	c := configFromFlags(&e)
	if e.HaveErrors() {
		e.PrintErrors(os.Stderr, lg)
		os.Exit(1)
	}
	lg.Info("config", slog.Any("config", c))

	for _, w := range checkDegenerate(c) {
		lg.Warn(w)
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	t := BuildTransforms(c)
	lg.Debug("transforms", slog.Any("mvp", t.MVP.String()))

	if err := t.Fprint(os.Stdout); err != nil {
		lg.Errorf("%v", err)
		os.Exit(1)
	}
	if *dump {
		godump.Fdump(os.Stderr, c, t)
	}
}

func configFromFlags(e *util.ErrorLogger) Config {
	parse := func(name, value string) math.Vector3 {
		e.Push("-" + name)
		defer e.Pop()
		return parseVector3(value, e)
	}

	c := Config{
		FOV:    float32(*fov),
		Aspect: float32(*aspect),
		Near:   float32(*near),
		Far:    float32(*far),
		Angle:  float32(*angle),
		Scale:  float32(*scale),
	}
	c.Eye = parse("eye", *eye)
	c.Center = parse("center", *center)
	c.Up = parse("up", *up)
	c.Axis = parse("axis", *axis)
	c.Translate = parse("translate", *translate)

	if *random {
		c.randomizeModel(uint32(*seed))
	}
	return c
}
