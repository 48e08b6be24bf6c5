// pkg/log/stack.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package log

import (
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

const modulePrefix = "github.com/mmath-go/mmath/"

// StackFrame is one entry of the callstack attribute attached to log
// records.
type StackFrame struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Function string `json:"function"`
}

// Callstack returns the frames of the code that called the Logger method,
// reusing fr's storage if it is large enough. Frames stop at main.main
// or at the test runner.
func Callstack(fr []StackFrame) []StackFrame {
	var pcs [16]uintptr
	n := runtime.Callers(3, pcs[:]) // skip Callers, Callstack, and the Logger method
	frames := runtime.CallersFrames(pcs[:n])

	fr = fr[:0]
	for {
		frame, more := frames.Next()
		if strings.HasPrefix(frame.Function, "testing.") {
			break
		}

		fn := strings.TrimPrefix(frame.Function, modulePrefix)
		fn = strings.TrimPrefix(fn, "main.")
		fr = append(fr, StackFrame{
			File:     filepath.Base(frame.File),
			Line:     frame.Line,
			Function: fn,
		})

		if !more || frame.Function == "main.main" {
			break
		}
	}
	return fr
}

func (f StackFrame) String() string {
	return f.File + ":" + strconv.Itoa(f.Line) + ":" + f.Function
}
