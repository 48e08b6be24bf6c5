// pkg/util/error_test.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestErrorLogger(t *testing.T) {
	var e ErrorLogger
	if e.HaveErrors() || e.Err() != nil {
		t.Fatalf("fresh ErrorLogger reports errors")
	}

	e.Push("-eye")
	e.Push("y")
	e.ErrorString("%q: not a number", "abc")
	e.Pop()
	if d := e.CurrentDepth(); d != 1 {
		t.Errorf("depth after Pop: got %d, expected 1", d)
	}
	e.Error(errors.New("expected 3 components"))
	e.Pop()
	e.ErrorString("no context")

	expected := []string{
		`-eye / y: "abc": not a number`,
		"-eye: expected 3 components",
		"no context",
	}
	if s := e.String(); s != strings.Join(expected, "\n") {
		t.Errorf("got %q", s)
	}

	var buf bytes.Buffer
	e.PrintErrors(&buf, nil)
	if buf.String() != strings.Join(expected, "\n")+"\n" {
		t.Errorf("PrintErrors: got %q", buf.String())
	}

	if err := e.Err(); err == nil || !strings.Contains(err.Error(), "expected 3 components") {
		t.Errorf("Err: got %v", err)
	}
}
