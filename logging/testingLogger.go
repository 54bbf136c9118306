// Copyright (C) 2019-2025 Algorand, Inc.
// This file is part of go-algorand
//
// go-algorand is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// go-algorand is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with go-algorand.  If not, see <https://www.gnu.org/licenses/>.

package logging

import (
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

// RegisterExitHandler registers a function to run when a Fatal log is emitted,
// before the process exits.
func RegisterExitHandler(handler func()) {
	logrus.RegisterExitHandler(handler)
}

// TestingLogWithoutFatalExit returns a logger writing to the test log that
// runs the exit handlers on Fatal but does not exit.
func TestingLogWithoutFatalExit(t testing.TB) Logger {
	l := NewLogger().(logger)
	l.entry.Logger.ExitFunc = func(int) {}
	l.SetOutput(testWriter{t})
	l.SetLevel(Debug)
	return l
}

type testWriter struct {
	t testing.TB
}

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}
