// FarmQuest - Gamified Farming Habits
// Copyright (C) 2026 Cloud Exit B.V.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package ui

import (
	"fmt"
	"io"
	"os"
)

// Verbose controls whether debug messages are printed.
var Verbose bool

// Output streams, replaced in tests.
var (
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

func emit(w io.Writer, color, tag, msg string) {
	fmt.Fprintf(w, "%s[%s]%s %s\n", color, tag, NC, msg)
}

// Info prints an informational message to stdout.
func Info(msg string) { emit(Stdout, Cyan, "INFO", msg) }

// Infof prints a formatted informational message to stdout.
func Infof(format string, a ...any) { Info(fmt.Sprintf(format, a...)) }

// Success prints a success message to stdout.
func Success(msg string) { emit(Stdout, Green, "OK", msg) }

// Successf prints a formatted success message to stdout.
func Successf(format string, a ...any) { Success(fmt.Sprintf(format, a...)) }

// Warn prints a warning message to stderr.
func Warn(msg string) { emit(Stderr, Yellow, "WARN", msg) }

// Warnf prints a formatted warning message to stderr.
func Warnf(format string, a ...any) { Warn(fmt.Sprintf(format, a...)) }

// Errorf prints a formatted error message to stderr. Commands return the
// error to cobra afterwards, which sets the exit code.
func Errorf(format string, a ...any) {
	emit(Stderr, Red, "ERROR", fmt.Sprintf(format, a...))
}

// Debug prints a debug message to stderr (only when Verbose is true).
func Debug(msg string) {
	if Verbose {
		emit(Stderr, Dim, "DEBUG", msg)
	}
}

// Debugf prints a formatted debug message to stderr.
func Debugf(format string, a ...any) { Debug(fmt.Sprintf(format, a...)) }

// Field prints an aligned "label: value" line to stdout, as used by the
// info and assets commands.
func Field(label, value string) {
	fmt.Fprintf(Stdout, "  %s%-14s%s %s\n", Bold, label+":", NC, value)
}
