// Copyright (C) 2026 Fathom Labs (engineering@fathomlabs.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package diag collects parse diagnostics.
//
// A Reporter is created per parse invocation and passed explicitly to every
// component that may fail; nothing in the front end reads diagnostics state
// from globals, so independent parses can run concurrently as long as each
// uses its own Reporter.
package diag

import (
	"errors"
	"fmt"

	"github.com/fathomlabs/jsfront/pkg/source"
)

// Severity classifies a diagnostic.
type Severity int

const (
	Error Severity = iota
	Warning
)

// String returns the lowercase severity name.
func (s Severity) String() string {
	if s == Warning {
		return "warning"
	}
	return "error"
}

// Mode selects the recovery policy for a parse.
type Mode int

const (
	// KeepGoing accumulates diagnostics and lets the parse continue.
	KeepGoing Mode = iota

	// StopOnFirstError aborts the enclosing parse immediately after the
	// first error-severity diagnostic is recorded.
	StopOnFirstError
)

// Diagnostic is one recorded problem.
type Diagnostic struct {
	Severity Severity
	Message  string
	Path     string
	Pos      source.Position
}

// String formats the diagnostic as "path:line:col: severity: message".
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s:%s: %s: %s", d.Path, d.Pos, d.Severity, d.Message)
}

// ErrStopped is returned by the front end when a StopOnFirstError reporter
// aborted the parse.
var ErrStopped = errors.New("parse stopped on first error")

// StopSignal is the value a StopOnFirstError reporter unwinds with. It is
// recovered inside the front end's Build and never escapes to callers.
type StopSignal struct {
	Diagnostic Diagnostic
}

// Reporter records diagnostics for one parse. Append-only; not safe for
// concurrent use (each parse owns its Reporter).
type Reporter struct {
	mode  Mode
	diags []Diagnostic
}

// NewReporter creates a Reporter with the given recovery mode.
func NewReporter(mode Mode) *Reporter {
	return &Reporter{mode: mode}
}

// Mode returns the reporter's recovery mode.
func (r *Reporter) Mode() Mode {
	return r.mode
}

// Error records an error diagnostic. In StopOnFirstError mode it unwinds
// with a StopSignal after recording.
func (r *Reporter) Error(message, path string, pos source.Position) {
	d := Diagnostic{Severity: Error, Message: message, Path: path, Pos: pos}
	r.diags = append(r.diags, d)
	if r.mode == StopOnFirstError {
		panic(StopSignal{Diagnostic: d})
	}
}

// Warning records a warning diagnostic. Warnings never stop a parse.
func (r *Reporter) Warning(message, path string, pos source.Position) {
	r.diags = append(r.diags, Diagnostic{Severity: Warning, Message: message, Path: path, Pos: pos})
}

// Count returns the total number of recorded diagnostics.
func (r *Reporter) Count() int {
	return len(r.diags)
}

// ErrorCount returns the number of error-severity diagnostics.
func (r *Reporter) ErrorCount() int {
	n := 0
	for _, d := range r.diags {
		if d.Severity == Error {
			n++
		}
	}
	return n
}

// Diagnostics returns the recorded diagnostics in order.
func (r *Reporter) Diagnostics() []Diagnostic {
	return r.diags
}

// HasAll reports whether every message in the expected set was recorded at
// least once. Used by verification harnesses, not by the builder itself.
func (r *Reporter) HasAll(messages ...string) bool {
	for _, want := range messages {
		found := false
		for _, d := range r.diags {
			if d.Message == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
