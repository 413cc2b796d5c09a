// Copyright (C) 2026 Fathom Labs (engineering@fathomlabs.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package frontend

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/fathomlabs/jsfront/pkg/diag"
	"github.com/fathomlabs/jsfront/pkg/logging"
)

// LanguageMode selects the ECMAScript dialect accepted by a parse.
type LanguageMode int

const (
	// ES3 is the 1999 dialect.
	ES3 LanguageMode = iota

	// ES5 adds strict mode, getters/setters on all key forms, and
	// reserved-word property names.
	ES5

	// ES6 adds arrows, destructuring, rest/spread, let/const, templates.
	ES6

	// ES6Typed is ES6 plus inline type annotations; parses with the
	// typescript grammar.
	ES6Typed

	// ESNext accepts everything the grammar knows.
	ESNext
)

// String returns the mode's display name.
func (m LanguageMode) String() string {
	switch m {
	case ES3:
		return "es3"
	case ES5:
		return "es5"
	case ES6:
		return "es6"
	case ES6Typed:
		return "es6-typed"
	case ESNext:
		return "es-next"
	}
	return "unknown"
}

// Typed reports whether inline type annotations are part of the dialect.
func (m LanguageMode) Typed() bool {
	return m == ES6Typed || m == ESNext
}

// StrictPolicy controls the strict-mode context a parse starts in.
type StrictPolicy int

const (
	// Sloppy: strict mode only inside "use strict" scopes.
	Sloppy StrictPolicy = iota

	// Strict: the whole input is strict.
	Strict

	// ImplicitStrict: strict without requiring the directive (module-like
	// inputs).
	ImplicitStrict
)

// Config is the per-invocation language configuration. It is passed
// explicitly to Parse/Build and never read from ambient state, which keeps
// concurrent parses independent.
type Config struct {
	// Mode is the ECMAScript dialect.
	Mode LanguageMode `validate:"min=0,max=4"`

	// Strict is the strict-mode policy for the whole input.
	Strict StrictPolicy `validate:"min=0,max=2"`

	// Recovery selects keep-going or stop-on-first-error behavior. The
	// reporter passed to Parse/Build must be constructed with the same
	// mode.
	Recovery diag.Mode `validate:"min=0,max=1"`

	// RecordComments enables documentation-comment collection. When false
	// no doc info is attached anywhere.
	RecordComments bool

	// RecordDocs enables local (inline) documentation comments on
	// declarators and parameters, e.g. `var /** string */ x;`.
	RecordDocs bool

	// MaxFileSize is the largest source Parse will accept, in bytes.
	MaxFileSize int64 `validate:"gt=0"`

	// Logger receives debug logging around parse phases. Defaults to the
	// logging package's stderr logger.
	Logger *slog.Logger
}

// DefaultConfig returns the configuration used when callers have no
// opinion: ES6, sloppy, keep-going, comments recorded, 10MB limit.
func DefaultConfig() Config {
	return Config{
		Mode:           ES6,
		Strict:         Sloppy,
		Recovery:       diag.KeepGoing,
		RecordComments: true,
		RecordDocs:     true,
		MaxFileSize:    10 * 1024 * 1024,
	}
}

var configValidator = validator.New()

// Validate checks the configuration's field constraints.
func (c Config) Validate() error {
	if err := configValidator.Struct(c); err != nil {
		return fmt.Errorf("invalid frontend config: %w", err)
	}
	return nil
}

// defaultLogger is shared by all parses that do not supply their own.
var defaultLogger = sync.OnceValue(func() *slog.Logger {
	return logging.Default().Slog()
})

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return defaultLogger()
}
