// Copyright (C) 2026 Fathom Labs (engineering@fathomlabs.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package frontend

import "errors"

// Sentinel errors for contract-level failures. Malformed *input* never
// produces these: syntax and validation problems become diagnostics on the
// reporter while Build returns a best-effort tree.
var (
	// ErrInvalidContent indicates the source content is not valid UTF-8 or
	// is nil.
	ErrInvalidContent = errors.New("invalid content")

	// ErrFileTooLarge indicates the source exceeds Config.MaxFileSize.
	ErrFileTooLarge = errors.New("file too large")

	// ErrParseFailed indicates the concrete-syntax parser failed
	// completely and no tree is available.
	ErrParseFailed = errors.New("parse failed")

	// ErrNilTree indicates Build was called without a concrete tree.
	ErrNilTree = errors.New("nil concrete tree")
)
