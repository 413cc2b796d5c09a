// Copyright (C) 2026 Fathom Labs (engineering@fathomlabs.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package source models source-file identity and position arithmetic.
//
// Every node the front end produces carries a Span pointing back into the
// original text. Spans are computed from byte offsets reported by the
// concrete-syntax parser; this package owns the offset-to-line/column
// conversion so that no other component re-scans source text.
package source

import (
	"fmt"
	"sort"
)

// File identifies one source file and its content.
//
// The line-offset table is built lazily on first position lookup and is
// immutable afterward, so a File is safe for concurrent readers once any
// position has been resolved (the front end resolves one during Build
// before the tree is shared).
type File struct {
	// Path is the file's identity for diagnostics and code generation,
	// relative to the project root by convention.
	Path string

	// Content is the raw source text.
	Content []byte

	lineOffsets []int
}

// NewFile creates a File for the given path and content.
func NewFile(path string, content []byte) *File {
	return &File{Path: path, Content: content}
}

// Position is a point in a file: 1-based line, 0-based column.
type Position struct {
	Line int
	Col  int
}

// String returns "line:col" for diagnostics.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Span is the extent of one node: its start point plus the character
// length of its concrete syntax.
type Span struct {
	Line   int
	Col    int
	Length int
}

// Start returns the span's start point.
func (s Span) Start() Position {
	return Position{Line: s.Line, Col: s.Col}
}

// buildLineOffsets records the byte offset of the start of every line.
func (f *File) buildLineOffsets() {
	if f.lineOffsets != nil {
		return
	}
	offsets := []int{0}
	for i, b := range f.Content {
		if b == '\n' {
			offsets = append(offsets, i+1)
		}
	}
	f.lineOffsets = offsets
}

// Position converts an absolute byte offset into a line/column pair.
// Offsets past the end of content resolve to the final line.
func (f *File) Position(offset int) Position {
	f.buildLineOffsets()
	if offset < 0 {
		offset = 0
	}
	// First line whose start is beyond offset; the line containing the
	// offset is the one before it.
	i := sort.SearchInts(f.lineOffsets, offset+1) - 1
	return Position{Line: i + 1, Col: offset - f.lineOffsets[i]}
}

// Span converts a [start, end) byte range into a Span anchored at start.
func (f *File) Span(start, end int) Span {
	if end < start {
		end = start
	}
	pos := f.Position(start)
	return Span{Line: pos.Line, Col: pos.Col, Length: end - start}
}

// PointSpan returns a zero-length span at the given offset. Used for
// synthesized placeholders that have no concrete syntax of their own.
func (f *File) PointSpan(offset int) Span {
	return f.Span(offset, offset)
}
