// Copyright (C) 2026 Fathom Labs (engineering@fathomlabs.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package ir

// Marker is one @-tag occurrence inside a documentation comment, with its
// own position independent of the annotated node's position.
type Marker struct {
	// Annotation is the tag name without the leading '@'.
	Annotation string

	// Line is the 1-based line of the '@' character.
	Line int

	// Col is the 0-based column of the '@' character.
	Col int
}

// DocInfo holds the parsed form of one documentation comment. It attaches
// to the syntactic construct immediately following the comment.
type DocInfo struct {
	// Raw is the comment's full source text including delimiters, kept for
	// round-trip printing.
	Raw string

	// Markers lists every @-tag in source order.
	Markers []Marker

	// Type is the declared type carried by the comment, if any: either an
	// explicit @type tag or a bare inline type comment like /** string */.
	Type *TypeExpr
}

// HasType reports whether the comment declared a type.
func (d *DocInfo) HasType() bool {
	return d != nil && d.Type != nil
}

// Marker returns the first marker with the given annotation name, or nil.
func (d *DocInfo) Marker(annotation string) *Marker {
	if d == nil {
		return nil
	}
	for i := range d.Markers {
		if d.Markers[i].Annotation == annotation {
			return &d.Markers[i]
		}
	}
	return nil
}
