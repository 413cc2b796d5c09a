// Copyright (C) 2026 Fathom Labs (engineering@fathomlabs.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package frontend

import (
	"sort"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/fathomlabs/jsfront/pkg/source"
)

// docComment is one documentation comment found in the concrete tree.
type docComment struct {
	start int
	end   int
	pos   source.Position
	text  string
	taken bool
}

// docMap indexes documentation comments by position so the builder can
// attach each one to the construct immediately following it. Attachment is
// at most once per comment.
type docMap struct {
	file     *source.File
	comments []*docComment
}

// collectDocComments walks the whole concrete tree once and records every
// comment that opens with the doc marker.
func collectDocComments(root *sitter.Node, file *source.File) *docMap {
	m := &docMap{file: file}
	var walk func(n *sitter.Node)
	walk = func(n *sitter.Node) {
		if n.Type() == cstComment {
			text := n.Content(file.Content)
			if strings.HasPrefix(text, "/**") && len(text) > 4 {
				start := int(n.StartByte())
				m.comments = append(m.comments, &docComment{
					start: start,
					end:   int(n.EndByte()),
					pos:   file.Position(start),
					text:  text,
				})
			}
			return
		}
		for i := 0; i < int(n.ChildCount()); i++ {
			walk(n.Child(i))
		}
	}
	walk(root)
	sort.Slice(m.comments, func(i, j int) bool {
		return m.comments[i].start < m.comments[j].start
	})
	return m
}

// takeFor returns the doc comment immediately preceding the construct
// starting at the given offset, consuming it. Only whitespace may separate
// the comment from the construct.
func (m *docMap) takeFor(offset int) *docComment {
	if m == nil || len(m.comments) == 0 {
		return nil
	}
	// Last comment ending at or before the construct.
	i := sort.Search(len(m.comments), func(i int) bool {
		return m.comments[i].end > offset
	}) - 1
	if i < 0 {
		return nil
	}
	c := m.comments[i]
	if c.taken {
		return nil
	}
	between := m.file.Content[c.end:offset]
	if len(strings.TrimSpace(string(between))) != 0 {
		return nil
	}
	c.taken = true
	return c
}
