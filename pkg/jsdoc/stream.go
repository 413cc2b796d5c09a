// Copyright (C) 2026 Fathom Labs (engineering@fathomlabs.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package jsdoc lexes and parses documentation comments: the flat token
// stream over the embedded type-expression grammar, the @-tag markers, and
// the declared-type expressions they carry.
package jsdoc

import (
	"strings"

	"github.com/fathomlabs/jsfront/pkg/source"
)

// TokenStream is a single-pass cursor over one documentation comment. It
// holds no state beyond the cursor: the stream is not restartable, and a
// new stream must be constructed to re-scan a comment.
type TokenStream struct {
	text string
	pos  int
	line int // 1-based
	col  int // 0-based

	// lineStart is true when only whitespace and continuation stars have
	// been consumed since the last newline.
	lineStart bool

	done bool
}

// NewTokenStream creates a stream over the full comment text (including
// the opening delimiter) starting at the given file position.
func NewTokenStream(text string, start source.Position) *TokenStream {
	s := &TokenStream{text: text, line: start.Line, col: start.Col}
	if strings.HasPrefix(s.text[s.pos:], "/*") {
		s.advance(2)
		// The doc marker stars, but not the star of a closing */.
		for s.pos < len(s.text) && s.text[s.pos] == '*' &&
			s.pos+1 < len(s.text) && s.text[s.pos+1] != '/' {
			s.advance(1)
		}
	}
	return s
}

func (s *TokenStream) advance(n int) {
	for i := 0; i < n && s.pos < len(s.text); i++ {
		if s.text[s.pos] == '\n' {
			s.line++
			s.col = 0
		} else {
			s.col++
		}
		s.pos++
	}
}

func (s *TokenStream) peek(offset int) byte {
	if s.pos+offset >= len(s.text) {
		return 0
	}
	return s.text[s.pos+offset]
}

// isStructural reports whether b is one of the type-grammar structural
// punctuation characters.
func isStructural(b byte) bool {
	switch b {
	case '{', '}', '<', '>', '(', ')', '[', ']', '|', '!', '?', '=', ':', ',', '*':
		return true
	}
	return false
}

func isAnnotationChar(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' ||
		b >= '0' && b <= '9' || b == '_' || b == '-'
}

// atomBoundary reports whether b terminates a string atom. Dots are
// handled separately because of the ellipsis rules.
func atomBoundary(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n' || b == '@' ||
		isStructural(b)
}

// dotRun returns the number of consecutive dots at the given offset.
func (s *TokenStream) dotRun(offset int) int {
	n := 0
	for s.peek(offset+n) == '.' {
		n++
	}
	return n
}

// Next reads the next token. After TokenEOC or TokenEOF have been
// returned, every subsequent call returns TokenEOF.
func (s *TokenStream) Next() Token {
	if s.done {
		return Token{Kind: TokenEOF, Line: s.line, Col: s.col}
	}

	for {
		// Skip horizontal whitespace and, at the start of a line, the
		// continuation star(s).
		for s.pos < len(s.text) {
			b := s.text[s.pos]
			if b == ' ' || b == '\t' || b == '\r' {
				s.advance(1)
				continue
			}
			if s.lineStart && b == '*' && s.peek(1) != '/' {
				s.advance(1)
				continue
			}
			break
		}
		s.lineStart = false

		if s.pos >= len(s.text) {
			s.done = true
			return Token{Kind: TokenEOF, Line: s.line, Col: s.col}
		}

		b := s.text[s.pos]
		line, col := s.line, s.col

		switch {
		case b == '\n':
			s.advance(1)
			s.lineStart = true
			return Token{Kind: TokenEOL, Line: line, Col: col}

		case b == '*' && s.peek(1) == '/':
			s.advance(2)
			s.done = true
			return Token{Kind: TokenEOC, Line: line, Col: col}

		case b == '@':
			s.advance(1)
			start := s.pos
			for s.pos < len(s.text) && isAnnotationChar(s.text[s.pos]) {
				s.advance(1)
			}
			return Token{Kind: TokenAnnotation, Text: s.text[start:s.pos], Line: line, Col: col}

		case b == '.':
			// An exactly-three-dot prefix of a run is an ellipsis; leftover
			// dots fold into the adjacent string atom.
			if s.dotRun(0) >= 3 {
				s.advance(3)
				return Token{Kind: TokenEllipsis, Line: line, Col: col}
			}
			return s.readAtom()

		case isStructural(b):
			s.advance(1)
			return Token{Kind: structuralKind(b), Line: line, Col: col}

		default:
			return s.readAtom()
		}
	}
}

func structuralKind(b byte) TokenKind {
	switch b {
	case '{':
		return TokenLeftCurly
	case '}':
		return TokenRightCurly
	case '<':
		return TokenLeftAngle
	case '>':
		return TokenRightAngle
	case '(':
		return TokenLeftParen
	case ')':
		return TokenRightParen
	case '[':
		return TokenLeftBracket
	case ']':
		return TokenRightBracket
	case '|':
		return TokenPipe
	case '!':
		return TokenBang
	case '?':
		return TokenQuestion
	case '=':
		return TokenEquals
	case ':':
		return TokenColon
	case ',':
		return TokenComma
	case '*':
		return TokenStar
	}
	return TokenString
}

// readAtom scans a maximal string atom. Interior dots belong to the atom
// ("foo.Bar") unless they form a three-dot run that is immediately
// followed by a structural character or comma, in which case the run is
// left for the next token as an ellipsis. A trailing dot run in any other
// context is absorbed into the atom: that approximation is part of the
// grammar, not a defect.
func (s *TokenStream) readAtom() Token {
	line, col := s.line, s.col
	start := s.pos
	for s.pos < len(s.text) {
		b := s.text[s.pos]
		if b == '*' && s.peek(1) == '/' {
			break
		}
		if b == '.' {
			run := s.dotRun(0)
			after := s.peek(run)
			// A closing */ is the end of the comment, not a structural
			// context, so a dot run before it is absorbed.
			closing := after == '*' && s.peek(run+1) == '/'
			if run >= 3 && isStructural(after) && !closing {
				// Fold leftover dots in, keep exactly three for the
				// ellipsis token.
				s.advance(run - 3)
				break
			}
			s.advance(run)
			continue
		}
		if atomBoundary(b) {
			break
		}
		s.advance(1)
	}
	return Token{Kind: TokenString, Text: s.text[start:s.pos], Line: line, Col: col}
}
