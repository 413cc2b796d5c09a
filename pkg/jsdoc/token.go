// Copyright (C) 2026 Fathom Labs (engineering@fathomlabs.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package jsdoc

// TokenKind is the closed set of token kinds produced by the doc-comment
// token stream.
type TokenKind int

const (
	// TokenAnnotation is an @-tag; the token text is the tag name without
	// the leading '@'.
	TokenAnnotation TokenKind = iota
	TokenLeftCurly
	TokenRightCurly
	TokenLeftAngle
	TokenRightAngle
	TokenLeftParen
	TokenRightParen
	TokenLeftBracket
	TokenRightBracket
	TokenPipe
	TokenBang
	TokenQuestion
	TokenEquals
	TokenColon
	TokenComma
	TokenEllipsis
	TokenStar

	// TokenString is a maximal run of characters not otherwise significant
	// to the type grammar; the token text is the run itself.
	TokenString

	// TokenEOL marks the end of a comment line. Distinct from TokenEOC so
	// callers can tell a normally terminated argument list from a comment
	// that ended abruptly.
	TokenEOL

	// TokenEOC marks the closing */ of the comment.
	TokenEOC

	// TokenEOF marks the end of input reached without a closing */.
	TokenEOF
)

var tokenKindNames = [...]string{
	TokenAnnotation:   "annotation",
	TokenLeftCurly:    "{",
	TokenRightCurly:   "}",
	TokenLeftAngle:    "<",
	TokenRightAngle:   ">",
	TokenLeftParen:    "(",
	TokenRightParen:   ")",
	TokenLeftBracket:  "[",
	TokenRightBracket: "]",
	TokenPipe:         "|",
	TokenBang:         "!",
	TokenQuestion:     "?",
	TokenEquals:       "=",
	TokenColon:        ":",
	TokenComma:        ",",
	TokenEllipsis:     "...",
	TokenStar:         "*",
	TokenString:       "string",
	TokenEOL:          "eol",
	TokenEOC:          "eoc",
	TokenEOF:          "eof",
}

// String returns the token kind's display name.
func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return "unknown"
}

// Token is one token from the doc-comment stream. Line is 1-based and Col
// is 0-based, both in file coordinates.
type Token struct {
	Kind TokenKind
	Text string
	Line int
	Col  int
}
