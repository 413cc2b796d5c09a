// Copyright (C) 2026 Fathom Labs (engineering@fathomlabs.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package jsdoc

import (
	"github.com/fathomlabs/jsfront/pkg/ir"
	"github.com/fathomlabs/jsfront/pkg/source"
)

// Annotations whose braced argument is a type expression worth recording
// on the node. Only the first type-carrying tag wins; later ones are
// free text as far as the front end is concerned.
var typeAnnotations = map[string]bool{
	"type":    true,
	"typedef": true,
	"enum":    true,
	"const":   true,
}

// Parse parses a full documentation comment: one Marker per @-tag, each
// with its own position, plus the declared type carried by a braced
// type-annotation tag if present.
func Parse(raw string, start source.Position) *ir.DocInfo {
	info := &ir.DocInfo{Raw: raw}
	p := &typeParser{stream: NewTokenStream(raw, start)}
	p.next()
	for p.tok.Kind != TokenEOC && p.tok.Kind != TokenEOF {
		if p.tok.Kind != TokenAnnotation {
			p.next()
			continue
		}
		name := p.tok.Text
		info.Markers = append(info.Markers, ir.Marker{
			Annotation: name,
			Line:       p.tok.Line,
			Col:        p.tok.Col,
		})
		p.next()
		if p.tok.Kind == TokenLeftCurly {
			t := p.parseBraced()
			if info.Type == nil && typeAnnotations[name] {
				info.Type = t
			}
		}
	}
	return info
}

// ParseInline parses an inline type comment such as the one in
// `var /** string */ x;`: the whole comment body is a single type
// expression with no tags.
func ParseInline(raw string, start source.Position) *ir.DocInfo {
	info := &ir.DocInfo{Raw: raw}
	p := &typeParser{stream: NewTokenStream(raw, start)}
	p.nextSkippingEOL()
	if p.tok.Kind == TokenEOC || p.tok.Kind == TokenEOF {
		return info
	}
	if p.tok.Kind == TokenAnnotation {
		// Not an inline type after all; fall back to the full parse.
		return Parse(raw, start)
	}
	info.Type = p.parseUnionList()
	return info
}

// typeParser is a one-token-lookahead recursive descent parser over the
// JSDoc type grammar. It is deliberately tolerant: malformed constructs
// degrade to name nodes rather than failing, since doc-comment
// ambiguities are not parse errors.
type typeParser struct {
	stream *TokenStream
	tok    Token
}

func (p *typeParser) next() {
	p.tok = p.stream.Next()
}

// nextSkippingEOL advances past line breaks; used inside type expressions
// where a newline is just whitespace.
func (p *typeParser) nextSkippingEOL() {
	p.next()
	for p.tok.Kind == TokenEOL {
		p.next()
	}
}

func (p *typeParser) atEnd() bool {
	return p.tok.Kind == TokenEOC || p.tok.Kind == TokenEOF
}

// startsType reports whether the current token can begin a type
// expression.
func (p *typeParser) startsType() bool {
	switch p.tok.Kind {
	case TokenString, TokenLeftCurly, TokenLeftParen, TokenBang,
		TokenQuestion, TokenStar, TokenEllipsis:
		return true
	}
	return false
}

// parseBraced parses `{ type }` with the cursor on the opening brace.
func (p *typeParser) parseBraced() *ir.TypeExpr {
	p.nextSkippingEOL()
	t := p.parseUnionList()
	if p.tok.Kind == TokenRightCurly {
		p.nextSkippingEOL()
	}
	return t
}

// parseUnionList parses pipe-separated alternatives; a single alternative
// is returned unwrapped.
func (p *typeParser) parseUnionList() *ir.TypeExpr {
	first := p.parseType()
	if p.tok.Kind != TokenPipe {
		return first
	}
	union := &ir.TypeExpr{Kind: ir.TypeUnion, Children: []*ir.TypeExpr{first}}
	for p.tok.Kind == TokenPipe {
		p.nextSkippingEOL()
		union.Children = append(union.Children, p.parseType())
	}
	return union
}

func (p *typeParser) parseType() *ir.TypeExpr {
	var t *ir.TypeExpr
	switch p.tok.Kind {
	case TokenEllipsis:
		p.nextSkippingEOL()
		if p.startsType() {
			t = &ir.TypeExpr{Kind: ir.TypeVariadic, Children: []*ir.TypeExpr{p.parseType()}}
		} else {
			t = &ir.TypeExpr{Kind: ir.TypeVariadic}
		}
		return t

	case TokenQuestion:
		p.nextSkippingEOL()
		if p.startsType() {
			return &ir.TypeExpr{Kind: ir.TypeNullable, Children: []*ir.TypeExpr{p.parseType()}}
		}
		return &ir.TypeExpr{Kind: ir.TypeUnknown}

	case TokenBang:
		p.nextSkippingEOL()
		return &ir.TypeExpr{Kind: ir.TypeNonNullable, Children: []*ir.TypeExpr{p.parseType()}}

	case TokenStar:
		p.nextSkippingEOL()
		t = &ir.TypeExpr{Kind: ir.TypeAll}

	case TokenLeftParen:
		p.nextSkippingEOL()
		t = p.parseUnionList()
		if p.tok.Kind == TokenRightParen {
			p.nextSkippingEOL()
		}

	case TokenLeftCurly:
		t = p.parseRecord()

	case TokenString:
		t = p.parseNamed()

	default:
		// Tolerate anything else as an unnamed type.
		t = ir.NewTypeName("")
		p.nextSkippingEOL()
	}

	if p.tok.Kind == TokenEquals {
		p.nextSkippingEOL()
		t = &ir.TypeExpr{Kind: ir.TypeOptional, Children: []*ir.TypeExpr{t}}
	}
	return t
}

// parseRecord parses `{ name: type, ... }` with the cursor on the opening
// brace. Each field is represented as a name node whose single child is
// the field type.
func (p *typeParser) parseRecord() *ir.TypeExpr {
	rec := &ir.TypeExpr{Kind: ir.TypeRecord}
	p.nextSkippingEOL()
	for !p.atEnd() && p.tok.Kind != TokenRightCurly {
		if p.tok.Kind != TokenString {
			p.nextSkippingEOL()
			continue
		}
		field := &ir.TypeExpr{Kind: ir.TypeName, Name: p.tok.Text}
		p.nextSkippingEOL()
		if p.tok.Kind == TokenColon {
			p.nextSkippingEOL()
			field.Children = []*ir.TypeExpr{p.parseUnionList()}
		}
		rec.Children = append(rec.Children, field)
		if p.tok.Kind == TokenComma {
			p.nextSkippingEOL()
		}
	}
	if p.tok.Kind == TokenRightCurly {
		p.nextSkippingEOL()
	}
	return rec
}

// parseNamed parses a (possibly dotted) type name, a function type, or a
// type application, with the cursor on the name atom.
func (p *typeParser) parseNamed() *ir.TypeExpr {
	name := p.tok.Text
	p.next()
	if name == "function" && p.tok.Kind == TokenLeftParen {
		return p.parseFunction()
	}
	if p.tok.Kind == TokenEOL {
		p.nextSkippingEOL()
	}
	if p.tok.Kind != TokenLeftAngle {
		return ir.NewTypeName(name)
	}
	app := &ir.TypeExpr{Kind: ir.TypeApplication, Name: name}
	p.nextSkippingEOL()
	for !p.atEnd() && p.tok.Kind != TokenRightAngle {
		app.Children = append(app.Children, p.parseUnionList())
		if p.tok.Kind == TokenComma {
			p.nextSkippingEOL()
		}
	}
	if p.tok.Kind == TokenRightAngle {
		p.nextSkippingEOL()
	}
	return app
}

// parseFunction parses `function(args): ret` with the cursor on the
// opening paren. The return type, when present, is stored as a child
// named "return".
func (p *typeParser) parseFunction() *ir.TypeExpr {
	fn := &ir.TypeExpr{Kind: ir.TypeFunction}
	p.nextSkippingEOL()
	for !p.atEnd() && p.tok.Kind != TokenRightParen {
		fn.Children = append(fn.Children, p.parseUnionList())
		if p.tok.Kind == TokenComma {
			p.nextSkippingEOL()
		}
	}
	if p.tok.Kind == TokenRightParen {
		p.nextSkippingEOL()
	}
	if p.tok.Kind == TokenColon {
		p.nextSkippingEOL()
		fn.Children = append(fn.Children, &ir.TypeExpr{
			Kind:     ir.TypeName,
			Name:     "return",
			Children: []*ir.TypeExpr{p.parseUnionList()},
		})
	}
	return fn
}
