// Copyright (C) 2026 Fathom Labs (engineering@fathomlabs.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package ir defines the canonical, position-annotated AST produced by the
// front end and consumed read-only by later compiler phases.
//
// A Node owns its children exclusively: the tree is a tree, not a graph,
// and there are no parent back-pointers. Construction is two-phase inside
// the builder — structural children first, then position, then optional
// doc/type metadata — and the tree is immutable once Build returns.
package ir

import (
	"github.com/fathomlabs/jsfront/pkg/source"
)

// Flags carries node-kind-specific boolean attributes.
type Flags uint8

const (
	// FlagQuoted marks a string key whose source was a quoted literal,
	// distinguishing {1: x} from {'1': x}.
	FlagQuoted Flags = 1 << iota

	// FlagParenthesized marks an expression that was wrapped in parentheses
	// in source. The parentheses themselves are not represented as a node.
	FlagParenthesized

	// FlagPostfix marks an increment/decrement that was written postfix.
	FlagPostfix

	// FlagFreeFlowing marks a doc comment parsed as free-flowing JSDoc
	// rather than a structured annotation block.
	FlagFreeFlowing
)

// Node is the canonical AST unit.
type Node struct {
	Kind     Kind
	Children []*Node

	// Pos is the node's exact extent in source: 1-based line, 0-based
	// column, character length. Synthesized nodes (array-hole placeholders,
	// absent try parts, folded negative literals) carry spans computed by
	// the builder rather than inherited from the concrete tree.
	Pos source.Span

	// File identifies the originating source for diagnostics and codegen.
	File *source.File

	// Name holds the identifier text for name, string-key, label-name and
	// property nodes.
	Name string

	// Num holds the value of a numeric literal (after any unary-minus
	// folding).
	Num float64

	// Str holds the raw text of string and regexp literals. For regexps
	// this is the full literal including delimiters and flags.
	Str string

	Flags Flags

	// DeclaredType is the optional type annotation from either the JSDoc
	// grammar or the inline type grammar — never both.
	DeclaredType *TypeExpr

	// Doc is the optional documentation comment attached to this node.
	Doc *DocInfo

	// Directives is the set of directive-prologue strings ("use strict",
	// ...) for script and function nodes. nil means no directive prologue
	// was present, which is distinct from an empty set.
	Directives map[string]bool
}

// New creates a node of the given kind with the given children.
func New(kind Kind, children ...*Node) *Node {
	return &Node{Kind: kind, Children: children}
}

// Append adds children to the node and returns it.
func (n *Node) Append(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// Child returns the i-th child, or nil if out of range.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}

// FirstChild returns the first child, or nil.
func (n *Node) FirstChild() *Node {
	return n.Child(0)
}

// LastChild returns the last child, or nil.
func (n *Node) LastChild() *Node {
	return n.Child(len(n.Children) - 1)
}

// HasDirectives reports whether the node carries a directive prologue at
// all. Callers test this separately from membership of a specific
// directive.
func (n *Node) HasDirectives() bool {
	return n.Directives != nil
}

// HasDirective reports whether the given directive string was present.
func (n *Node) HasDirective(directive string) bool {
	return n.Directives[directive]
}

// IsName reports whether the node is a simple name.
func (n *Node) IsName() bool { return n.Kind == KindName }

// IsGetProp reports whether the node is a dotted property access.
func (n *Node) IsGetProp() bool { return n.Kind == KindGetProp }

// IsGetElem reports whether the node is a bracketed property access.
func (n *Node) IsGetElem() bool { return n.Kind == KindGetElem }

// IsCall reports whether the node is a call expression.
func (n *Node) IsCall() bool { return n.Kind == KindCall }

// IsNumber reports whether the node is a numeric literal.
func (n *Node) IsNumber() bool { return n.Kind == KindNumber }

// IsParenthesized reports whether the expression was parenthesized in
// source.
func (n *Node) IsParenthesized() bool { return n.Flags&FlagParenthesized != 0 }

// Walk visits the node and every descendant in depth-first source order.
// Returning false from visit prunes the subtree.
func (n *Node) Walk(visit func(*Node) bool) {
	if n == nil || !visit(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(visit)
	}
}
