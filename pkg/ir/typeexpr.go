// Copyright (C) 2026 Fathom Labs (engineering@fathomlabs.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package ir

import (
	"strings"

	"github.com/fathomlabs/jsfront/pkg/source"
)

// TypeKind tags a declared-type expression node.
type TypeKind int

const (
	// TypeName is a (possibly dotted) type name such as "number" or
	// "goog.Uri".
	TypeName TypeKind = iota

	// TypeUnion is an alternation, e.g. (string|number).
	TypeUnion

	// TypeNullable is a '?'-prefixed type.
	TypeNullable

	// TypeNonNullable is a '!'-prefixed type.
	TypeNonNullable

	// TypeOptional is an '='-suffixed parameter type.
	TypeOptional

	// TypeVariadic is a '...'-prefixed variadic parameter type.
	TypeVariadic

	// TypeApplication is a parameterized type, e.g. Array<string>.
	TypeApplication

	// TypeRecord is a record type, e.g. {name: string}.
	TypeRecord

	// TypeFunction is a function type, e.g. function(string): number.
	TypeFunction

	// TypeAll is the '*' all type.
	TypeAll

	// TypeUnknown is the '?' unknown type written with no operand.
	TypeUnknown
)

// TypeExpr is a declared-type expression, from either the JSDoc type
// grammar or the inline type grammar. The two sources produce the same
// shape; Node.DeclaredType never mixes both for one slot.
type TypeExpr struct {
	Kind     TypeKind
	Name     string
	Children []*TypeExpr
	Pos      source.Span
}

// NewTypeName creates a named type expression.
func NewTypeName(name string) *TypeExpr {
	return &TypeExpr{Kind: TypeName, Name: name}
}

// String renders the type expression in JSDoc-like syntax. Intended for
// diagnostics and tests, not for code printing.
func (t *TypeExpr) String() string {
	if t == nil {
		return ""
	}
	switch t.Kind {
	case TypeName:
		return t.Name
	case TypeUnion:
		parts := make([]string, len(t.Children))
		for i, c := range t.Children {
			parts[i] = c.String()
		}
		return "(" + strings.Join(parts, "|") + ")"
	case TypeNullable:
		return "?" + t.child()
	case TypeNonNullable:
		return "!" + t.child()
	case TypeOptional:
		return t.child() + "="
	case TypeVariadic:
		return "..." + t.child()
	case TypeApplication:
		args := make([]string, len(t.Children))
		for i, c := range t.Children {
			args[i] = c.String()
		}
		return t.Name + "<" + strings.Join(args, ",") + ">"
	case TypeRecord:
		fields := make([]string, len(t.Children))
		for i, c := range t.Children {
			fields[i] = c.Name + ": " + c.child()
		}
		return "{" + strings.Join(fields, ", ") + "}"
	case TypeFunction:
		args := make([]string, 0, len(t.Children))
		ret := ""
		for _, c := range t.Children {
			if c.Name == "return" {
				ret = ": " + c.child()
				continue
			}
			args = append(args, c.String())
		}
		return "function(" + strings.Join(args, ",") + ")" + ret
	case TypeAll:
		return "*"
	case TypeUnknown:
		return "?"
	}
	return ""
}

func (t *TypeExpr) child() string {
	if len(t.Children) == 0 {
		return ""
	}
	return t.Children[0].String()
}
