// Copyright (C) 2026 Fathom Labs (engineering@fathomlabs.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package frontend

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/fathomlabs/jsfront/pkg/ir"
)

// transformPattern builds a binding or assignment target: a plain name, a
// destructuring pattern, or (in for-in/assignment position) a property
// access.
func (b *builder) transformPattern(n *sitter.Node) *ir.Node {
	if n == nil {
		return &ir.Node{Kind: ir.KindEmpty, File: b.file}
	}
	switch n.Type() {
	case cstIdentifier, cstShorthandPropertyPattern, cstShorthandProperty:
		node := b.newNode(ir.KindName, n)
		node.Name = b.text(n)
		return node

	case cstArrayPattern:
		return b.transformArrayPattern(n)

	case cstObjectPattern:
		return b.transformObjectPattern(n)

	case cstAssignmentPattern, cstObjectAssignmentPattern:
		left := b.transformPattern(n.ChildByFieldName(fieldLeft))
		right := b.transformExpression(n.ChildByFieldName(fieldRight))
		return b.newNode(ir.KindDefaultValue, n).Append(left, right)

	case cstRestPattern, cstRestParameter:
		node := b.newNode(ir.KindRest, n)
		if inner := n.NamedChild(0); inner != nil {
			node.Append(b.transformPattern(inner))
		}
		return node

	case cstError:
		return b.transformError(n)

	default:
		// for-in targets and destructuring assignments admit property
		// accesses and other expressions.
		return b.transformExpression(n)
	}
}

// transformArrayPattern mirrors the array-literal walk so that elisions
// inside patterns keep their placeholder positions.
func (b *builder) transformArrayPattern(n *sitter.Node) *ir.Node {
	pat := b.newNode(ir.KindArrayPattern, n)
	expecting := true
	for i := 0; i < int(n.ChildCount()); i++ {
		c := n.Child(i)
		switch c.Type() {
		case "[", "]", cstComment:
		case ",":
			if expecting {
				start := int(c.StartByte())
				pat.Append(b.emptyAt(b.file.Span(start, start+1)))
			}
			expecting = true
		case cstError:
			// An inline type annotation on a pattern element surfaces as
			// an error-recovery node containing a colon.
			if strings.Contains(b.text(c), ":") {
				b.errorAt(msgExpectedBracket, b.pos(c))
			} else {
				b.errorAt("Parse error.", b.pos(c))
			}
			expecting = false
		default:
			pat.Append(b.transformPattern(c))
			expecting = false
		}
	}
	return pat
}

func (b *builder) transformObjectPattern(n *sitter.Node) *ir.Node {
	pat := b.newNode(ir.KindObjectPattern, n)
	for i := 0; i < int(n.NamedChildCount()); i++ {
		c := n.NamedChild(i)
		switch c.Type() {
		case cstComment:

		case cstPairPattern:
			key := b.propertyKey(c.ChildByFieldName(fieldKey))
			key.Append(b.transformPattern(c.ChildByFieldName(fieldValue)))
			pat.Append(key)

		case cstShorthandPropertyPattern:
			name := b.newNode(ir.KindName, c)
			name.Name = b.text(c)
			pat.Append(name)

		case cstObjectAssignmentPattern:
			pat.Append(b.transformPattern(c))

		case cstRestPattern:
			pat.Append(b.transformPattern(c))

		case cstError:
			b.errorAt("Parse error.", b.pos(c))

		default:
			pat.Append(b.transformPattern(c))
		}
	}
	return pat
}

// transformParams builds the parameter list for a function. Each
// parameter may carry an inline doc comment, an inline type annotation,
// or a default value; an annotation and a typed doc comment together are
// rejected.
func (b *builder) transformParams(paramsN *sitter.Node) *ir.Node {
	params := b.newNode(ir.KindParamList, paramsN)
	for i := 0; i < int(paramsN.NamedChildCount()); i++ {
		c := paramsN.NamedChild(i)
		if c.Type() == cstComment {
			continue
		}
		params.Append(b.transformParameter(c))
	}
	return params
}

func (b *builder) transformParameter(p *sitter.Node) *ir.Node {
	pattern := p
	var typeN, valueN *sitter.Node

	switch p.Type() {
	case cstRequiredParameter, cstOptionalParameter:
		pattern = p.ChildByFieldName(fieldPattern)
		typeN = p.ChildByFieldName(fieldType)
		valueN = p.ChildByFieldName(fieldValue)
		if pattern == nil {
			pattern = p.NamedChild(0)
		}
	case cstAssignmentPattern:
		pattern = p.ChildByFieldName(fieldLeft)
		valueN = p.ChildByFieldName(fieldRight)
	}

	target := b.transformPattern(pattern)
	b.attachInlineDoc(target, pattern)

	if typeN != nil {
		switch pattern.Type() {
		case cstArrayPattern, cstObjectPattern:
			// Inline annotations do not combine with destructuring
			// parameters.
			b.errorAt(msgExpectedComma, b.pos(typeN))
		default:
			if target.Doc.HasType() {
				b.errorAt(msgBadTypeSyntax, b.pos(typeN))
			} else {
				target.DeclaredType = b.transformTypeAnnotation(typeN)
			}
		}
	}

	if valueN != nil {
		wrap := b.newNode(ir.KindDefaultValue, p)
		return wrap.Append(target, b.transformExpression(valueN))
	}
	return target
}

// CollectPatternNames invokes emit once for every name bound by the given
// binding construct, in source order. Computed-property key expressions
// and default-value initializers contribute no names; only the bound
// targets inside them do.
func CollectPatternNames(n *ir.Node, emit func(*ir.Node)) {
	if n == nil {
		return
	}
	switch n.Kind {
	case ir.KindName:
		emit(n)

	case ir.KindParamList, ir.KindArrayPattern, ir.KindObjectPattern,
		ir.KindVar, ir.KindLet, ir.KindConst:
		for _, c := range n.Children {
			CollectPatternNames(c, emit)
		}

	case ir.KindStringKey, ir.KindDefaultValue, ir.KindRest, ir.KindDestructuringDecl:
		CollectPatternNames(n.FirstChild(), emit)

	case ir.KindComputedProp:
		CollectPatternNames(n.Child(1), emit)
	}
}
