// Copyright (C) 2026 Fathom Labs (engineering@fathomlabs.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package frontend

import (
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/fathomlabs/jsfront/pkg/ir"
)

var binaryKinds = map[string]ir.Kind{
	"+":          ir.KindAdd,
	"-":          ir.KindSub,
	"*":          ir.KindMul,
	"/":          ir.KindDiv,
	"%":          ir.KindMod,
	"**":         ir.KindExponent,
	"&":          ir.KindBitAnd,
	"|":          ir.KindBitOr,
	"^":          ir.KindBitXor,
	"<<":         ir.KindLsh,
	">>":         ir.KindRsh,
	">>>":        ir.KindUrsh,
	"==":         ir.KindEq,
	"!=":         ir.KindNe,
	"===":        ir.KindShEq,
	"!==":        ir.KindShNe,
	"<":          ir.KindLt,
	"<=":         ir.KindLe,
	">":          ir.KindGt,
	">=":         ir.KindGe,
	"&&":         ir.KindAnd,
	"||":         ir.KindOr,
	"??":         ir.KindNullishCoalesce,
	"in":         ir.KindIn,
	"instanceof": ir.KindInstanceOf,
}

var assignKinds = map[string]ir.Kind{
	"=":    ir.KindAssign,
	"+=":   ir.KindAssignAdd,
	"-=":   ir.KindAssignSub,
	"*=":   ir.KindAssignMul,
	"/=":   ir.KindAssignDiv,
	"%=":   ir.KindAssignMod,
	"**=":  ir.KindAssignExponent,
	"&=":   ir.KindAssignBitAnd,
	"|=":   ir.KindAssignBitOr,
	"^=":   ir.KindAssignBitXor,
	"<<=":  ir.KindAssignLsh,
	">>=":  ir.KindAssignRsh,
	">>>=": ir.KindAssignUrsh,
}

var unaryKinds = map[string]ir.Kind{
	"-":      ir.KindNeg,
	"+":      ir.KindPos,
	"!":      ir.KindNot,
	"~":      ir.KindBitNot,
	"typeof": ir.KindTypeOf,
	"void":   ir.KindVoid,
	"delete": ir.KindDelProp,
}

func (b *builder) transformExpression(n *sitter.Node) *ir.Node {
	if n == nil {
		return &ir.Node{Kind: ir.KindEmpty, File: b.file}
	}
	switch n.Type() {
	case cstIdentifier, cstPropertyIdentifier, cstShorthandProperty, cstStatementIdentifier, cstUndefined:
		node := b.newNode(ir.KindName, n)
		node.Name = b.text(n)
		return node

	case cstNumber:
		return b.numberNode(n)

	case cstString:
		node := b.newNode(ir.KindString, n)
		node.Str = b.text(n)
		node.Name = cookString(node.Str)
		return node

	case cstRegex:
		node := b.newNode(ir.KindRegexp, n)
		node.Str = b.text(n)
		return node

	case cstTrue:
		return b.newNode(ir.KindTrue, n)
	case cstFalse:
		return b.newNode(ir.KindFalse, n)
	case cstNull:
		return b.newNode(ir.KindNull, n)
	case cstThis:
		return b.newNode(ir.KindThis, n)

	case cstTemplateString:
		return b.transformTemplate(n)

	case cstParenthesized:
		inner := n.NamedChild(0)
		if inner == nil {
			return b.newNode(ir.KindEmpty, n)
		}
		node := b.transformExpression(inner)
		node.Flags |= ir.FlagParenthesized
		return node

	case cstMemberExpression:
		obj := b.transformExpression(n.ChildByFieldName(fieldObject))
		propN := n.ChildByFieldName(fieldProperty)
		prop := b.newNode(ir.KindString, propN)
		prop.Name = b.text(propN)
		return b.newNode(ir.KindGetProp, n).Append(obj, prop)

	case cstSubscriptExpression:
		obj := b.transformExpression(n.ChildByFieldName(fieldObject))
		idx := b.transformExpression(n.ChildByFieldName(fieldIndex))
		return b.newNode(ir.KindGetElem, n).Append(obj, idx)

	case cstCallExpression:
		return b.transformCall(n, ir.KindCall)

	case cstNewExpression:
		return b.transformCall(n, ir.KindNew)

	case cstAssignmentExpression, cstAugmentedAssignment:
		return b.transformAssignment(n)

	case cstUnaryExpression:
		return b.transformUnary(n)

	case cstUpdateExpression:
		return b.transformUpdate(n)

	case cstBinaryExpression:
		op := b.text(n.ChildByFieldName(fieldOperator))
		leftN := n.ChildByFieldName(fieldLeft)
		rightN := n.ChildByFieldName(fieldRight)
		// A compound assignment the grammar rejects leaves its `=` behind
		// in a recovery child: `f() += 1` parses as (call) + ERROR("=") 1.
		if errN := errorChild(n); errN != nil && strings.Contains(b.text(errN), "=") {
			if kind, ok := assignKinds[op+"="]; ok {
				left := b.transformExpression(leftN)
				b.validateTarget(left, opCompound)
				node := b.newNode(kind, n).Append(left)
				if rightN != nil {
					node.Append(b.transformExpression(rightN))
				}
				return node
			}
		}
		kind, ok := binaryKinds[op]
		if !ok {
			b.warningAt(fmt.Sprintf("unsupported syntax: binary operator %q", op), b.pos(n))
			kind = ir.KindAdd
		}
		left := b.transformExpression(leftN)
		right := b.transformExpression(rightN)
		return b.newNode(kind, n).Append(left, right)

	case cstTernaryExpression:
		cond := b.transformExpression(n.ChildByFieldName(fieldCondition))
		then := b.transformExpression(n.ChildByFieldName(fieldConsequence))
		alt := b.transformExpression(n.ChildByFieldName(fieldAlternative))
		return b.newNode(ir.KindHook, n).Append(cond, then, alt)

	case cstSequenceExpression:
		return b.transformSequence(n)

	case cstArray:
		return b.transformArray(n)

	case cstObject:
		return b.transformObject(n)

	case cstSpreadElement:
		return b.newNode(ir.KindSpread, n).Append(b.transformExpression(n.NamedChild(0)))

	case cstFunctionExpression, cstFunctionExpressionLegacy, cstGeneratorFunction, cstArrowFunction:
		return b.transformFunction(n)

	case cstAsExpression:
		node := b.newNode(ir.KindCast, n)
		node.Append(b.transformExpression(n.NamedChild(0)))
		if t := n.NamedChild(1); t != nil {
			node.DeclaredType = b.transformType(t)
		}
		return node

	case cstArrayPattern, cstObjectPattern:
		// Destructuring assignment targets reach expression position in
		// `[a, b] = c`.
		return b.transformPattern(n)

	case cstError:
		return b.transformError(n)

	default:
		b.warningAt(fmt.Sprintf("unsupported syntax: %s", n.Type()), b.pos(n))
		return b.newNode(ir.KindEmpty, n)
	}
}

func (b *builder) numberNode(n *sitter.Node) *ir.Node {
	node := b.newNode(ir.KindNumber, n)
	node.Str = b.text(n)
	node.Num = parseNumber(node.Str)
	return node
}

func (b *builder) transformTemplate(n *sitter.Node) *ir.Node {
	node := b.newNode(ir.KindTemplateLit, n)
	node.Str = b.text(n)
	for i := 0; i < int(n.NamedChildCount()); i++ {
		c := n.NamedChild(i)
		if c.Type() == cstTemplateSubst {
			if e := c.NamedChild(0); e != nil {
				node.Append(b.transformExpression(e))
			}
		}
	}
	return node
}

func (b *builder) transformCall(n *sitter.Node, kind ir.Kind) *ir.Node {
	callee := n.ChildByFieldName(fieldFunction)
	if callee == nil {
		callee = n.ChildByFieldName(fieldConstructor)
	}
	node := b.newNode(kind, n).Append(b.transformExpression(callee))

	args := n.ChildByFieldName(fieldArguments)
	if args == nil {
		return node
	}
	if args.Type() == cstTemplateString {
		// Tagged template: the template literal is the sole argument.
		return node.Append(b.transformTemplate(args))
	}
	for i := 0; i < int(args.NamedChildCount()); i++ {
		c := args.NamedChild(i)
		if c.Type() == cstComment {
			continue
		}
		node.Append(b.transformExpression(c))
	}
	return node
}

func (b *builder) transformAssignment(n *sitter.Node) *ir.Node {
	kind := ir.KindAssign
	op := opAssign
	if n.Type() == cstAugmentedAssignment {
		opText := b.text(n.ChildByFieldName(fieldOperator))
		if k, ok := assignKinds[opText]; ok {
			kind = k
		}
		op = opCompound
	}

	leftN := n.ChildByFieldName(fieldLeft)
	var left *ir.Node
	if leftN.Type() == cstArrayPattern || leftN.Type() == cstObjectPattern {
		left = b.transformPattern(leftN)
	} else {
		left = b.transformExpression(leftN)
		b.validateTarget(left, op)
	}
	right := b.transformExpression(n.ChildByFieldName(fieldRight))
	return b.newNode(kind, n).Append(left, right)
}

// transformUnary handles prefix operators. A unary minus applied directly
// to a numeric literal folds into a single negative number node whose span
// covers the minus sign through the digits.
func (b *builder) transformUnary(n *sitter.Node) *ir.Node {
	opText := b.text(n.ChildByFieldName(fieldOperator))
	kind, ok := unaryKinds[opText]
	if !ok {
		b.warningAt(fmt.Sprintf("unsupported syntax: unary operator %q", opText), b.pos(n))
		return b.newNode(ir.KindEmpty, n)
	}

	operandN := n.ChildByFieldName(fieldArgument)
	if kind == ir.KindNeg && operandN != nil && operandN.Type() == cstNumber {
		node := b.newNode(ir.KindNumber, n)
		node.Str = b.text(n)
		node.Num = -parseNumber(b.text(operandN))
		return node
	}

	operand := b.transformExpression(operandN)
	if kind == ir.KindDelProp {
		b.validateDelete(operand)
	}
	return b.newNode(kind, n).Append(operand)
}

func (b *builder) transformUpdate(n *sitter.Node) *ir.Node {
	opN := n.ChildByFieldName(fieldOperator)
	argN := n.ChildByFieldName(fieldArgument)

	kind := ir.KindInc
	op := opIncrement
	if b.text(opN) == "--" {
		kind = ir.KindDec
		op = opDecrement
	}

	target := b.transformExpression(argN)
	b.validateTarget(target, op)

	node := b.newNode(kind, n).Append(target)
	if argN != nil && opN.StartByte() > argN.StartByte() {
		node.Flags |= ir.FlagPostfix
	}
	return node
}

// transformSequence folds a comma expression into a left-associative
// chain: (a, b, c) becomes comma(comma(a, b), c), with each comma node
// spanning its leftmost through rightmost operand.
func (b *builder) transformSequence(n *sitter.Node) *ir.Node {
	var operands []*sitter.Node
	flattenSequence(n, &operands)
	if len(operands) == 0 {
		return b.newNode(ir.KindEmpty, n)
	}
	node := b.transformExpression(operands[0])
	for _, next := range operands[1:] {
		right := b.transformExpression(next)
		comma := &ir.Node{
			Kind: ir.KindComma,
			File: b.file,
			Pos:  b.file.Span(int(operands[0].StartByte()), int(next.EndByte())),
		}
		node = comma.Append(node, right)
	}
	return node
}

func flattenSequence(n *sitter.Node, out *[]*sitter.Node) {
	appendOperand := func(c *sitter.Node) {
		if c.Type() == cstSequenceExpression {
			flattenSequence(c, out)
		} else {
			*out = append(*out, c)
		}
	}
	left := n.ChildByFieldName(fieldLeft)
	right := n.ChildByFieldName(fieldRight)
	if left != nil && right != nil {
		appendOperand(left)
		appendOperand(right)
		return
	}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		c := n.NamedChild(i)
		if c.Type() == cstComment {
			continue
		}
		appendOperand(c)
	}
}

// transformArray walks every child token so elisions can be recovered: at
// each comma seen while an element is still expected, a placeholder with a
// one-character span at the comma is emitted.
func (b *builder) transformArray(n *sitter.Node) *ir.Node {
	arr := b.newNode(ir.KindArrayLit, n)
	expecting := true
	for i := 0; i < int(n.ChildCount()); i++ {
		c := n.Child(i)
		switch c.Type() {
		case "[", "]", cstComment:
		case ",":
			if expecting {
				start := int(c.StartByte())
				arr.Append(b.emptyAt(b.file.Span(start, start+1)))
			}
			expecting = true
		default:
			arr.Append(b.transformExpression(c))
			expecting = false
		}
	}
	return arr
}

func (b *builder) transformObject(n *sitter.Node) *ir.Node {
	obj := b.newNode(ir.KindObjectLit, n)
	for i := 0; i < int(n.NamedChildCount()); i++ {
		c := n.NamedChild(i)
		if c.Type() == cstComment {
			continue
		}
		member := b.transformObjectMember(c)
		if member == nil {
			continue
		}
		b.attachDoc(member, c)
		obj.Append(member)
	}
	return obj
}

func (b *builder) transformObjectMember(c *sitter.Node) *ir.Node {
	switch c.Type() {
	case cstPair:
		key := b.propertyKey(c.ChildByFieldName(fieldKey))
		return key.Append(b.transformExpression(c.ChildByFieldName(fieldValue)))

	case cstShorthandProperty:
		node := b.newNode(ir.KindStringKey, c)
		node.Name = b.text(c)
		return node

	case cstMethodDefinition:
		return b.transformMethod(c)

	case cstSpreadElement:
		return b.newNode(ir.KindSpread, c).Append(b.transformExpression(c.NamedChild(0)))

	case cstError:
		b.errorAt("Parse error.", b.pos(c))
		return b.newNode(ir.KindEmpty, c)

	default:
		b.warningAt(fmt.Sprintf("unsupported syntax: %s", c.Type()), b.pos(c))
		return nil
	}
}

// propertyKey builds the member node for an object-literal key. Quoted
// string keys keep their cooked text and are marked quoted; numeric and
// identifier keys keep their source text unquoted.
func (b *builder) propertyKey(k *sitter.Node) *ir.Node {
	switch k.Type() {
	case cstString:
		node := b.newNode(ir.KindStringKey, k)
		node.Name = cookString(b.text(k))
		node.Flags |= ir.FlagQuoted
		return node
	case cstComputedProperty:
		node := b.newNode(ir.KindComputedProp, k)
		if e := k.NamedChild(0); e != nil {
			node.Append(b.transformExpression(e))
		}
		return node
	default:
		node := b.newNode(ir.KindStringKey, k)
		node.Name = b.text(k)
		return node
	}
}

// transformMethod handles object-literal methods and accessors. Getter and
// setter definition nodes span from the property name through the end of
// the body, with an anonymous function child.
func (b *builder) transformMethod(c *sitter.Node) *ir.Node {
	accessor := ""
	nameN := c.ChildByFieldName(fieldName)
	for i := 0; i < int(c.ChildCount()); i++ {
		tok := c.Child(i)
		if tok == nameN {
			break
		}
		if t := tok.Type(); t == "get" || t == "set" {
			accessor = t
		}
	}

	fn := b.newNode(ir.KindFunction, c)
	fn.Append(&ir.Node{Kind: ir.KindName, File: b.file})
	if paramsN := c.ChildByFieldName(fieldParameters); paramsN != nil {
		fn.Append(b.transformParams(paramsN))
	} else {
		fn.Append(&ir.Node{Kind: ir.KindParamList, File: b.file})
	}
	if retN := c.ChildByFieldName(fieldReturnType); retN != nil {
		fn.DeclaredType = b.transformTypeAnnotation(retN)
	}
	bodyN := c.ChildByFieldName(fieldBody)
	if bodyN != nil {
		fn.Directives = b.scanDirectives(bodyN)
		b.pushScope(fn.Directives)
		fn.Append(b.transformBlock(bodyN))
		b.popScope()
	} else {
		fn.Append(&ir.Node{Kind: ir.KindBlock, File: b.file, Pos: b.file.PointSpan(int(c.EndByte()))})
	}

	kind := ir.KindStringKey
	switch accessor {
	case "get":
		kind = ir.KindGetterDef
	case "set":
		kind = ir.KindSetterDef
	}

	end := int(c.EndByte())
	if bodyN != nil {
		end = int(bodyN.EndByte())
	}
	def := &ir.Node{
		Kind: kind,
		File: b.file,
		Pos:  b.file.Span(int(nameN.StartByte()), end),
	}
	if nameN.Type() == cstString {
		def.Name = cookString(b.text(nameN))
		def.Flags |= ir.FlagQuoted
	} else if nameN.Type() == cstComputedProperty {
		computed := b.newNode(ir.KindComputedProp, nameN)
		if e := nameN.NamedChild(0); e != nil {
			computed.Append(b.transformExpression(e))
		}
		computed.Append(fn)
		computed.Pos = def.Pos
		return computed
	} else {
		def.Name = b.text(nameN)
	}
	return def.Append(fn)
}

// transformError rebuilds the intended construct from an error-recovery
// node when the shape is recognizable, so that semantic diagnostics (bad
// assignment or update targets) surface instead of a bare parse error.
func (b *builder) transformError(n *sitter.Node) *ir.Node {
	var opTok *sitter.Node
	var exprs []*sitter.Node
	for i := 0; i < int(n.ChildCount()); i++ {
		c := n.Child(i)
		t := c.Type()
		switch {
		case t == cstComment || t == ";":
		case c.IsNamed():
			exprs = append(exprs, c)
		case opTok == nil && (t == "++" || t == "--" || assignKinds[t] != ir.KindInvalid || t == "="):
			opTok = c
		}
	}

	if opTok != nil && len(exprs) >= 1 {
		switch t := opTok.Type(); t {
		case "++", "--":
			kind, op := ir.KindInc, opIncrement
			if t == "--" {
				kind, op = ir.KindDec, opDecrement
			}
			target := b.transformExpression(exprs[0])
			b.validateTarget(target, op)
			node := b.newNode(kind, n).Append(target)
			if opTok.StartByte() > exprs[0].StartByte() {
				node.Flags |= ir.FlagPostfix
			}
			return node
		default:
			kind := ir.KindAssign
			op := opAssign
			if t != "=" {
				kind = assignKinds[t]
				op = opCompound
			}
			left := b.transformExpression(exprs[0])
			b.validateTarget(left, op)
			node := b.newNode(kind, n).Append(left)
			if len(exprs) > 1 {
				node.Append(b.transformExpression(exprs[1]))
			}
			return node
		}
	}

	b.errorAt("Parse error.", b.pos(n))
	return b.newNode(ir.KindEmpty, n)
}

func errorChild(n *sitter.Node) *sitter.Node {
	for i := 0; i < int(n.ChildCount()); i++ {
		if c := n.Child(i); c.Type() == cstError {
			return c
		}
	}
	return nil
}

// transformStatementExpr transforms the expression of an expression
// statement. Recovery can leave the rejected tail as an ERROR sibling of
// the expression (`f() = 1` parses as a call followed by ERROR("= 1"));
// such pairs are stitched back together so target validation fires on
// the intended construct instead of the tail vanishing.
func (b *builder) transformStatementExpr(n *sitter.Node) *ir.Node {
	var kids []*sitter.Node
	for i := 0; i < int(n.NamedChildCount()); i++ {
		c := n.NamedChild(i)
		if c.Type() == cstComment {
			continue
		}
		kids = append(kids, c)
	}
	if len(kids) == 0 {
		return nil
	}
	if len(kids) == 1 {
		return b.transformExpression(kids[0])
	}

	var expr *ir.Node
	rest := kids[1:]
	if kids[0].Type() != cstError && kids[1].Type() == cstError {
		if joined := b.stitchErrorTail(kids[0], kids[1]); joined != nil {
			expr = joined
			rest = kids[2:]
		}
	}
	if expr == nil {
		expr = b.transformExpression(kids[0])
	}
	for _, extra := range rest {
		b.errorAt("Parse error.", b.pos(extra))
	}
	return expr
}

// stitchErrorTail rebuilds `left <op> rhs` from an expression and the
// trailing recovery node holding the operator the grammar rejected.
// Returns nil when no operator is recognizable.
func (b *builder) stitchErrorTail(leftN, errN *sitter.Node) *ir.Node {
	var opTok, rhs *sitter.Node
	for i := 0; i < int(errN.ChildCount()); i++ {
		c := errN.Child(i)
		t := c.Type()
		switch {
		case t == cstComment || t == ";":
		case c.IsNamed():
			if rhs == nil {
				rhs = c
			}
		case opTok == nil && (t == "++" || t == "--" || assignKinds[t] != ir.KindInvalid):
			opTok = c
		}
	}
	if opTok == nil {
		return nil
	}

	left := b.transformExpression(leftN)
	span := b.file.Span(int(leftN.StartByte()), int(errN.EndByte()))
	switch t := opTok.Type(); t {
	case "++", "--":
		kind, op := ir.KindInc, opIncrement
		if t == "--" {
			kind, op = ir.KindDec, opDecrement
		}
		b.validateTarget(left, op)
		node := &ir.Node{Kind: kind, File: b.file, Pos: span}
		node.Flags |= ir.FlagPostfix
		return node.Append(left)
	default:
		kind := assignKinds[t]
		op := opAssign
		if t != "=" {
			op = opCompound
		}
		b.validateTarget(left, op)
		node := &ir.Node{Kind: kind, File: b.file, Pos: span}
		node.Append(left)
		if rhs != nil {
			node.Append(b.transformExpression(rhs))
		}
		return node
	}
}
