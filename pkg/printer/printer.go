// Copyright (C) 2026 Fathom Labs (engineering@fathomlabs.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package printer renders the canonical AST back to compact source text.
// Output favors minimal size over readability: no optional whitespace, no
// optional semicolons beyond statement terminators, doc comments emitted
// verbatim where they were attached. It exists for golden tests and for
// downstream passes that want a cheap round trip, not for pretty-printing.
package printer

import (
	"strconv"
	"strings"

	"github.com/fathomlabs/jsfront/pkg/ir"
)

// Print renders the tree rooted at n.
func Print(n *ir.Node) string {
	var p printer
	p.statement(n)
	return p.sb.String()
}

type printer struct {
	sb strings.Builder
}

func (p *printer) str(s string) {
	p.sb.WriteString(s)
}

// doc emits the node's documentation comment verbatim.
func (p *printer) doc(n *ir.Node) {
	if n.Doc != nil && n.Doc.Raw != "" {
		p.str(n.Doc.Raw)
	}
}

func (p *printer) statement(n *ir.Node) {
	if n == nil {
		return
	}
	p.doc(n)
	switch n.Kind {
	case ir.KindScript:
		for _, c := range n.Children {
			p.statement(c)
		}

	case ir.KindBlock:
		p.str("{")
		for _, c := range n.Children {
			p.statement(c)
		}
		p.str("}")

	case ir.KindExprResult:
		p.expr(n.FirstChild(), 0)
		p.str(";")

	case ir.KindEmpty:
		p.str(";")

	case ir.KindVar, ir.KindLet, ir.KindConst:
		p.declaration(n)
		p.str(";")

	case ir.KindIf:
		p.str("if(")
		p.expr(n.Child(0), 0)
		p.str(")")
		p.nested(n.Child(1))
		if alt := n.Child(2); alt != nil {
			p.str("else")
			if alt.Kind != ir.KindBlock {
				p.str(" ")
			}
			p.nested(alt)
		}

	case ir.KindWhile:
		p.str("while(")
		p.expr(n.Child(0), 0)
		p.str(")")
		p.nested(n.Child(1))

	case ir.KindDo:
		p.str("do")
		body := n.Child(0)
		if body.Kind != ir.KindBlock {
			p.str(" ")
		}
		p.nested(body)
		p.str("while(")
		p.expr(n.Child(1), 0)
		p.str(");")

	case ir.KindFor:
		p.str("for(")
		p.forClause(n.Child(0))
		p.str(";")
		if c := n.Child(1); c.Kind != ir.KindEmpty {
			p.expr(c, 0)
		}
		p.str(";")
		if c := n.Child(2); c.Kind != ir.KindEmpty {
			p.expr(c, 0)
		}
		p.str(")")
		p.nested(n.Child(3))

	case ir.KindForIn, ir.KindForOf:
		p.str("for(")
		p.forClause(n.Child(0))
		if n.Kind == ir.KindForIn {
			p.str(" in ")
		} else {
			p.str(" of ")
		}
		p.expr(n.Child(1), 0)
		p.str(")")
		p.nested(n.Child(2))

	case ir.KindReturn:
		p.str("return")
		if e := n.FirstChild(); e != nil {
			p.str(keywordGap(e))
			p.expr(e, 0)
		}
		p.str(";")

	case ir.KindThrow:
		p.str("throw ")
		p.expr(n.FirstChild(), 0)
		p.str(";")

	case ir.KindTry:
		p.str("try")
		p.statement(n.Child(0))
		if c := n.Child(1); c != nil && c.Kind == ir.KindCatch {
			p.str("catch(")
			p.expr(c.Child(0), 0)
			p.str(")")
			p.statement(c.Child(1))
		}
		if f := n.Child(2); f != nil && f.Kind == ir.KindBlock {
			p.str("finally")
			p.statement(f)
		}

	case ir.KindSwitch:
		p.str("switch(")
		p.expr(n.Child(0), 0)
		p.str("){")
		for _, clause := range n.Children[1:] {
			if clause.Kind == ir.KindCase {
				p.str("case ")
				p.expr(clause.Child(0), 0)
				p.str(":")
				for _, s := range clause.Child(1).Children {
					p.statement(s)
				}
			} else {
				p.str("default:")
				for _, s := range clause.Child(0).Children {
					p.statement(s)
				}
			}
		}
		p.str("}")

	case ir.KindBreak:
		p.str("break")
		if l := n.FirstChild(); l != nil {
			p.str(" " + l.Name)
		}
		p.str(";")

	case ir.KindContinue:
		p.str("continue")
		if l := n.FirstChild(); l != nil {
			p.str(" " + l.Name)
		}
		p.str(";")

	case ir.KindLabel:
		p.str(n.Child(0).Name + ":")
		p.statement(n.Child(1))

	case ir.KindWith:
		p.str("with(")
		p.expr(n.Child(0), 0)
		p.str(")")
		p.nested(n.Child(1))

	case ir.KindDebugger:
		p.str("debugger;")

	case ir.KindFunction:
		p.function(n)

	default:
		p.expr(n, 0)
		p.str(";")
	}
}

// nested prints a statement in a position where a block or a single
// statement may follow a closing parenthesis.
func (p *printer) nested(n *ir.Node) {
	if n == nil {
		p.str(";")
		return
	}
	p.statement(n)
}

// forClause prints a for-loop initializer or for-in/of target, which may
// be a declaration without its trailing semicolon.
func (p *printer) forClause(n *ir.Node) {
	if n == nil || n.Kind == ir.KindEmpty {
		return
	}
	switch n.Kind {
	case ir.KindVar, ir.KindLet, ir.KindConst:
		p.declaration(n)
	default:
		p.expr(n, 0)
	}
}

func (p *printer) declaration(n *ir.Node) {
	switch n.Kind {
	case ir.KindVar:
		p.str("var ")
	case ir.KindLet:
		p.str("let ")
	case ir.KindConst:
		p.str("const ")
	}
	for i, d := range n.Children {
		if i > 0 {
			p.str(",")
		}
		p.declarator(d)
	}
}

func (p *printer) declarator(d *ir.Node) {
	p.doc(d)
	switch d.Kind {
	case ir.KindDestructuringDecl:
		p.expr(d.Child(0), 0)
		if init := d.Child(1); init != nil {
			p.str("=")
			p.expr(init, precAssign)
		}
	default:
		p.str(d.Name)
		p.typeSuffix(d)
		if init := d.FirstChild(); init != nil {
			p.str("=")
			p.expr(init, precAssign)
		}
	}
}

func (p *printer) typeSuffix(n *ir.Node) {
	if n.DeclaredType != nil {
		p.str(":" + n.DeclaredType.String())
	}
}

func (p *printer) function(n *ir.Node) {
	p.str("function")
	name := n.Child(0)
	if name != nil && name.Name != "" {
		if name.Doc != nil && name.Doc.Raw != "" {
			// The comment itself separates the keyword from the name.
			p.doc(name)
		} else {
			p.str(" ")
		}
		p.str(name.Name)
	}
	p.params(n.Child(1))
	p.typeSuffix(n)
	body := n.Child(2)
	switch {
	case body == nil:
		p.str("{}")
	case body.Kind == ir.KindBlock:
		p.statement(body)
	default:
		// Expression-bodied arrow: normalize to a block form.
		p.str("{return")
		p.str(keywordGap(body))
		p.expr(body, 0)
		p.str(";}")
	}
}

// keywordGap is the separator between a keyword and the expression that
// follows it. Literals opening with a non-identifier character need no
// space: `return'hello';` is valid where `return1;` is not.
func keywordGap(e *ir.Node) string {
	switch e.Kind {
	case ir.KindString, ir.KindTemplateLit, ir.KindRegexp:
		return ""
	}
	return " "
}

func (p *printer) params(list *ir.Node) {
	p.str("(")
	if list != nil {
		for i, param := range list.Children {
			if i > 0 {
				p.str(",")
			}
			p.doc(param)
			p.param(param)
		}
	}
	p.str(")")
}

func (p *printer) param(param *ir.Node) {
	switch param.Kind {
	case ir.KindDefaultValue:
		target := param.Child(0)
		p.param(target)
		p.typeSuffix(param)
		p.str("=")
		p.expr(param.Child(1), precAssign)
	case ir.KindName:
		p.str(param.Name)
		p.typeSuffix(param)
	default:
		p.expr(param, 0)
		p.typeSuffix(param)
	}
}

// Operator precedence levels, loosest to tightest. Children printed at a
// looser level than their context get wrapping parentheses.
const (
	precComma = iota
	precAssign
	precHook
	precNullish
	precOr
	precAnd
	precBitOr
	precBitXor
	precBitAnd
	precEquality
	precRelational
	precShift
	precAdditive
	precMultiplicative
	precExponent
	precUnary
	precPostfix
	precCallMember
	precPrimary
)

var binaryOps = map[ir.Kind]struct {
	text string
	prec int
}{
	ir.KindComma:           {",", precComma},
	ir.KindNullishCoalesce: {"??", precNullish},
	ir.KindOr:              {"||", precOr},
	ir.KindAnd:             {"&&", precAnd},
	ir.KindBitOr:           {"|", precBitOr},
	ir.KindBitXor:          {"^", precBitXor},
	ir.KindBitAnd:          {"&", precBitAnd},
	ir.KindEq:              {"==", precEquality},
	ir.KindNe:              {"!=", precEquality},
	ir.KindShEq:            {"===", precEquality},
	ir.KindShNe:            {"!==", precEquality},
	ir.KindLt:              {"<", precRelational},
	ir.KindLe:              {"<=", precRelational},
	ir.KindGt:              {">", precRelational},
	ir.KindGe:              {">=", precRelational},
	ir.KindIn:              {" in ", precRelational},
	ir.KindInstanceOf:      {" instanceof ", precRelational},
	ir.KindLsh:             {"<<", precShift},
	ir.KindRsh:             {">>", precShift},
	ir.KindUrsh:            {">>>", precShift},
	ir.KindAdd:             {"+", precAdditive},
	ir.KindSub:             {"-", precAdditive},
	ir.KindMul:             {"*", precMultiplicative},
	ir.KindDiv:             {"/", precMultiplicative},
	ir.KindMod:             {"%", precMultiplicative},
	ir.KindExponent:        {"**", precExponent},
}

var assignOps = map[ir.Kind]string{
	ir.KindAssign:         "=",
	ir.KindAssignAdd:      "+=",
	ir.KindAssignSub:      "-=",
	ir.KindAssignMul:      "*=",
	ir.KindAssignDiv:      "/=",
	ir.KindAssignMod:      "%=",
	ir.KindAssignExponent: "**=",
	ir.KindAssignBitAnd:   "&=",
	ir.KindAssignBitOr:    "|=",
	ir.KindAssignBitXor:   "^=",
	ir.KindAssignLsh:      "<<=",
	ir.KindAssignRsh:      ">>=",
	ir.KindAssignUrsh:     ">>>=",
}

var unaryOps = map[ir.Kind]string{
	ir.KindNeg:     "-",
	ir.KindPos:     "+",
	ir.KindNot:     "!",
	ir.KindBitNot:  "~",
	ir.KindTypeOf:  "typeof ",
	ir.KindVoid:    "void ",
	ir.KindDelProp: "delete ",
}

func (p *printer) expr(n *ir.Node, ctx int) {
	if n == nil {
		return
	}
	prec := exprPrec(n)
	wrap := prec < ctx
	if wrap {
		p.str("(")
	}
	p.exprInner(n)
	if wrap {
		p.str(")")
	}
}

func exprPrec(n *ir.Node) int {
	if op, ok := binaryOps[n.Kind]; ok {
		return op.prec
	}
	if _, ok := assignOps[n.Kind]; ok {
		return precAssign
	}
	if _, ok := unaryOps[n.Kind]; ok {
		return precUnary
	}
	switch n.Kind {
	case ir.KindHook:
		return precHook
	case ir.KindInc, ir.KindDec:
		if n.Flags&ir.FlagPostfix != 0 {
			return precPostfix
		}
		return precUnary
	case ir.KindCall, ir.KindNew, ir.KindGetProp, ir.KindGetElem:
		return precCallMember
	case ir.KindFunction, ir.KindCast:
		return precUnary
	}
	return precPrimary
}

func (p *printer) exprInner(n *ir.Node) {
	if op, ok := binaryOps[n.Kind]; ok {
		p.expr(n.Child(0), op.prec)
		p.str(op.text)
		p.expr(n.Child(1), op.prec+1)
		return
	}
	if op, ok := assignOps[n.Kind]; ok {
		p.expr(n.Child(0), precUnary)
		p.str(op)
		p.expr(n.Child(1), precAssign)
		return
	}
	if op, ok := unaryOps[n.Kind]; ok {
		p.str(op)
		p.expr(n.FirstChild(), precUnary)
		return
	}

	switch n.Kind {
	case ir.KindName:
		p.str(n.Name)

	case ir.KindNumber:
		p.str(formatNumber(n))

	case ir.KindString:
		p.str(n.Str)

	case ir.KindRegexp, ir.KindTemplateLit:
		p.str(n.Str)

	case ir.KindTrue:
		p.str("true")
	case ir.KindFalse:
		p.str("false")
	case ir.KindNull:
		p.str("null")
	case ir.KindThis:
		p.str("this")

	case ir.KindGetProp:
		p.expr(n.Child(0), precCallMember)
		p.str("." + n.Child(1).Name)

	case ir.KindGetElem:
		p.expr(n.Child(0), precCallMember)
		p.str("[")
		p.expr(n.Child(1), 0)
		p.str("]")

	case ir.KindCall:
		p.expr(n.Child(0), precCallMember)
		p.args(n.Children[1:])

	case ir.KindNew:
		p.str("new ")
		p.expr(n.Child(0), precCallMember)
		p.args(n.Children[1:])

	case ir.KindHook:
		p.expr(n.Child(0), precNullish)
		p.str("?")
		p.expr(n.Child(1), precAssign)
		p.str(":")
		p.expr(n.Child(2), precAssign)

	case ir.KindInc, ir.KindDec:
		op := "++"
		if n.Kind == ir.KindDec {
			op = "--"
		}
		if n.Flags&ir.FlagPostfix != 0 {
			p.expr(n.FirstChild(), precPostfix)
			p.str(op)
		} else {
			p.str(op)
			p.expr(n.FirstChild(), precUnary)
		}

	case ir.KindArrayLit, ir.KindArrayPattern:
		p.str("[")
		for i, c := range n.Children {
			if i > 0 {
				p.str(",")
			}
			if c.Kind == ir.KindEmpty {
				continue
			}
			p.expr(c, precAssign)
		}
		p.str("]")

	case ir.KindObjectLit, ir.KindObjectPattern:
		p.str("{")
		for i, c := range n.Children {
			if i > 0 {
				p.str(",")
			}
			p.member(c)
		}
		p.str("}")

	case ir.KindSpread, ir.KindRest:
		p.str("...")
		p.expr(n.FirstChild(), precAssign)

	case ir.KindDefaultValue:
		p.expr(n.Child(0), precUnary)
		p.str("=")
		p.expr(n.Child(1), precAssign)

	case ir.KindFunction:
		p.function(n)

	case ir.KindCast:
		p.expr(n.FirstChild(), precUnary)
		if n.DeclaredType != nil {
			p.str(" as " + n.DeclaredType.String())
		}

	case ir.KindEmpty:

	default:
		p.str(n.Name)
	}
}

func (p *printer) args(args []*ir.Node) {
	p.str("(")
	for i, a := range args {
		if i > 0 {
			p.str(",")
		}
		p.expr(a, precAssign)
	}
	p.str(")")
}

// member prints one object-literal or object-pattern entry.
func (p *printer) member(c *ir.Node) {
	p.doc(c)
	switch c.Kind {
	case ir.KindStringKey:
		p.key(c)
		if v := c.FirstChild(); v != nil {
			if v.Kind == ir.KindFunction {
				// Method shorthand.
				p.params(v.Child(1))
				p.statement(v.Child(2))
				return
			}
			p.str(":")
			p.expr(v, precAssign)
		}

	case ir.KindGetterDef, ir.KindSetterDef:
		if c.Kind == ir.KindGetterDef {
			p.str("get ")
		} else {
			p.str("set ")
		}
		p.key(c)
		fn := c.FirstChild()
		p.params(fn.Child(1))
		p.statement(fn.Child(2))

	case ir.KindComputedProp:
		p.str("[")
		p.expr(c.Child(0), 0)
		p.str("]")
		if v := c.Child(1); v != nil {
			if v.Kind == ir.KindFunction {
				p.params(v.Child(1))
				p.statement(v.Child(2))
				return
			}
			p.str(":")
			p.expr(v, precAssign)
		}

	default:
		p.expr(c, precAssign)
	}
}

// key prints a property key, re-quoting keys that were quoted in source.
func (p *printer) key(c *ir.Node) {
	if c.Flags&ir.FlagQuoted != 0 {
		p.str(strconv.Quote(c.Name))
		return
	}
	p.str(c.Name)
}

func formatNumber(n *ir.Node) string {
	if n.Str != "" {
		return n.Str
	}
	return strconv.FormatFloat(n.Num, 'g', -1, 64)
}
