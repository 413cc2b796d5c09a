// Copyright (C) 2026 Fathom Labs (engineering@fathomlabs.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package frontend

import (
	"github.com/fathomlabs/jsfront/pkg/ir"
)

// Diagnostic messages are a compatibility contract: downstream tooling
// matches on the exact strings, including their casing.
const (
	msgInvalidAssignTarget    = "invalid assignment target"
	msgInvalidIncrementTarget = "invalid increment target"
	msgInvalidDecrementTarget = "invalid decrement target"
	msgInvalidIncrementOp     = "Invalid increment operand"
	msgInvalidDecrementOp     = "Invalid decrement operand"
	msgInvalidDelete          = "Invalid delete operand. Only properties can be deleted."
	msgStrictDelete           = "delete of an unqualified identifier in strict mode"
	msgBadTypeSyntax          = "Bad type syntax - can only have JSDoc or inline type annotations, not both"
	msgExpectedComma          = "',' expected"
	msgExpectedBracket        = "']' expected"
)

// targetOp distinguishes which operation wants the node as a target, so
// the right diagnostic wording is chosen.
type targetOp int

const (
	opAssign targetOp = iota
	opCompound
	opIncrement
	opDecrement
)

// validateTarget checks that a node can be written to by the given
// operation. Names and property accesses are always acceptable; a call
// result gets the "target" wording, anything else the operand wording.
// Exactly one diagnostic is recorded per invalid target.
func (b *builder) validateTarget(target *ir.Node, op targetOp) {
	if target == nil {
		return
	}
	switch target.Kind {
	case ir.KindName, ir.KindGetProp, ir.KindGetElem:
		return

	case ir.KindArrayPattern, ir.KindObjectPattern:
		if op == opAssign {
			return
		}

	case ir.KindCall:
		switch op {
		case opIncrement:
			b.errorAt(msgInvalidIncrementTarget, target.Pos.Start())
		case opDecrement:
			b.errorAt(msgInvalidDecrementTarget, target.Pos.Start())
		default:
			b.errorAt(msgInvalidAssignTarget, target.Pos.Start())
		}
		return
	}

	switch op {
	case opIncrement:
		b.errorAt(msgInvalidIncrementOp, target.Pos.Start())
	case opDecrement:
		b.errorAt(msgInvalidDecrementOp, target.Pos.Start())
	default:
		b.errorAt(msgInvalidAssignTarget, target.Pos.Start())
	}
}

// validateDelete rejects delete operands that are not property accesses.
// A bare name is tolerated in sloppy mode for legacy code but rejected
// under strict mode.
func (b *builder) validateDelete(operand *ir.Node) {
	if operand == nil {
		return
	}
	switch operand.Kind {
	case ir.KindGetProp, ir.KindGetElem:
		return
	case ir.KindName:
		if b.inStrict() {
			b.errorAt(msgStrictDelete, operand.Pos.Start())
		}
		return
	}
	b.errorAt(msgInvalidDelete, operand.Pos.Start())
}
