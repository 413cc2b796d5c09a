// Copyright (C) 2026 Fathom Labs (engineering@fathomlabs.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package ir

// Kind tags what syntactic construct a Node represents. The enumeration is
// closed: the builder never emits a kind outside this set, and downstream
// phases switch exhaustively over it.
type Kind int

const (
	KindInvalid Kind = iota

	// Top level and statements.
	KindScript
	KindExprResult
	KindBlock
	KindEmpty
	KindIf
	KindWhile
	KindDo
	KindFor
	KindForIn
	KindForOf
	KindVar
	KindLet
	KindConst
	KindReturn
	KindThrow
	KindTry
	KindCatch
	KindSwitch
	KindCase
	KindDefaultCase
	KindBreak
	KindContinue
	KindWith
	KindDebugger
	KindLabel
	KindLabelName

	// Names and property access.
	KindName
	KindGetProp
	KindGetElem

	// Literals.
	KindNumber
	KindString
	KindRegexp
	KindTrue
	KindFalse
	KindNull
	KindThis
	KindTemplateLit
	KindArrayLit
	KindObjectLit
	KindStringKey
	KindGetterDef
	KindSetterDef

	// Functions.
	KindFunction
	KindParamList
	KindCall
	KindNew

	// Patterns.
	KindArrayPattern
	KindObjectPattern
	KindComputedProp
	KindDefaultValue
	KindRest
	KindSpread

	// KindDestructuringDecl wraps a destructuring declarator: its first
	// child is the pattern, its optional second child the initializer.
	KindDestructuringDecl

	// Unary operators.
	KindNeg
	KindPos
	KindNot
	KindBitNot
	KindTypeOf
	KindVoid
	KindDelProp
	KindInc
	KindDec

	// Binary operators.
	KindAdd
	KindSub
	KindMul
	KindDiv
	KindMod
	KindExponent
	KindBitAnd
	KindBitOr
	KindBitXor
	KindLsh
	KindRsh
	KindUrsh
	KindEq
	KindNe
	KindShEq
	KindShNe
	KindLt
	KindLe
	KindGt
	KindGe
	KindAnd
	KindOr
	KindNullishCoalesce
	KindIn
	KindInstanceOf
	KindComma

	// Assignment.
	KindAssign
	KindAssignAdd
	KindAssignSub
	KindAssignMul
	KindAssignDiv
	KindAssignMod
	KindAssignExponent
	KindAssignBitAnd
	KindAssignBitOr
	KindAssignBitXor
	KindAssignLsh
	KindAssignRsh
	KindAssignUrsh

	// Conditional expression.
	KindHook

	// Type assertion (typed dialect).
	KindCast

	kindLast
)

var kindNames = map[Kind]string{
	KindInvalid:         "invalid",
	KindScript:          "script",
	KindExprResult:      "expr_result",
	KindBlock:           "block",
	KindEmpty:           "empty",
	KindIf:              "if",
	KindWhile:           "while",
	KindDo:              "do",
	KindFor:             "for",
	KindForIn:           "for_in",
	KindForOf:           "for_of",
	KindVar:             "var",
	KindLet:             "let",
	KindConst:           "const",
	KindReturn:          "return",
	KindThrow:           "throw",
	KindTry:             "try",
	KindCatch:           "catch",
	KindSwitch:          "switch",
	KindCase:            "case",
	KindDefaultCase:     "default_case",
	KindBreak:           "break",
	KindContinue:        "continue",
	KindWith:            "with",
	KindDebugger:        "debugger",
	KindLabel:           "label",
	KindLabelName:       "label_name",
	KindName:            "name",
	KindGetProp:         "getprop",
	KindGetElem:         "getelem",
	KindNumber:          "number",
	KindString:          "string",
	KindRegexp:          "regexp",
	KindTrue:            "true",
	KindFalse:           "false",
	KindNull:            "null",
	KindThis:            "this",
	KindTemplateLit:     "template_lit",
	KindArrayLit:        "array_lit",
	KindObjectLit:       "object_lit",
	KindStringKey:       "string_key",
	KindGetterDef:       "getter_def",
	KindSetterDef:       "setter_def",
	KindFunction:        "function",
	KindParamList:       "param_list",
	KindCall:            "call",
	KindNew:             "new",
	KindArrayPattern:    "array_pattern",
	KindObjectPattern:   "object_pattern",
	KindComputedProp:    "computed_prop",
	KindDefaultValue:    "default_value",
	KindRest:              "rest",
	KindSpread:            "spread",
	KindDestructuringDecl: "destructuring_decl",
	KindNeg:             "neg",
	KindPos:             "pos",
	KindNot:             "not",
	KindBitNot:          "bitnot",
	KindTypeOf:          "typeof",
	KindVoid:            "void",
	KindDelProp:         "delprop",
	KindInc:             "inc",
	KindDec:             "dec",
	KindAdd:             "add",
	KindSub:             "sub",
	KindMul:             "mul",
	KindDiv:             "div",
	KindMod:             "mod",
	KindExponent:        "exponent",
	KindBitAnd:          "bitand",
	KindBitOr:           "bitor",
	KindBitXor:          "bitxor",
	KindLsh:             "lsh",
	KindRsh:             "rsh",
	KindUrsh:            "ursh",
	KindEq:              "eq",
	KindNe:              "ne",
	KindShEq:            "sheq",
	KindShNe:            "shne",
	KindLt:              "lt",
	KindLe:              "le",
	KindGt:              "gt",
	KindGe:              "ge",
	KindAnd:             "and",
	KindOr:              "or",
	KindNullishCoalesce: "nullish_coalesce",
	KindIn:              "in",
	KindInstanceOf:      "instanceof",
	KindComma:           "comma",
	KindAssign:          "assign",
	KindAssignAdd:       "assign_add",
	KindAssignSub:       "assign_sub",
	KindAssignMul:       "assign_mul",
	KindAssignDiv:       "assign_div",
	KindAssignMod:       "assign_mod",
	KindAssignExponent:  "assign_exponent",
	KindAssignBitAnd:    "assign_bitand",
	KindAssignBitOr:     "assign_bitor",
	KindAssignBitXor:    "assign_bitxor",
	KindAssignLsh:       "assign_lsh",
	KindAssignRsh:       "assign_rsh",
	KindAssignUrsh:      "assign_ursh",
	KindHook:            "hook",
	KindCast:            "cast",
}

// String returns the kind's canonical lowercase name.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "invalid"
}

// IsAssignOp reports whether the kind is a simple or compound assignment.
func (k Kind) IsAssignOp() bool {
	return k >= KindAssign && k <= KindAssignUrsh
}

// IsBinaryOp reports whether the kind is a binary operator (including
// comma sequences but excluding assignments).
func (k Kind) IsBinaryOp() bool {
	return k >= KindAdd && k <= KindComma
}

// IsUnaryOp reports whether the kind is a unary operator.
func (k Kind) IsUnaryOp() bool {
	return k >= KindNeg && k <= KindDec
}
