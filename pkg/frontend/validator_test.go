// Copyright (C) 2026 Fathom Labs (engineering@fathomlabs.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package frontend

import (
	"testing"

	"github.com/fathomlabs/jsfront/pkg/diag"
	"github.com/fathomlabs/jsfront/pkg/ir"
	"github.com/fathomlabs/jsfront/pkg/source"
)

func testBuilder(t *testing.T) (*builder, *diag.Reporter) {
	t.Helper()
	rep := diag.NewReporter(diag.KeepGoing)
	return &builder{
		file:   source.NewFile("v.js", nil),
		cfg:    DefaultConfig(),
		rep:    rep,
		strict: []bool{false},
	}, rep
}

func node(k ir.Kind) *ir.Node {
	return &ir.Node{Kind: k, Pos: source.Span{Line: 1, Col: 3, Length: 2}}
}

func TestValidateTarget_Messages(t *testing.T) {
	cases := []struct {
		name string
		kind ir.Kind
		op   targetOp
		want string // empty means no diagnostic
	}{
		{"name assign", ir.KindName, opAssign, ""},
		{"getprop assign", ir.KindGetProp, opAssign, ""},
		{"getelem compound", ir.KindGetElem, opCompound, ""},
		{"name increment", ir.KindName, opIncrement, ""},
		{"getprop decrement", ir.KindGetProp, opDecrement, ""},

		{"array pattern assign", ir.KindArrayPattern, opAssign, ""},
		{"object pattern assign", ir.KindObjectPattern, opAssign, ""},
		{"array pattern increment", ir.KindArrayPattern, opIncrement, msgInvalidIncrementOp},
		{"object pattern compound", ir.KindObjectPattern, opCompound, msgInvalidAssignTarget},

		{"call assign", ir.KindCall, opAssign, msgInvalidAssignTarget},
		{"call compound", ir.KindCall, opCompound, msgInvalidAssignTarget},
		{"call increment", ir.KindCall, opIncrement, msgInvalidIncrementTarget},
		{"call decrement", ir.KindCall, opDecrement, msgInvalidDecrementTarget},

		{"or assign", ir.KindOr, opAssign, msgInvalidAssignTarget},
		{"hook assign", ir.KindHook, opAssign, msgInvalidAssignTarget},
		{"number compound", ir.KindNumber, opCompound, msgInvalidAssignTarget},
		{"or increment", ir.KindOr, opIncrement, msgInvalidIncrementOp},
		{"or decrement", ir.KindOr, opDecrement, msgInvalidDecrementOp},
		{"number increment", ir.KindNumber, opIncrement, msgInvalidIncrementOp},
		{"string decrement", ir.KindString, opDecrement, msgInvalidDecrementOp},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, rep := testBuilder(t)
			b.validateTarget(node(tc.kind), tc.op)
			if tc.want == "" {
				if rep.Count() != 0 {
					t.Fatalf("unexpected diagnostics: %v", rep.Diagnostics())
				}
				return
			}
			if rep.Count() != 1 {
				t.Fatalf("diagnostics = %d, want exactly 1: %v", rep.Count(), rep.Diagnostics())
			}
			if got := rep.Diagnostics()[0].Message; got != tc.want {
				t.Errorf("message = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestValidateTarget_Nil(t *testing.T) {
	b, rep := testBuilder(t)
	b.validateTarget(nil, opAssign)
	if rep.Count() != 0 {
		t.Error("nil target must not report")
	}
}

func TestValidateDelete(t *testing.T) {
	t.Run("property access ok", func(t *testing.T) {
		b, rep := testBuilder(t)
		b.validateDelete(node(ir.KindGetProp))
		b.validateDelete(node(ir.KindGetElem))
		if rep.Count() != 0 {
			t.Errorf("unexpected diagnostics: %v", rep.Diagnostics())
		}
	})

	t.Run("bare name tolerated in sloppy mode", func(t *testing.T) {
		b, rep := testBuilder(t)
		b.validateDelete(node(ir.KindName))
		if rep.Count() != 0 {
			t.Errorf("unexpected diagnostics: %v", rep.Diagnostics())
		}
	})

	t.Run("bare name rejected in strict scope", func(t *testing.T) {
		b, rep := testBuilder(t)
		b.pushScope(map[string]bool{"use strict": true})
		b.validateDelete(node(ir.KindName))
		if rep.Count() != 1 || rep.Diagnostics()[0].Message != msgStrictDelete {
			t.Errorf("diagnostics = %v", rep.Diagnostics())
		}
	})

	t.Run("call rejected", func(t *testing.T) {
		b, rep := testBuilder(t)
		b.validateDelete(node(ir.KindCall))
		if rep.Count() != 1 || rep.Diagnostics()[0].Message != msgInvalidDelete {
			t.Errorf("diagnostics = %v", rep.Diagnostics())
		}
	})

	t.Run("nil operand", func(t *testing.T) {
		b, rep := testBuilder(t)
		b.validateDelete(nil)
		if rep.Count() != 0 {
			t.Error("nil operand must not report")
		}
	})
}

// The end-to-end paths that feed the validator: each source form must
// yield exactly the contract message, once.
func TestValidation_EndToEnd(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"f()++;", msgInvalidIncrementTarget},
		{"--f();", msgInvalidDecrementTarget},
		{"(x || y)++;", msgInvalidIncrementOp},
		{"--(x || y);", msgInvalidDecrementOp},
		{"(x || y) = 1;", msgInvalidAssignTarget},
		{"(x ? y : z) = 1;", msgInvalidAssignTarget},
		{"1 = 2;", msgInvalidAssignTarget},
		{"delete f();", msgInvalidDelete},
		{"'use strict'; delete x;", msgStrictDelete},
	}
	for _, tc := range cases {
		t.Run(tc.src, func(t *testing.T) {
			_, rep := parseSource(t, tc.src)
			if !rep.HasAll(tc.want) {
				t.Fatalf("missing %q; got %v", tc.want, rep.Diagnostics())
			}
		})
	}
}

// Grammar recovery for `f() = 1;` leaves the rejected `= 1` as an ERROR
// sibling of the call inside the statement, and `f() += 1;` resurfaces
// as an addition with a stray `=` recovery child. Both must still reach
// target validation with exactly one diagnostic.
func TestValidation_RecoveredAssignments(t *testing.T) {
	cases := []struct {
		src  string
		kind ir.Kind
	}{
		{"f() = 1;", ir.KindAssign},
		{"f() += 1;", ir.KindAssignAdd},
	}
	for _, tc := range cases {
		t.Run(tc.src, func(t *testing.T) {
			root, rep := parseSource(t, tc.src)
			n := 0
			for _, d := range rep.Diagnostics() {
				if d.Message == msgInvalidAssignTarget {
					n++
				}
			}
			if n != 1 {
				t.Fatalf("%q diagnostics = %d, want exactly 1; all: %v",
					msgInvalidAssignTarget, n, rep.Diagnostics())
			}
			assign := firstOfKind(root, tc.kind)
			if assign == nil {
				t.Fatalf("no %v node in tree", tc.kind)
			}
			if got := assign.Child(0); got == nil || got.Kind != ir.KindCall {
				t.Errorf("target = %v, want call", got)
			}
			if got := assign.Child(1); got == nil || got.Kind != ir.KindNumber {
				t.Errorf("value = %v, want number", got)
			}
		})
	}
}

func TestValidation_ValidFormsQuiet(t *testing.T) {
	for _, src := range []string{
		"x++;",
		"--a.b;",
		"a[0] += 1;",
		"a.b.c = 1;",
		"[a, b] = c;",
		"({a, b} = c);",
		"delete a.b;",
		"delete a[0];",
		"delete x;",
	} {
		t.Run(src, func(t *testing.T) {
			_, rep := parseSource(t, src)
			if rep.ErrorCount() != 0 {
				t.Errorf("unexpected errors: %v", rep.Diagnostics())
			}
		})
	}
}
