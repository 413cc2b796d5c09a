// Copyright (C) 2026 Fathom Labs (engineering@fathomlabs.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package frontend

import (
	"context"
	"errors"
	"testing"

	"github.com/fathomlabs/jsfront/pkg/diag"
	"github.com/fathomlabs/jsfront/pkg/ir"
)

func parseSource(t *testing.T, src string) (*ir.Node, *diag.Reporter) {
	t.Helper()
	return parseWith(t, src, DefaultConfig())
}

func parseWith(t *testing.T, src string, cfg Config) (*ir.Node, *diag.Reporter) {
	t.Helper()
	rep := diag.NewReporter(cfg.Recovery)
	root, err := Parse(context.Background(), []byte(src), "test.js", cfg, rep)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", src, err)
	}
	if root == nil {
		t.Fatalf("Parse(%q) returned nil tree", src)
	}
	return root, rep
}

// firstOfKind returns the first node of the given kind in walk order.
func firstOfKind(root *ir.Node, kind ir.Kind) *ir.Node {
	var found *ir.Node
	root.Walk(func(n *ir.Node) bool {
		if found == nil && n.Kind == kind {
			found = n
		}
		return found == nil
	})
	return found
}

func TestParse_EmptyScript(t *testing.T) {
	root, rep := parseSource(t, "")
	if root.Kind != ir.KindScript {
		t.Fatalf("root = %v, want script", root.Kind)
	}
	if len(root.Children) != 0 {
		t.Errorf("children = %d, want 0", len(root.Children))
	}
	if root.HasDirectives() {
		t.Error("empty script has no directive prologue")
	}
	if rep.Count() != 0 {
		t.Errorf("diagnostics = %d, want 0", rep.Count())
	}
}

func TestParse_Directives(t *testing.T) {
	root, _ := parseSource(t, "'use strict';\nvar x;")
	if !root.HasDirectives() {
		t.Fatal("expected a directive prologue")
	}
	if !root.HasDirective("use strict") {
		t.Error("missing use strict")
	}
}

func TestParse_NoDirectivesIsNil(t *testing.T) {
	root, _ := parseSource(t, "var x;\n'not a directive';")
	if root.HasDirectives() {
		t.Error("strings after the prologue are not directives")
	}
}

func TestParse_FunctionDirectives(t *testing.T) {
	root, _ := parseSource(t, "function f() { 'use asm'; return 1; }")
	fn := firstOfKind(root, ir.KindFunction)
	if fn == nil {
		t.Fatal("no function node")
	}
	if !fn.HasDirective("use asm") {
		t.Error("function prologue missed")
	}
	if root.HasDirectives() {
		t.Error("script itself has no prologue")
	}
}

func TestParse_VarDeclaration(t *testing.T) {
	root, rep := parseSource(t, "var x = 1, y;")
	if rep.Count() != 0 {
		t.Fatalf("diagnostics: %v", rep.Diagnostics())
	}
	v := firstOfKind(root, ir.KindVar)
	if v == nil {
		t.Fatal("no var node")
	}
	if len(v.Children) != 2 {
		t.Fatalf("declarators = %d, want 2", len(v.Children))
	}
	x := v.Child(0)
	if x.Kind != ir.KindName || x.Name != "x" {
		t.Errorf("declarator 0 = %v %q", x.Kind, x.Name)
	}
	if init := x.FirstChild(); init == nil || init.Kind != ir.KindNumber || init.Num != 1 {
		t.Errorf("initializer = %v", init)
	}
	if y := v.Child(1); len(y.Children) != 0 {
		t.Errorf("y should have no initializer")
	}
}

func TestParse_LetConst(t *testing.T) {
	root, _ := parseSource(t, "let a = 1; const b = 2;")
	if firstOfKind(root, ir.KindLet) == nil {
		t.Error("no let node")
	}
	if firstOfKind(root, ir.KindConst) == nil {
		t.Error("no const node")
	}
}

func TestParse_NegativeNumberFolds(t *testing.T) {
	root, rep := parseSource(t, "x = -2;")
	if rep.Count() != 0 {
		t.Fatalf("diagnostics: %v", rep.Diagnostics())
	}
	if neg := firstOfKind(root, ir.KindNeg); neg != nil {
		t.Fatal("unary minus should fold into the literal")
	}
	num := firstOfKind(root, ir.KindNumber)
	if num == nil {
		t.Fatal("no number node")
	}
	if num.Num != -2 {
		t.Errorf("value = %v, want -2", num.Num)
	}
	// The literal's span covers the minus sign through the digits.
	if num.Pos.Col != 4 {
		t.Errorf("col = %d, want 4", num.Pos.Col)
	}
	if num.Pos.Length != 2 {
		t.Errorf("length = %d, want 2", num.Pos.Length)
	}
}

func TestParse_NegationOfNameDoesNotFold(t *testing.T) {
	root, _ := parseSource(t, "x = -y;")
	if firstOfKind(root, ir.KindNeg) == nil {
		t.Error("negation of a non-literal keeps its operator node")
	}
}

func TestParse_ArrayHoles(t *testing.T) {
	root, _ := parseSource(t, "var a = [1, , 2];")
	arr := firstOfKind(root, ir.KindArrayLit)
	if arr == nil {
		t.Fatal("no array literal")
	}
	if len(arr.Children) != 3 {
		t.Fatalf("elements = %d, want 3", len(arr.Children))
	}
	hole := arr.Child(1)
	if hole.Kind != ir.KindEmpty {
		t.Fatalf("middle element = %v, want empty", hole.Kind)
	}
	if hole.Pos.Length != 1 {
		t.Errorf("hole length = %d, want 1", hole.Pos.Length)
	}
}

func TestParse_ArrayHoles_Dense(t *testing.T) {
	root, _ := parseSource(t, "var a = [,,,b,,c];")
	arr := firstOfKind(root, ir.KindArrayLit)
	if arr == nil {
		t.Fatal("no array literal")
	}
	want := []ir.Kind{
		ir.KindEmpty, ir.KindEmpty, ir.KindEmpty,
		ir.KindName, ir.KindEmpty, ir.KindName,
	}
	if len(arr.Children) != len(want) {
		t.Fatalf("elements = %d, want %d", len(arr.Children), len(want))
	}
	for i, k := range want {
		if arr.Child(i).Kind != k {
			t.Errorf("element %d = %v, want %v", i, arr.Child(i).Kind, k)
		}
	}
}

func TestParse_NestedLabels(t *testing.T) {
	root, _ := parseSource(t, "Foo:Bar:X:{ break Bar; }")
	outer := firstOfKind(root, ir.KindLabel)
	if outer == nil {
		t.Fatal("no label node")
	}
	names := []string{}
	n := outer
	for n != nil && n.Kind == ir.KindLabel {
		names = append(names, n.Child(0).Name)
		n = n.Child(1)
	}
	if len(names) != 3 || names[0] != "Foo" || names[1] != "Bar" || names[2] != "X" {
		t.Errorf("label chain = %v", names)
	}
	if n == nil || n.Kind != ir.KindBlock {
		t.Fatalf("innermost body = %v, want block", n)
	}
	brk := firstOfKind(n, ir.KindBreak)
	if brk == nil || brk.FirstChild() == nil || brk.FirstChild().Name != "Bar" {
		t.Errorf("break target = %v", brk)
	}
}

func TestParse_CommaChainLeftAssociative(t *testing.T) {
	root, _ := parseSource(t, "a, b, c;")
	outer := firstOfKind(root, ir.KindComma)
	if outer == nil {
		t.Fatal("no comma node")
	}
	// (a, b, c) builds as comma(comma(a, b), c).
	inner := outer.Child(0)
	if inner.Kind != ir.KindComma {
		t.Fatalf("left child = %v, want comma", inner.Kind)
	}
	if inner.Child(0).Name != "a" || inner.Child(1).Name != "b" || outer.Child(1).Name != "c" {
		t.Error("operand order wrong")
	}
	// Outer span covers a through c, inner covers a through b.
	if outer.Pos.Col != 0 || outer.Pos.Length != 7 {
		t.Errorf("outer span = %+v", outer.Pos)
	}
	if inner.Pos.Col != 0 || inner.Pos.Length != 4 {
		t.Errorf("inner span = %+v", inner.Pos)
	}
}

func TestParse_GetProp(t *testing.T) {
	root, _ := parseSource(t, "foo.bar;")
	gp := firstOfKind(root, ir.KindGetProp)
	if gp == nil {
		t.Fatal("no getprop")
	}
	if gp.Child(0).Name != "foo" {
		t.Errorf("object = %q", gp.Child(0).Name)
	}
	prop := gp.Child(1)
	if prop.Kind != ir.KindString || prop.Name != "bar" {
		t.Errorf("property = %v %q", prop.Kind, prop.Name)
	}
}

func TestParse_QuotedKeyFidelity(t *testing.T) {
	root, _ := parseSource(t, "var o = {'a': 1, b: 2, 3: 4};")
	obj := firstOfKind(root, ir.KindObjectLit)
	if obj == nil {
		t.Fatal("no object literal")
	}
	if len(obj.Children) != 3 {
		t.Fatalf("members = %d, want 3", len(obj.Children))
	}
	quoted := obj.Child(0)
	if quoted.Name != "a" || quoted.Flags&ir.FlagQuoted == 0 {
		t.Errorf("'a' should be a quoted key: %q flags=%b", quoted.Name, quoted.Flags)
	}
	if plain := obj.Child(1); plain.Name != "b" || plain.Flags&ir.FlagQuoted != 0 {
		t.Errorf("b should be unquoted: %q flags=%b", plain.Name, plain.Flags)
	}
	if num := obj.Child(2); num.Name != "3" || num.Flags&ir.FlagQuoted != 0 {
		t.Errorf("3 should be unquoted: %q flags=%b", num.Name, num.Flags)
	}
}

func TestParse_GetterSetter(t *testing.T) {
	root, _ := parseSource(t, "var o = {get foo() { return 1; }, set foo(v) {}};")
	getter := firstOfKind(root, ir.KindGetterDef)
	if getter == nil {
		t.Fatal("no getter")
	}
	if getter.Name != "foo" {
		t.Errorf("getter name = %q", getter.Name)
	}
	fn := getter.FirstChild()
	if fn == nil || fn.Kind != ir.KindFunction {
		t.Fatalf("getter child = %v, want function", fn)
	}
	if fn.Child(0).Name != "" {
		t.Error("accessor function is anonymous")
	}
	setter := firstOfKind(root, ir.KindSetterDef)
	if setter == nil {
		t.Fatal("no setter")
	}
	if params := setter.FirstChild().Child(1); len(params.Children) != 1 {
		t.Errorf("setter params = %d, want 1", len(params.Children))
	}
}

func TestParse_Switch(t *testing.T) {
	src := "switch (x) { case 1: f(); default: }"
	root, _ := parseSource(t, src)
	sw := firstOfKind(root, ir.KindSwitch)
	if sw == nil {
		t.Fatal("no switch")
	}
	if len(sw.Children) != 3 {
		t.Fatalf("switch children = %d, want 3", len(sw.Children))
	}
	if sw.Child(0).Name != "x" {
		t.Errorf("discriminant = %q", sw.Child(0).Name)
	}

	c := sw.Child(1)
	if c.Kind != ir.KindCase {
		t.Fatalf("clause = %v, want case", c.Kind)
	}
	// Span runs from the case keyword to the end of the test.
	if c.Pos.Length != len("case 1") {
		t.Errorf("case length = %d, want %d", c.Pos.Length, len("case 1"))
	}
	if c.Child(0).Kind != ir.KindNumber {
		t.Errorf("test = %v", c.Child(0).Kind)
	}
	if block := c.Child(1); block.Kind != ir.KindBlock || len(block.Children) != 1 {
		t.Errorf("case body = %v", block)
	}

	d := sw.Child(2)
	if d.Kind != ir.KindDefaultCase {
		t.Fatalf("clause = %v, want default", d.Kind)
	}
	if d.Pos.Length != len("default") {
		t.Errorf("default length = %d", d.Pos.Length)
	}
	if block := d.Child(0); block.Kind != ir.KindBlock || len(block.Children) != 0 || block.Pos.Length != 0 {
		t.Errorf("default body = %v", block)
	}
}

func TestParse_TryAlwaysThreeChildren(t *testing.T) {
	root, _ := parseSource(t, "try { a(); } catch (e) { b(); }")
	try := firstOfKind(root, ir.KindTry)
	if try == nil {
		t.Fatal("no try")
	}
	if len(try.Children) != 3 {
		t.Fatalf("try children = %d, want 3", len(try.Children))
	}
	if try.Child(0).Kind != ir.KindBlock {
		t.Errorf("child 0 = %v", try.Child(0).Kind)
	}
	catch := try.Child(1)
	if catch.Kind != ir.KindCatch {
		t.Fatalf("child 1 = %v, want catch", catch.Kind)
	}
	if catch.Child(0).Name != "e" {
		t.Errorf("catch param = %q", catch.Child(0).Name)
	}
	fin := try.Child(2)
	if fin.Kind != ir.KindEmpty || fin.Pos.Length != 0 {
		t.Errorf("absent finally = %v %+v", fin.Kind, fin.Pos)
	}
}

func TestParse_TryFinallyNoCatch(t *testing.T) {
	root, _ := parseSource(t, "try { a(); } finally { c(); }")
	try := firstOfKind(root, ir.KindTry)
	if len(try.Children) != 3 {
		t.Fatalf("try children = %d, want 3", len(try.Children))
	}
	if try.Child(1).Kind != ir.KindEmpty {
		t.Errorf("absent catch = %v", try.Child(1).Kind)
	}
	if try.Child(2).Kind != ir.KindBlock {
		t.Errorf("finally = %v", try.Child(2).Kind)
	}
	// The catch placeholder sits right after the try block.
	if try.Child(1).Pos.Col != len("try { a(); }") {
		t.Errorf("placeholder col = %d", try.Child(1).Pos.Col)
	}
}

func TestParse_ForEmptyClauses(t *testing.T) {
	root, _ := parseSource(t, "for (;;) {}")
	f := firstOfKind(root, ir.KindFor)
	if f == nil {
		t.Fatal("no for")
	}
	if len(f.Children) != 4 {
		t.Fatalf("for children = %d, want 4", len(f.Children))
	}
	for i := 0; i < 3; i++ {
		if f.Child(i).Kind != ir.KindEmpty {
			t.Errorf("clause %d = %v, want empty", i, f.Child(i).Kind)
		}
	}
	if f.Child(3).Kind != ir.KindBlock {
		t.Errorf("body = %v", f.Child(3).Kind)
	}
}

func TestParse_ForIn(t *testing.T) {
	root, _ := parseSource(t, "for (var k in o) {}")
	fi := firstOfKind(root, ir.KindForIn)
	if fi == nil {
		t.Fatal("no for-in")
	}
	target := fi.Child(0)
	if target.Kind != ir.KindVar {
		t.Fatalf("target = %v, want var wrapper", target.Kind)
	}
	if target.FirstChild().Name != "k" {
		t.Errorf("bound name = %q", target.FirstChild().Name)
	}
	if fi.Child(1).Name != "o" {
		t.Errorf("object = %q", fi.Child(1).Name)
	}
}

func TestParse_ForOf(t *testing.T) {
	root, _ := parseSource(t, "for (const v of arr) {}")
	fo := firstOfKind(root, ir.KindForOf)
	if fo == nil {
		t.Fatal("no for-of")
	}
	if fo.Child(0).Kind != ir.KindConst {
		t.Errorf("target wrapper = %v", fo.Child(0).Kind)
	}
}

func TestParse_FunctionShape(t *testing.T) {
	root, _ := parseSource(t, "function f(a, b) { return a; }")
	fn := firstOfKind(root, ir.KindFunction)
	if fn == nil {
		t.Fatal("no function")
	}
	if len(fn.Children) != 3 {
		t.Fatalf("function children = %d, want 3", len(fn.Children))
	}
	if fn.Child(0).Name != "f" {
		t.Errorf("name = %q", fn.Child(0).Name)
	}
	params := fn.Child(1)
	if params.Kind != ir.KindParamList || len(params.Children) != 2 {
		t.Fatalf("params = %v", params)
	}
	if fn.Child(2).Kind != ir.KindBlock {
		t.Errorf("body = %v", fn.Child(2).Kind)
	}
}

func TestParse_MidSignatureDocComment(t *testing.T) {
	root, rep := parseSource(t, "function /** string */ foo() { return 'hello'; }")
	if rep.Count() != 0 {
		t.Fatalf("diagnostics: %v", rep.Diagnostics())
	}
	fn := firstOfKind(root, ir.KindFunction)
	if fn == nil {
		t.Fatal("no function")
	}
	name := fn.Child(0)
	if name.Name != "foo" {
		t.Fatalf("name = %q", name.Name)
	}
	if name.Doc == nil {
		t.Fatal("doc comment between keyword and name not attached")
	}
	if name.Doc.Raw != "/** string */" {
		t.Errorf("raw = %q", name.Doc.Raw)
	}
	if !name.Doc.HasType() || name.Doc.Type.String() != "string" {
		t.Errorf("type = %v", name.Doc.Type)
	}
	if fn.Doc != nil {
		t.Error("comment must not leak onto the function itself")
	}
}

func TestParse_ArrowFunction(t *testing.T) {
	root, _ := parseSource(t, "var g = x => x + 1;")
	fn := firstOfKind(root, ir.KindFunction)
	if fn == nil {
		t.Fatal("no arrow function node")
	}
	if fn.Child(0).Name != "" {
		t.Error("arrow is anonymous")
	}
	if params := fn.Child(1); len(params.Children) != 1 || params.Child(0).Name != "x" {
		t.Errorf("params = %v", params)
	}
	if fn.Child(2).Kind != ir.KindAdd {
		t.Errorf("expression body = %v", fn.Child(2).Kind)
	}
}

func TestParse_ParenthesizedFlag(t *testing.T) {
	root, _ := parseSource(t, "(x);")
	name := firstOfKind(root, ir.KindName)
	if name == nil {
		t.Fatal("no name")
	}
	if !name.IsParenthesized() {
		t.Error("parenthesized flag missing")
	}
}

func TestParse_TemplateLiteral(t *testing.T) {
	root, _ := parseSource(t, "var s = `a${b}c`;")
	tpl := firstOfKind(root, ir.KindTemplateLit)
	if tpl == nil {
		t.Fatal("no template literal")
	}
	if tpl.Str != "`a${b}c`" {
		t.Errorf("raw = %q", tpl.Str)
	}
	if len(tpl.Children) != 1 || tpl.Children[0].Name != "b" {
		t.Errorf("substitutions = %v", tpl.Children)
	}
}

func TestParse_StringLiteral(t *testing.T) {
	root, _ := parseSource(t, `x = "a\nb";`)
	s := firstOfKind(root, ir.KindString)
	if s == nil {
		t.Fatal("no string")
	}
	if s.Str != `"a\nb"` {
		t.Errorf("raw = %q", s.Str)
	}
	if s.Name != "a\nb" {
		t.Errorf("cooked = %q", s.Name)
	}
}

func TestParse_SpanSanity(t *testing.T) {
	src := `'use strict';
function outer(a, b) {
  var nums = [1, , -2];
  for (var i = 0; i < nums.length; i++) {
    try { a(nums[i]); } catch (e) { b(e); }
  }
  switch (a) { case 1: break; default: return {x: 1, 'y': 2}; }
}
`
	root, _ := parseSource(t, src)
	root.Walk(func(n *ir.Node) bool {
		if n.Pos.Length < 0 {
			t.Errorf("negative span length on %v: %+v", n.Kind, n.Pos)
		}
		if n.Pos.Line < 0 || n.Pos.Col < 0 {
			t.Errorf("negative position on %v: %+v", n.Kind, n.Pos)
		}
		return true
	})
}

func TestParse_ExprResultTrimsSemicolon(t *testing.T) {
	root, _ := parseSource(t, "x = 1;")
	er := firstOfKind(root, ir.KindExprResult)
	if er == nil {
		t.Fatal("no expression statement")
	}
	if er.Pos.Length != 5 {
		t.Errorf("length = %d, want 5 (semicolon excluded)", er.Pos.Length)
	}
}

func TestParse_StopOnFirstError(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Recovery = diag.StopOnFirstError
	rep := diag.NewReporter(diag.StopOnFirstError)

	root, err := Parse(context.Background(), []byte("f()++;"), "test.js", cfg, rep)
	if !errors.Is(err, diag.ErrStopped) {
		t.Fatalf("err = %v, want ErrStopped", err)
	}
	if root != nil {
		t.Error("no partial tree in stop mode")
	}
	if rep.ErrorCount() != 1 {
		t.Errorf("errors = %d, want 1", rep.ErrorCount())
	}
}

func TestParse_InvalidUTF8(t *testing.T) {
	rep := diag.NewReporter(diag.KeepGoing)
	_, err := Parse(context.Background(), []byte{0xff, 0xfe}, "bad.js", DefaultConfig(), rep)
	if !errors.Is(err, ErrInvalidContent) {
		t.Errorf("err = %v, want ErrInvalidContent", err)
	}
}

func TestParse_NilContent(t *testing.T) {
	rep := diag.NewReporter(diag.KeepGoing)
	_, err := Parse(context.Background(), nil, "nil.js", DefaultConfig(), rep)
	if !errors.Is(err, ErrInvalidContent) {
		t.Errorf("err = %v, want ErrInvalidContent", err)
	}
}

func TestParse_FileTooLarge(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxFileSize = 4
	rep := diag.NewReporter(diag.KeepGoing)
	_, err := Parse(context.Background(), []byte("var xyz = 1;"), "big.js", cfg, rep)
	if !errors.Is(err, ErrFileTooLarge) {
		t.Errorf("err = %v, want ErrFileTooLarge", err)
	}
}

func TestParse_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rep := diag.NewReporter(diag.KeepGoing)
	_, err := Parse(ctx, []byte("var x;"), "c.js", DefaultConfig(), rep)
	if err == nil {
		t.Error("expected error for canceled context")
	}
}

func TestBuild_NilTree(t *testing.T) {
	rep := diag.NewReporter(diag.KeepGoing)
	_, err := Build(context.Background(), nil, nil, DefaultConfig(), rep)
	if !errors.Is(err, ErrNilTree) {
		t.Errorf("err = %v, want ErrNilTree", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
	bad := DefaultConfig()
	bad.MaxFileSize = 0
	if err := bad.Validate(); err == nil {
		t.Error("zero MaxFileSize should fail validation")
	}
}
