// Copyright (C) 2026 Fathom Labs (engineering@fathomlabs.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package jsdoc

import (
	"testing"

	"github.com/fathomlabs/jsfront/pkg/ir"
	"github.com/fathomlabs/jsfront/pkg/source"
)

func parseAt(raw string) *ir.DocInfo {
	return Parse(raw, source.Position{Line: 1, Col: 0})
}

func TestParse_Markers(t *testing.T) {
	info := parseAt("/**\n * @param {number} x\n * @return {string}\n */")
	if len(info.Markers) != 2 {
		t.Fatalf("markers = %d, want 2", len(info.Markers))
	}
	if info.Markers[0].Annotation != "param" {
		t.Errorf("marker 0 = %q", info.Markers[0].Annotation)
	}
	if info.Markers[1].Annotation != "return" {
		t.Errorf("marker 1 = %q", info.Markers[1].Annotation)
	}
	if info.Markers[0].Line != 2 {
		t.Errorf("marker 0 line = %d, want 2", info.Markers[0].Line)
	}
	if info.Markers[1].Line != 3 {
		t.Errorf("marker 1 line = %d, want 3", info.Markers[1].Line)
	}
}

func TestParse_TypeTag(t *testing.T) {
	info := parseAt("/** @type {string} */")
	if !info.HasType() {
		t.Fatal("expected a declared type")
	}
	if got := info.Type.String(); got != "string" {
		t.Errorf("type = %q, want string", got)
	}
}

func TestParse_ParamTagIsNotDeclaredType(t *testing.T) {
	// @param carries a type for its parameter but does not declare the
	// annotated node's own type.
	info := parseAt("/** @param {number} x */")
	if info.HasType() {
		t.Errorf("@param should not set the declared type, got %v", info.Type)
	}
	if info.Marker("param") == nil {
		t.Error("missing param marker")
	}
}

func TestParse_Union(t *testing.T) {
	info := parseAt("/** @type {(string|number)} */")
	if !info.HasType() {
		t.Fatal("expected type")
	}
	if info.Type.Kind != ir.TypeUnion {
		t.Fatalf("kind = %v, want union", info.Type.Kind)
	}
	if len(info.Type.Children) != 2 {
		t.Fatalf("children = %d, want 2", len(info.Type.Children))
	}
	if info.Type.Children[0].Name != "string" || info.Type.Children[1].Name != "number" {
		t.Errorf("union = %s", info.Type)
	}
}

func TestParse_BareUnion(t *testing.T) {
	info := parseAt("/** @type {string|number} */")
	if info.Type == nil || info.Type.Kind != ir.TypeUnion {
		t.Fatalf("type = %v, want union", info.Type)
	}
}

func TestParse_Nullable(t *testing.T) {
	info := parseAt("/** @type {?string} */")
	if info.Type == nil || info.Type.Kind != ir.TypeNullable {
		t.Fatalf("type = %v, want nullable", info.Type)
	}
	if info.Type.Children[0].Name != "string" {
		t.Errorf("inner = %q", info.Type.Children[0].Name)
	}
}

func TestParse_NonNullable(t *testing.T) {
	info := parseAt("/** @type {!Object} */")
	if info.Type == nil || info.Type.Kind != ir.TypeNonNullable {
		t.Fatalf("type = %v, want non-nullable", info.Type)
	}
}

func TestParse_UnknownType(t *testing.T) {
	info := parseAt("/** @type {?} */")
	if info.Type == nil || info.Type.Kind != ir.TypeUnknown {
		t.Fatalf("type = %v, want unknown", info.Type)
	}
}

func TestParse_AllType(t *testing.T) {
	info := parseAt("/** @type {*} */")
	if info.Type == nil || info.Type.Kind != ir.TypeAll {
		t.Fatalf("type = %v, want all", info.Type)
	}
}

func TestParse_Application(t *testing.T) {
	info := parseAt("/** @type {Array<string>} */")
	if info.Type == nil || info.Type.Kind != ir.TypeApplication {
		t.Fatalf("type = %v, want application", info.Type)
	}
	if info.Type.Name != "Array" {
		t.Errorf("name = %q", info.Type.Name)
	}
	if len(info.Type.Children) != 1 || info.Type.Children[0].Name != "string" {
		t.Errorf("args = %v", info.Type.Children)
	}
}

func TestParse_Record(t *testing.T) {
	info := parseAt("/** @type {{name: string, age: number}} */")
	if info.Type == nil || info.Type.Kind != ir.TypeRecord {
		t.Fatalf("type = %v, want record", info.Type)
	}
	if len(info.Type.Children) != 2 {
		t.Fatalf("fields = %d, want 2", len(info.Type.Children))
	}
	if info.Type.Children[0].Name != "name" || info.Type.Children[1].Name != "age" {
		t.Errorf("record = %s", info.Type)
	}
}

func TestParse_FunctionType(t *testing.T) {
	info := parseAt("/** @type {function(string, number): boolean} */")
	if info.Type == nil || info.Type.Kind != ir.TypeFunction {
		t.Fatalf("type = %v, want function", info.Type)
	}
	if got := info.Type.String(); got != "function(string,number): boolean" {
		t.Errorf("rendered = %q", got)
	}
}

func TestParse_Optional(t *testing.T) {
	info := parseAt("/** @type {number=} */")
	if info.Type == nil || info.Type.Kind != ir.TypeOptional {
		t.Fatalf("type = %v, want optional", info.Type)
	}
}

func TestParse_Variadic(t *testing.T) {
	info := parseAt("/** @type {...number} */")
	if info.Type == nil || info.Type.Kind != ir.TypeVariadic {
		t.Fatalf("type = %v, want variadic", info.Type)
	}
}

func TestParse_FirstTypeTagWins(t *testing.T) {
	info := parseAt("/** @type {string} @type {number} */")
	if info.Type == nil || info.Type.Name != "string" {
		t.Errorf("type = %v, want string", info.Type)
	}
}

func TestParse_EnumAndConstCarryTypes(t *testing.T) {
	for _, tag := range []string{"enum", "const", "typedef"} {
		info := parseAt("/** @" + tag + " {number} */")
		if !info.HasType() {
			t.Errorf("@%s should carry a declared type", tag)
		}
	}
}

func TestParse_FreeFlowing(t *testing.T) {
	info := parseAt("/** Computes the sum of its inputs. */")
	if len(info.Markers) != 0 {
		t.Errorf("markers = %d, want 0", len(info.Markers))
	}
	if info.HasType() {
		t.Error("free-flowing comment should not carry a type")
	}
	if info.Raw == "" {
		t.Error("raw text must be preserved")
	}
}

func TestParseInline_Simple(t *testing.T) {
	info := ParseInline("/** string */", source.Position{Line: 1})
	if !info.HasType() {
		t.Fatal("expected type")
	}
	if info.Type.Name != "string" {
		t.Errorf("type = %v", info.Type)
	}
}

func TestParseInline_Union(t *testing.T) {
	info := ParseInline("/** string|number */", source.Position{Line: 1})
	if info.Type == nil || info.Type.Kind != ir.TypeUnion {
		t.Fatalf("type = %v, want union", info.Type)
	}
}

func TestParseInline_FallsBackToTagged(t *testing.T) {
	info := ParseInline("/** @type {string} */", source.Position{Line: 1})
	if !info.HasType() {
		t.Fatal("expected type from fallback parse")
	}
	if info.Marker("type") == nil {
		t.Error("fallback should record the marker")
	}
}

func TestParseInline_Empty(t *testing.T) {
	info := ParseInline("/** */", source.Position{Line: 1})
	if info.HasType() {
		t.Errorf("empty inline comment should carry no type, got %v", info.Type)
	}
}

func TestMarker_Lookup(t *testing.T) {
	info := parseAt("/** @constructor @extends {Base} */")
	if info.Marker("constructor") == nil {
		t.Error("missing constructor marker")
	}
	if info.Marker("extends") == nil {
		t.Error("missing extends marker")
	}
	if info.Marker("missing") != nil {
		t.Error("unexpected marker")
	}
}
