// Copyright (C) 2026 Fathom Labs (engineering@fathomlabs.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package frontend

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/fathomlabs/jsfront/pkg/ir"
)

// transformTypeAnnotation converts a `: Type` annotation wrapper into the
// shared type-expression representation also produced by the JSDoc type
// grammar, so downstream consumers see one declared-type shape regardless
// of which syntax supplied it.
func (b *builder) transformTypeAnnotation(n *sitter.Node) *ir.TypeExpr {
	if n.Type() == cstTypeAnnotation {
		if inner := n.NamedChild(0); inner != nil {
			return b.transformType(inner)
		}
	}
	return b.transformType(n)
}

func (b *builder) transformType(t *sitter.Node) *ir.TypeExpr {
	if t == nil {
		return nil
	}
	switch t.Type() {
	case cstPredefinedType, cstTypeIdentifier, cstNestedTypeIdent, cstLiteralType:
		return b.typeName(t)

	case cstUnionType:
		union := &ir.TypeExpr{Kind: ir.TypeUnion, Pos: b.span(t)}
		b.flattenUnion(t, union)
		return union

	case cstGenericType:
		app := &ir.TypeExpr{Kind: ir.TypeApplication, Pos: b.span(t)}
		if name := t.ChildByFieldName(fieldName); name != nil {
			app.Name = b.text(name)
		}
		if args := t.ChildByFieldName(fieldTypeArguments); args != nil {
			for i := 0; i < int(args.NamedChildCount()); i++ {
				app.Children = append(app.Children, b.transformType(args.NamedChild(i)))
			}
		}
		return app

	case cstArrayType:
		app := &ir.TypeExpr{Kind: ir.TypeApplication, Name: "Array", Pos: b.span(t)}
		if elem := t.NamedChild(0); elem != nil {
			app.Children = append(app.Children, b.transformType(elem))
		}
		return app

	case cstParenthesizedType:
		return b.transformType(t.NamedChild(0))

	case cstObjectType:
		return b.transformObjectType(t)

	default:
		return b.typeName(t)
	}
}

func (b *builder) typeName(t *sitter.Node) *ir.TypeExpr {
	expr := ir.NewTypeName(b.text(t))
	expr.Pos = b.span(t)
	return expr
}

func (b *builder) flattenUnion(t *sitter.Node, union *ir.TypeExpr) {
	for i := 0; i < int(t.NamedChildCount()); i++ {
		c := t.NamedChild(i)
		if c.Type() == cstUnionType {
			b.flattenUnion(c, union)
		} else {
			union.Children = append(union.Children, b.transformType(c))
		}
	}
}

// transformObjectType converts `{a: T, b: U}` into a record type whose
// children are named field entries.
func (b *builder) transformObjectType(t *sitter.Node) *ir.TypeExpr {
	record := &ir.TypeExpr{Kind: ir.TypeRecord, Pos: b.span(t)}
	for i := 0; i < int(t.NamedChildCount()); i++ {
		c := t.NamedChild(i)
		if c.Type() != cstPropertySignature {
			continue
		}
		field := &ir.TypeExpr{Kind: ir.TypeName, Pos: b.span(c)}
		if name := c.ChildByFieldName(fieldName); name != nil {
			field.Name = b.text(name)
		}
		if ann := c.ChildByFieldName(fieldType); ann != nil {
			if ft := b.transformTypeAnnotation(ann); ft != nil {
				field.Children = append(field.Children, ft)
			}
		}
		record.Children = append(record.Children, field)
	}
	return record
}
