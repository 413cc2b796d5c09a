// Copyright (C) 2026 Fathom Labs (engineering@fathomlabs.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package frontend builds the canonical, position-annotated AST from the
// concrete syntax tree produced by the tree-sitter JavaScript/TypeScript
// grammars.
//
// One parse invocation is a pure function of (source text, concrete tree,
// language configuration, diagnostics reporter) to (AST, diagnostics): no
// component here holds process-wide mutable state, so independent parses
// can run concurrently as long as each uses its own reporter.
package frontend

import (
	"context"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/fathomlabs/jsfront/pkg/diag"
	"github.com/fathomlabs/jsfront/pkg/ir"
	"github.com/fathomlabs/jsfront/pkg/jsdoc"
	"github.com/fathomlabs/jsfront/pkg/source"
)

// Parse runs the grammar parser over content and builds the canonical AST.
// Syntax and validation problems are recorded on the reporter; the returned
// error is non-nil only for contract-level failures (invalid UTF-8, size,
// context cancellation) or a stop-on-first-error abort.
func Parse(ctx context.Context, content []byte, path string, cfg Config, rep *diag.Reporter) (*ir.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("frontend parse canceled before start: %w", err)
	}
	if content == nil || !utf8.Valid(content) {
		return nil, ErrInvalidContent
	}
	if cfg.MaxFileSize > 0 && int64(len(content)) > cfg.MaxFileSize {
		return nil, ErrFileTooLarge
	}

	parser := sitter.NewParser()
	if cfg.Mode.Typed() {
		parser.SetLanguage(typescript.GetLanguage())
	} else {
		parser.SetLanguage(javascript.GetLanguage())
	}

	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseFailed, err)
	}
	defer tree.Close()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("frontend parse canceled after grammar parse: %w", err)
	}

	return Build(ctx, tree.RootNode(), source.NewFile(path, content), cfg, rep)
}

// Build transforms a concrete tree into the canonical AST root. The input
// tree is assumed syntactically valid per the external grammar, though
// error-recovery placeholders are tolerated; semantic rejections become
// diagnostics and do not abort traversal unless the reporter is in
// stop-on-first-error mode, in which case Build returns diag.ErrStopped
// and no partial tree.
func Build(ctx context.Context, root *sitter.Node, file *source.File, cfg Config, rep *diag.Reporter) (node *ir.Node, err error) {
	if root == nil {
		return nil, ErrNilTree
	}
	if verr := cfg.Validate(); verr != nil {
		return nil, verr
	}

	start := time.Now()
	ctx, span := startSpan(ctx, "frontend.Build", file.Path)
	defer span.End()

	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(diag.StopSignal); ok {
				node, err = nil, diag.ErrStopped
				recordBuild(ctx, cfg.Mode, start, rep.Count(), true)
				return
			}
			panic(r)
		}
	}()

	b := &builder{file: file, cfg: cfg, rep: rep, log: cfg.logger()}
	if cfg.RecordComments {
		b.docs = collectDocComments(root, file)
	}

	script := b.transformScript(root)

	b.log.Debug("frontend build complete",
		"path", file.Path,
		"diagnostics", rep.Count(),
		"mode", cfg.Mode.String(),
	)
	recordBuild(ctx, cfg.Mode, start, rep.Count(), false)
	return script, nil
}

// builder drives one transformation. It owns the tree it constructs;
// nothing escapes until Build returns.
type builder struct {
	file *source.File
	cfg  Config
	rep  *diag.Reporter
	log  *slog.Logger
	docs *docMap

	// strict is the strict-mode context stack, one entry per script or
	// function scope.
	strict []bool
}

func (b *builder) text(n *sitter.Node) string {
	return n.Content(b.file.Content)
}

func (b *builder) span(n *sitter.Node) source.Span {
	return b.file.Span(int(n.StartByte()), int(n.EndByte()))
}

func (b *builder) pos(n *sitter.Node) source.Position {
	return b.file.Position(int(n.StartByte()))
}

func (b *builder) newNode(kind ir.Kind, n *sitter.Node) *ir.Node {
	return &ir.Node{Kind: kind, File: b.file, Pos: b.span(n)}
}

// emptyAt synthesizes a placeholder with the given span.
func (b *builder) emptyAt(span source.Span) *ir.Node {
	return &ir.Node{Kind: ir.KindEmpty, File: b.file, Pos: span}
}

func (b *builder) errorAt(message string, pos source.Position) {
	b.rep.Error(message, b.file.Path, pos)
}

func (b *builder) warningAt(message string, pos source.Position) {
	b.rep.Warning(message, b.file.Path, pos)
}

func (b *builder) inStrict() bool {
	if b.cfg.Strict != Sloppy {
		return true
	}
	for i := len(b.strict) - 1; i >= 0; i-- {
		if b.strict[i] {
			return true
		}
	}
	return false
}

func (b *builder) pushScope(directives map[string]bool) {
	b.strict = append(b.strict, directives["use strict"])
}

func (b *builder) popScope() {
	b.strict = b.strict[:len(b.strict)-1]
}

// stmtSpan is a statement's span with any trailing semicolon (and the
// whitespace before it) excluded: the grammar attaches the semicolon
// inside the statement node, the canonical tree does not.
func (b *builder) stmtSpan(n *sitter.Node) source.Span {
	start := int(n.StartByte())
	end := int(n.EndByte())
	if last := n.Child(int(n.ChildCount()) - 1); last != nil && last.Type() == ";" {
		end = int(last.StartByte())
		for end > start && (b.file.Content[end-1] == ' ' || b.file.Content[end-1] == '\t') {
			end--
		}
	}
	return b.file.Span(start, end)
}

// scanDirectives collects the directive prologue of a script or function
// body: leading expression statements that are single string literals.
// nil means no prologue at all, which callers distinguish from an empty
// set.
func (b *builder) scanDirectives(body *sitter.Node) map[string]bool {
	var set map[string]bool
	for i := 0; i < int(body.NamedChildCount()); i++ {
		c := body.NamedChild(i)
		if c.Type() == cstComment {
			continue
		}
		if c.Type() != cstExpressionStatement {
			break
		}
		e := c.NamedChild(0)
		if e == nil || e.Type() != cstString {
			break
		}
		if set == nil {
			set = make(map[string]bool)
		}
		set[cookString(b.text(e))] = true
	}
	return set
}

func (b *builder) transformScript(root *sitter.Node) *ir.Node {
	script := b.newNode(ir.KindScript, root)
	script.Directives = b.scanDirectives(root)
	b.pushScope(script.Directives)
	defer b.popScope()
	script.Children = b.transformStatementList(root)
	return script
}

// transformStatementList transforms the named statement children of a
// script or block, attaching any documentation comment that immediately
// precedes a statement.
func (b *builder) transformStatementList(parent *sitter.Node) []*ir.Node {
	var stmts []*ir.Node
	for i := 0; i < int(parent.NamedChildCount()); i++ {
		c := parent.NamedChild(i)
		if c.Type() == cstComment {
			continue
		}
		stmt := b.transformStatement(c)
		if stmt == nil {
			continue
		}
		b.attachDoc(stmt, c)
		b.checkDocTypeConflict(stmt)
		stmts = append(stmts, stmt)
	}
	return stmts
}

// attachDoc attaches the doc comment immediately preceding the construct.
func (b *builder) attachDoc(node *ir.Node, cst *sitter.Node) {
	if node == nil || b.docs == nil || node.Doc != nil {
		return
	}
	c := b.docs.takeFor(int(cst.StartByte()))
	if c == nil {
		return
	}
	info := jsdoc.Parse(c.text, c.pos)
	if len(info.Markers) == 0 {
		node.Flags |= ir.FlagFreeFlowing
	}
	node.Doc = info
}

// checkDocTypeConflict reports the JSDoc/inline-type exclusivity violation
// for declarations whose statement-level doc comment declares a type while
// a declarator carries an inline annotation.
func (b *builder) checkDocTypeConflict(stmt *ir.Node) {
	if !stmt.Doc.HasType() {
		return
	}
	switch stmt.Kind {
	case ir.KindVar, ir.KindLet, ir.KindConst:
		for _, d := range stmt.Children {
			if d.DeclaredType != nil {
				b.rep.Error(msgBadTypeSyntax, b.file.Path, d.Pos.Start())
				return
			}
		}
	}
}

func (b *builder) transformStatement(n *sitter.Node) *ir.Node {
	switch n.Type() {
	case cstExpressionStatement:
		node := &ir.Node{Kind: ir.KindExprResult, File: b.file, Pos: b.stmtSpan(n)}
		if e := b.transformStatementExpr(n); e != nil {
			node.Append(e)
		}
		return node

	case cstStatementBlock:
		return b.transformBlock(n)

	case cstEmptyStatement:
		return b.newNode(ir.KindEmpty, n)

	case cstVariableDeclaration, cstLexicalDeclaration:
		return b.transformDeclaration(n)

	case cstIfStatement:
		return b.transformIf(n)

	case cstWhileStatement:
		cond := b.transformCondition(n.ChildByFieldName(fieldCondition))
		body := b.transformStatement(n.ChildByFieldName(fieldBody))
		return b.newNode(ir.KindWhile, n).Append(cond, body)

	case cstDoStatement:
		body := b.transformStatement(n.ChildByFieldName(fieldBody))
		cond := b.transformCondition(n.ChildByFieldName(fieldCondition))
		node := &ir.Node{Kind: ir.KindDo, File: b.file, Pos: b.stmtSpan(n)}
		return node.Append(body, cond)

	case cstForStatement:
		return b.transformFor(n)

	case cstForInStatement:
		return b.transformForIn(n)

	case cstReturnStatement:
		node := &ir.Node{Kind: ir.KindReturn, File: b.file, Pos: b.stmtSpan(n)}
		if e := n.NamedChild(0); e != nil && e.Type() != cstComment {
			node.Append(b.transformExpression(e))
		}
		return node

	case cstThrowStatement:
		node := &ir.Node{Kind: ir.KindThrow, File: b.file, Pos: b.stmtSpan(n)}
		if e := n.NamedChild(0); e != nil && e.Type() != cstComment {
			node.Append(b.transformExpression(e))
		}
		return node

	case cstTryStatement:
		return b.transformTry(n)

	case cstSwitchStatement:
		return b.transformSwitch(n)

	case cstBreakStatement, cstContinueStatement:
		kind := ir.KindBreak
		if n.Type() == cstContinueStatement {
			kind = ir.KindContinue
		}
		node := &ir.Node{Kind: kind, File: b.file, Pos: b.stmtSpan(n)}
		if label := n.ChildByFieldName(fieldLabel); label != nil {
			name := b.newNode(ir.KindLabelName, label)
			name.Name = b.text(label)
			node.Append(name)
		}
		return node

	case cstLabeledStatement:
		return b.transformLabel(n)

	case cstWithStatement:
		obj := b.transformCondition(n.ChildByFieldName(fieldObject))
		body := b.transformStatement(n.ChildByFieldName(fieldBody))
		return b.newNode(ir.KindWith, n).Append(obj, body)

	case cstDebuggerStatement:
		return &ir.Node{Kind: ir.KindDebugger, File: b.file, Pos: b.stmtSpan(n)}

	case cstFunctionDeclaration, cstGeneratorFunctionDeclaration:
		return b.transformFunction(n)

	case cstError:
		expr := b.transformError(n)
		if expr.Kind == ir.KindEmpty {
			return expr
		}
		return b.newNode(ir.KindExprResult, n).Append(expr)

	case cstComment:
		return nil

	default:
		b.warningAt(fmt.Sprintf("unsupported syntax: %s", n.Type()), b.pos(n))
		return b.newNode(ir.KindEmpty, n)
	}
}

func (b *builder) transformBlock(n *sitter.Node) *ir.Node {
	block := b.newNode(ir.KindBlock, n)
	block.Children = b.transformStatementList(n)
	return block
}

// transformCondition unwraps the grammar's parenthesized condition wrapper
// without marking the inner expression as parenthesized: the parentheses
// are part of the statement syntax, not of the expression.
func (b *builder) transformCondition(n *sitter.Node) *ir.Node {
	if n == nil {
		return b.emptyAt(source.Span{Line: 1})
	}
	if n.Type() == cstParenthesized {
		if inner := n.NamedChild(0); inner != nil {
			return b.transformExpression(inner)
		}
	}
	return b.transformExpression(n)
}

func (b *builder) transformIf(n *sitter.Node) *ir.Node {
	cond := b.transformCondition(n.ChildByFieldName(fieldCondition))
	then := b.transformStatement(n.ChildByFieldName(fieldConsequence))
	node := b.newNode(ir.KindIf, n).Append(cond, then)
	if alt := n.ChildByFieldName(fieldAlternative); alt != nil {
		if alt.Type() == cstElseClause {
			if body := alt.NamedChild(0); body != nil {
				node.Append(b.transformStatement(body))
			}
		} else {
			node.Append(b.transformStatement(alt))
		}
	}
	return node
}

func (b *builder) transformDeclaration(n *sitter.Node) *ir.Node {
	kind := ir.KindVar
	if n.Type() == cstLexicalDeclaration {
		if first := n.Child(0); first != nil && first.Type() == "const" {
			kind = ir.KindConst
		} else {
			kind = ir.KindLet
		}
		if b.cfg.Mode < ES6 {
			// Pre-ES6 dialects treat let/const as var.
			kind = ir.KindVar
		}
	}
	node := &ir.Node{Kind: kind, File: b.file, Pos: b.stmtSpan(n)}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		c := n.NamedChild(i)
		if c.Type() != cstVariableDeclarator {
			continue
		}
		node.Append(b.transformDeclarator(c))
	}
	return node
}

func (b *builder) transformDeclarator(d *sitter.Node) *ir.Node {
	nameN := d.ChildByFieldName(fieldName)
	typeN := d.ChildByFieldName(fieldType)
	valueN := d.ChildByFieldName(fieldValue)

	target := b.transformPattern(nameN)
	b.attachInlineDoc(target, nameN)

	if typeN != nil {
		if target.Doc.HasType() {
			b.errorAt(msgBadTypeSyntax, b.pos(typeN))
		} else {
			target.DeclaredType = b.transformTypeAnnotation(typeN)
		}
	}
	if target.Kind == ir.KindArrayPattern || target.Kind == ir.KindObjectPattern {
		wrap := b.newNode(ir.KindDestructuringDecl, d).Append(target)
		if valueN != nil {
			wrap.Append(b.transformExpression(valueN))
		}
		return wrap
	}
	if valueN != nil {
		target.Append(b.transformExpression(valueN))
	}
	return target
}

// attachInlineDoc attaches an inline doc comment (`var /** string */ x`)
// to a declarator or parameter target.
func (b *builder) attachInlineDoc(node *ir.Node, cst *sitter.Node) {
	if node == nil || cst == nil || b.docs == nil || !b.cfg.RecordDocs {
		return
	}
	c := b.docs.takeFor(int(cst.StartByte()))
	if c == nil {
		return
	}
	node.Doc = jsdoc.ParseInline(c.text, c.pos)
}

func (b *builder) transformFor(n *sitter.Node) *ir.Node {
	node := b.newNode(ir.KindFor, n)

	init := n.ChildByFieldName(fieldInitializer)
	switch {
	case init == nil:
		node.Append(b.emptyAfterToken(n, "("))
	case init.Type() == cstEmptyStatement:
		node.Append(b.newNode(ir.KindEmpty, init))
	case init.Type() == cstVariableDeclaration, init.Type() == cstLexicalDeclaration:
		node.Append(b.transformDeclaration(init))
	case init.Type() == cstExpressionStatement:
		if e := init.NamedChild(0); e != nil {
			node.Append(b.transformExpression(e))
		} else {
			node.Append(b.newNode(ir.KindEmpty, init))
		}
	default:
		node.Append(b.transformExpression(init))
	}

	cond := n.ChildByFieldName(fieldCondition)
	switch {
	case cond == nil || cond.Type() == cstEmptyStatement:
		if cond == nil {
			node.Append(b.emptyAfterToken(n, ";"))
		} else {
			node.Append(b.newNode(ir.KindEmpty, cond))
		}
	case cond.Type() == cstExpressionStatement:
		if e := cond.NamedChild(0); e != nil {
			node.Append(b.transformExpression(e))
		} else {
			node.Append(b.newNode(ir.KindEmpty, cond))
		}
	default:
		node.Append(b.transformExpression(cond))
	}

	if incr := n.ChildByFieldName(fieldIncrement); incr != nil {
		node.Append(b.transformExpression(incr))
	} else {
		node.Append(b.emptyBeforeToken(n, ")"))
	}

	node.Append(b.transformStatement(n.ChildByFieldName(fieldBody)))
	return node
}

// emptyAfterToken synthesizes a zero-length placeholder right after the
// first child token of the given type.
func (b *builder) emptyAfterToken(n *sitter.Node, tok string) *ir.Node {
	for i := 0; i < int(n.ChildCount()); i++ {
		if c := n.Child(i); c.Type() == tok {
			return b.emptyAt(b.file.PointSpan(int(c.EndByte())))
		}
	}
	return b.emptyAt(b.file.PointSpan(int(n.StartByte())))
}

// emptyBeforeToken synthesizes a zero-length placeholder right before the
// last child token of the given type.
func (b *builder) emptyBeforeToken(n *sitter.Node, tok string) *ir.Node {
	for i := int(n.ChildCount()) - 1; i >= 0; i-- {
		if c := n.Child(i); c.Type() == tok {
			return b.emptyAt(b.file.PointSpan(int(c.StartByte())))
		}
	}
	return b.emptyAt(b.file.PointSpan(int(n.EndByte())))
}

func (b *builder) transformForIn(n *sitter.Node) *ir.Node {
	kind := ir.KindForIn
	var declKind *sitter.Node
	for i := 0; i < int(n.ChildCount()); i++ {
		switch c := n.Child(i); c.Type() {
		case "of":
			kind = ir.KindForOf
		case "var", "let", "const":
			declKind = c
		}
	}

	left := n.ChildByFieldName(fieldLeft)
	target := b.transformPattern(left)
	if declKind != nil {
		wrapKind := ir.KindVar
		switch declKind.Type() {
		case "let":
			wrapKind = ir.KindLet
		case "const":
			wrapKind = ir.KindConst
		}
		wrap := &ir.Node{
			Kind: wrapKind,
			File: b.file,
			Pos:  b.file.Span(int(declKind.StartByte()), int(left.EndByte())),
		}
		target = wrap.Append(target)
	}

	object := b.transformExpression(n.ChildByFieldName(fieldRight))
	body := b.transformStatement(n.ChildByFieldName(fieldBody))
	return b.newNode(kind, n).Append(target, object, body)
}

// transformTry always emits three children in fixed order; an absent
// catch or finally becomes a zero-length placeholder immediately after
// the preceding present block.
func (b *builder) transformTry(n *sitter.Node) *ir.Node {
	bodyN := n.ChildByFieldName(fieldBody)
	tryBlock := b.transformBlock(bodyN)
	node := b.newNode(ir.KindTry, n).Append(tryBlock)

	afterPrevious := int(bodyN.EndByte())

	handler := n.ChildByFieldName(fieldHandler)
	if handler != nil {
		catchNode := b.newNode(ir.KindCatch, handler)
		if param := handler.ChildByFieldName(fieldParameter); param != nil {
			catchNode.Append(b.transformPattern(param))
		} else {
			catchNode.Append(b.emptyAt(b.file.PointSpan(int(handler.StartByte()))))
		}
		catchNode.Append(b.transformBlock(handler.ChildByFieldName(fieldBody)))
		node.Append(catchNode)
		afterPrevious = int(handler.EndByte())
	} else {
		node.Append(b.emptyAt(b.file.PointSpan(afterPrevious)))
	}

	if finalizer := n.ChildByFieldName(fieldFinalizer); finalizer != nil {
		node.Append(b.transformBlock(finalizer.ChildByFieldName(fieldBody)))
	} else {
		node.Append(b.emptyAt(b.file.PointSpan(afterPrevious)))
	}
	return node
}

// transformSwitch emits the discriminant and each clause as siblings; a
// clause's span covers its keyword through its test, and its statement
// list is a block sibling of the test under the clause node.
func (b *builder) transformSwitch(n *sitter.Node) *ir.Node {
	node := b.newNode(ir.KindSwitch, n)
	node.Append(b.transformCondition(n.ChildByFieldName(fieldValue)))

	body := n.ChildByFieldName(fieldBody)
	if body == nil {
		return node
	}
	for i := 0; i < int(body.NamedChildCount()); i++ {
		clause := body.NamedChild(i)
		switch clause.Type() {
		case cstSwitchCase:
			node.Append(b.transformCase(clause))
		case cstSwitchDefault:
			node.Append(b.transformDefault(clause))
		}
	}
	return node
}

func (b *builder) transformCase(clause *sitter.Node) *ir.Node {
	test := clause.ChildByFieldName(fieldValue)
	caseNode := &ir.Node{
		Kind: ir.KindCase,
		File: b.file,
		Pos:  b.file.Span(int(clause.StartByte()), int(test.EndByte())),
	}
	caseNode.Append(b.transformExpression(test))
	caseNode.Append(b.clauseBlock(clause, test))
	return caseNode
}

func (b *builder) transformDefault(clause *sitter.Node) *ir.Node {
	start := int(clause.StartByte())
	caseNode := &ir.Node{
		Kind: ir.KindDefaultCase,
		File: b.file,
		Pos:  b.file.Span(start, start+len("default")),
	}
	caseNode.Append(b.clauseBlock(clause, nil))
	return caseNode
}

// clauseBlock collects a case clause's statements into a synthetic block.
// An empty clause yields a zero-length block after the colon.
func (b *builder) clauseBlock(clause *sitter.Node, test *sitter.Node) *ir.Node {
	var stmts []*ir.Node
	first, last := -1, -1
	for i := 0; i < int(clause.NamedChildCount()); i++ {
		c := clause.NamedChild(i)
		if c == test || c.Type() == cstComment {
			continue
		}
		if test != nil && c.StartByte() <= test.StartByte() {
			continue
		}
		stmt := b.transformStatement(c)
		if stmt == nil {
			continue
		}
		b.attachDoc(stmt, c)
		stmts = append(stmts, stmt)
		if first < 0 {
			first = int(c.StartByte())
		}
		last = int(c.EndByte())
	}
	var span source.Span
	if first >= 0 {
		span = b.file.Span(first, last)
	} else {
		span = b.file.PointSpan(b.afterColon(clause))
	}
	block := &ir.Node{Kind: ir.KindBlock, File: b.file, Pos: span}
	block.Children = stmts
	return block
}

func (b *builder) afterColon(clause *sitter.Node) int {
	for i := 0; i < int(clause.ChildCount()); i++ {
		if c := clause.Child(i); c.Type() == ":" {
			return int(c.EndByte())
		}
	}
	return int(clause.EndByte())
}

// transformLabel emits nested single-label wrappers: consecutive labels
// nest naturally because the grammar nests labeled statements.
func (b *builder) transformLabel(n *sitter.Node) *ir.Node {
	labelTok := n.ChildByFieldName(fieldLabel)
	name := b.newNode(ir.KindLabelName, labelTok)
	name.Name = b.text(labelTok)
	body := b.transformStatement(n.ChildByFieldName(fieldBody))
	node := &ir.Node{Kind: ir.KindLabel, File: b.file, Pos: b.stmtSpan(n)}
	return node.Append(name, body)
}

// transformFunction handles declarations, expressions and arrows. The
// emitted children are always [name, param-list, body]; an anonymous
// function carries an empty name node with no position.
func (b *builder) transformFunction(n *sitter.Node) *ir.Node {
	fn := b.newNode(ir.KindFunction, n)

	var nameNode *ir.Node
	if nameN := n.ChildByFieldName(fieldName); nameN != nil {
		nameNode = b.newNode(ir.KindName, nameN)
		nameNode.Name = b.text(nameN)
		// A doc comment between the keyword and the name annotates the
		// name: `function /** string */ foo() {}`.
		b.attachInlineDoc(nameNode, nameN)
	} else {
		nameNode = &ir.Node{Kind: ir.KindName, File: b.file}
	}

	var params *ir.Node
	if paramsN := n.ChildByFieldName(fieldParameters); paramsN != nil {
		params = b.transformParams(paramsN)
	} else if single := n.ChildByFieldName(fieldParameter); single != nil {
		// Arrow shorthand: x => ...
		params = b.newNode(ir.KindParamList, single)
		params.Append(b.transformParameter(single))
	} else {
		params = &ir.Node{Kind: ir.KindParamList, File: b.file}
	}

	if retN := n.ChildByFieldName(fieldReturnType); retN != nil {
		fn.DeclaredType = b.transformTypeAnnotation(retN)
	}

	bodyN := n.ChildByFieldName(fieldBody)
	var body *ir.Node
	if bodyN != nil && bodyN.Type() == cstStatementBlock {
		fn.Directives = b.scanDirectives(bodyN)
		b.pushScope(fn.Directives)
		body = b.transformBlock(bodyN)
		b.popScope()
	} else if bodyN != nil {
		// Arrow expression body.
		b.pushScope(nil)
		body = b.transformExpression(bodyN)
		b.popScope()
	} else {
		body = &ir.Node{Kind: ir.KindBlock, File: b.file, Pos: b.file.PointSpan(int(n.EndByte()))}
	}

	return fn.Append(nameNode, params, body)
}
