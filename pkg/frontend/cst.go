// Copyright (C) 2026 Fathom Labs (engineering@fathomlabs.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package frontend

// Tree-sitter concrete-syntax node types consumed by the builder.
//
// The builder uses direct node traversal rather than the query language
// for precise control over positions and child ordering.
//
// References:
//   https://github.com/tree-sitter/tree-sitter-javascript
//   https://github.com/tree-sitter/tree-sitter-typescript

const (
	cstProgram = "program"
	cstComment = "comment"
	cstError   = "ERROR"

	// Statements.
	cstExpressionStatement = "expression_statement"
	cstStatementBlock      = "statement_block"
	cstEmptyStatement      = "empty_statement"
	cstIfStatement         = "if_statement"
	cstElseClause          = "else_clause"
	cstWhileStatement      = "while_statement"
	cstDoStatement         = "do_statement"
	cstForStatement        = "for_statement"
	cstForInStatement      = "for_in_statement"
	cstVariableDeclaration = "variable_declaration"
	cstLexicalDeclaration  = "lexical_declaration"
	cstVariableDeclarator  = "variable_declarator"
	cstReturnStatement     = "return_statement"
	cstThrowStatement      = "throw_statement"
	cstTryStatement        = "try_statement"
	cstCatchClause         = "catch_clause"
	cstFinallyClause       = "finally_clause"
	cstSwitchStatement     = "switch_statement"
	cstSwitchBody          = "switch_body"
	cstSwitchCase          = "switch_case"
	cstSwitchDefault       = "switch_default"
	cstBreakStatement      = "break_statement"
	cstContinueStatement   = "continue_statement"
	cstLabeledStatement    = "labeled_statement"
	cstWithStatement       = "with_statement"
	cstDebuggerStatement   = "debugger_statement"

	// Functions.
	cstFunctionDeclaration          = "function_declaration"
	cstGeneratorFunctionDeclaration = "generator_function_declaration"
	cstFunctionExpression           = "function_expression"
	cstFunctionExpressionLegacy     = "function"
	cstGeneratorFunction            = "generator_function"
	cstArrowFunction                = "arrow_function"
	cstFormalParameters             = "formal_parameters"
	cstMethodDefinition             = "method_definition"

	// Expressions.
	cstIdentifier              = "identifier"
	cstPropertyIdentifier      = "property_identifier"
	cstStatementIdentifier     = "statement_identifier"
	cstShorthandProperty       = "shorthand_property_identifier"
	cstParenthesized           = "parenthesized_expression"
	cstMemberExpression        = "member_expression"
	cstSubscriptExpression     = "subscript_expression"
	cstCallExpression          = "call_expression"
	cstNewExpression           = "new_expression"
	cstArguments               = "arguments"
	cstAssignmentExpression    = "assignment_expression"
	cstAugmentedAssignment     = "augmented_assignment_expression"
	cstBinaryExpression        = "binary_expression"
	cstUnaryExpression         = "unary_expression"
	cstUpdateExpression        = "update_expression"
	cstTernaryExpression       = "ternary_expression"
	cstSequenceExpression      = "sequence_expression"
	cstAsExpression            = "as_expression"
	cstTypeAssertion           = "type_assertion"

	// Literals.
	cstNumber           = "number"
	cstString           = "string"
	cstStringFragment   = "string_fragment"
	cstTemplateString   = "template_string"
	cstTemplateSubst    = "template_substitution"
	cstRegex            = "regex"
	cstTrue             = "true"
	cstFalse            = "false"
	cstNull             = "null"
	cstUndefined        = "undefined"
	cstThis             = "this"
	cstArray            = "array"
	cstObject           = "object"
	cstPair             = "pair"
	cstComputedProperty = "computed_property_name"
	cstSpreadElement    = "spread_element"

	// Patterns.
	cstArrayPattern             = "array_pattern"
	cstObjectPattern            = "object_pattern"
	cstPairPattern              = "pair_pattern"
	cstShorthandPropertyPattern = "shorthand_property_identifier_pattern"
	cstAssignmentPattern        = "assignment_pattern"
	cstObjectAssignmentPattern  = "object_assignment_pattern"
	cstRestPattern              = "rest_pattern"
	cstRestParameter            = "rest_parameter"

	// Typed-dialect parameter wrappers and annotations.
	cstRequiredParameter = "required_parameter"
	cstOptionalParameter = "optional_parameter"
	cstTypeAnnotation    = "type_annotation"
	cstPredefinedType    = "predefined_type"
	cstTypeIdentifier    = "type_identifier"
	cstNestedTypeIdent   = "nested_type_identifier"
	cstUnionType         = "union_type"
	cstGenericType       = "generic_type"
	cstTypeArguments     = "type_arguments"
	cstArrayType         = "array_type"
	cstParenthesizedType = "parenthesized_type"
	cstLiteralType       = "literal_type"
	cstObjectType        = "object_type"
	cstPropertySignature = "property_signature"
)

// Field names used with ChildByFieldName.
const (
	fieldName          = "name"
	fieldBody          = "body"
	fieldParameters    = "parameters"
	fieldParameter     = "parameter"
	fieldCondition     = "condition"
	fieldConsequence   = "consequence"
	fieldAlternative   = "alternative"
	fieldInitializer   = "initializer"
	fieldIncrement     = "increment"
	fieldLeft          = "left"
	fieldRight         = "right"
	fieldOperator      = "operator"
	fieldArgument      = "argument"
	fieldArguments     = "arguments"
	fieldFunction      = "function"
	fieldConstructor   = "constructor"
	fieldObject        = "object"
	fieldProperty      = "property"
	fieldIndex         = "index"
	fieldKey           = "key"
	fieldValue         = "value"
	fieldLabel         = "label"
	fieldHandler       = "handler"
	fieldFinalizer     = "finalizer"
	fieldPattern       = "pattern"
	fieldType          = "type"
	fieldReturnType    = "return_type"
	fieldTypeArguments = "type_arguments"
)
