package ast

import "fmt"

// kindNames gives Kind a readable JSON spelling so hand-written or
// golden-file test fixtures can say `"kind": "JSXElement"` instead of a
// bare integer — the AST interface is explicitly external per spec.md
// §6 ("provides a JSX-capable AST ... through a minimal interface"), and
// JSON is the serialization the rest of this module already standardizes
// on for configuration (internal/options) and statistics (internal/intern).
var kindNames = map[Kind]string{
	KindProgram:                 "Program",
	KindJSXElement:              "JSXElement",
	KindJSXFragment:             "JSXFragment",
	KindJSXExpressionContainer:  "JSXExpressionContainer",
	KindJSXText:                 "JSXText",
	KindJSXEmptyExpression:      "JSXEmptyExpression",
	KindIdentifier:              "Identifier",
	KindStringLiteral:           "StringLiteral",
	KindNumericLiteral:          "NumericLiteral",
	KindBooleanLiteral:          "BooleanLiteral",
	KindNullLiteral:             "NullLiteral",
	KindRawExpression:           "RawExpression",
	KindCallExpression:          "CallExpression",
	KindArrowFunctionExpression: "ArrowFunctionExpression",
	KindMemberExpression:        "MemberExpression",
	KindAssignmentExpression:    "AssignmentExpression",
	KindArrayExpression:         "ArrayExpression",
	KindObjectExpression:        "ObjectExpression",
	KindObjectProperty:          "ObjectProperty",
	KindGetterProperty:          "GetterProperty",
	KindSpreadElement:           "SpreadElement",
	KindTemplateLiteral:         "TemplateLiteral",
	KindVariableDeclaration:     "VariableDeclaration",
	KindVariableDeclarator:      "VariableDeclarator",
	KindImportDeclaration:       "ImportDeclaration",
	KindImportSpecifier:         "ImportSpecifier",
	KindReturnStatement:         "ReturnStatement",
	KindExpressionStatement:     "ExpressionStatement",
	KindBlockStatement:          "BlockStatement",
	KindConditionalExpression:   "ConditionalExpression",
	KindUnaryExpression:         "UnaryExpression",
}

var namesToKind = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, v := range kindNames {
		m[v] = k
	}
	return m
}()

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func (k Kind) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", k.String())), nil
}

func (k *Kind) UnmarshalJSON(data []byte) error {
	var s string
	if len(data) >= 2 && data[0] == '"' {
		s = string(data[1 : len(data)-1])
	}
	if v, ok := namesToKind[s]; ok {
		*k = v
		return nil
	}
	return fmt.Errorf("ast: unknown node kind %q", s)
}

var attributeKindNames = map[AttributeKind]string{
	AttrQuoted:     "Quoted",
	AttrExpression: "Expression",
	AttrSpread:     "Spread",
	AttrBoolean:    "Boolean",
}

var namesToAttributeKind = func() map[string]AttributeKind {
	m := make(map[string]AttributeKind, len(attributeKindNames))
	for k, v := range attributeKindNames {
		m[v] = k
	}
	return m
}()

func (k AttributeKind) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", attributeKindNames[k])), nil
}

func (k *AttributeKind) UnmarshalJSON(data []byte) error {
	var s string
	if len(data) >= 2 && data[0] == '"' {
		s = string(data[1 : len(data)-1])
	}
	if v, ok := namesToAttributeKind[s]; ok {
		*k = v
		return nil
	}
	return fmt.Errorf("ast: unknown attribute kind %q", s)
}

var shapeNames = map[Shape]string{
	ShapeOther:          "Other",
	ShapeIdentifier:     "Identifier",
	ShapeLiteral:        "Literal",
	ShapeCallExpression: "CallExpression",
	ShapeZeroArgCall:    "ZeroArgCall",
	ShapeArrowFunction:  "ArrowFunction",
	ShapeIIFE:           "IIFE",
}

var namesToShape = func() map[string]Shape {
	m := make(map[string]Shape, len(shapeNames))
	for k, v := range shapeNames {
		m[v] = k
	}
	return m
}()

func (s Shape) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", shapeNames[s])), nil
}

func (s *Shape) UnmarshalJSON(data []byte) error {
	var str string
	if len(data) >= 2 && data[0] == '"' {
		str = string(data[1 : len(data)-1])
	}
	if v, ok := namesToShape[str]; ok {
		*s = v
		return nil
	}
	return fmt.Errorf("ast: unknown shape %q", str)
}
