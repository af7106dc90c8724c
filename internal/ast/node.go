// Package ast is the minimal AST interface the compiler core consumes.
// Per spec.md §1/§6, source parsing, scope analysis and code printing of
// plain JS are external collaborators — the core only needs a JSX-capable
// tree plus a handful of expression constructors. This package plays the
// role github.com/withastro/compiler's internal (token.go) package plays
// for Astro: one Node type, tagged by Kind, mutated in place by a
// bottom-up visitor and finally handed to a printer.
//
// Node deliberately does not model full JS expression grammar. Anything
// the core treats as opaque (an event handler body, an attribute value
// expression, a component prop value) is carried as a RawExpression: the
// verbatim source text the external parser sliced out, plus a coarse
// Shape classification (identifier / literal / call / arrow / other) that
// is all the emitter ever needs to make a decision (spec §4.6-§4.7: "is
// this a call expression", "is this a simple identifier").
package ast

import "github.com/domexpr/compiler-go/internal/loc"

type Kind int

const (
	// Structural
	KindProgram Kind = iota
	KindJSXElement
	KindJSXFragment
	KindJSXExpressionContainer
	KindJSXText
	KindJSXEmptyExpression // a JSX comment: {/* ... */}

	// Opaque / leaf expressions carried verbatim from the source
	KindIdentifier
	KindStringLiteral
	KindNumericLiteral
	KindBooleanLiteral
	KindNullLiteral
	KindRawExpression

	// Nodes synthesized by the emitter for the replacement program
	KindCallExpression
	KindArrowFunctionExpression
	KindMemberExpression
	KindAssignmentExpression
	KindArrayExpression
	KindObjectExpression
	KindObjectProperty
	KindGetterProperty
	KindSpreadElement
	KindTemplateLiteral
	KindVariableDeclaration
	KindVariableDeclarator
	KindImportDeclaration
	KindImportSpecifier
	KindReturnStatement
	KindExpressionStatement
	KindBlockStatement
	KindConditionalExpression
	KindUnaryExpression
)

// Shape is the coarse classification of an opaque expression the emitter
// needs to make lowering decisions without parsing the expression itself
// (spec §4.7: "wrapped in _$effect(...) only when expr is a call
// expression"; §4.6: "a single non-string expression"; §4.6 fragment
// wrapping: "complex (non-identifier, non-literal)").
type Shape int

const (
	ShapeOther Shape = iota
	ShapeIdentifier
	ShapeLiteral
	ShapeCallExpression
	ShapeZeroArgCall
	ShapeArrowFunction
	ShapeIIFE
)

// AttributeKind is the JSX source-level shape of an attribute, set by the
// external parser; internal/classify further classifies by *name* into a
// DynamicSlot kind. This is distinct from the dynamic_slots annotation in
// spec.md §3 — it only describes how the attribute's value arrived
// (string literal, {expr}, {...spread}, bare).
type AttributeKind int

const (
	AttrQuoted AttributeKind = iota
	AttrExpression
	AttrSpread
	AttrBoolean // bare, no value
)

// JSXAttribute is one attribute of a JSXElement in source declaration
// order. Namespace holds the text before a `:` for both real XML
// namespaces (`xlink:href`) and solid's directive prefixes
// (`on:`, `oncapture:`, `bool:`, `prop:`, `attr:`, `use:`, `style:`,
// `class:`) — internal/classify tells them apart by name.
type JSXAttribute struct {
	Name      string        `json:"name"`
	Namespace string        `json:"namespace,omitempty"`
	Kind      AttributeKind `json:"kind"`
	Value     *Node         `json:"value,omitempty"`     // nil when Kind == AttrBoolean
	SpreadArg *Node         `json:"spreadArg,omitempty"` // set when Kind == AttrSpread

	KeyLoc loc.Loc `json:"keyLoc,omitempty"`
	ValLoc loc.Loc `json:"valLoc,omitempty"`
}

// Node is the single tagged-union AST type used for both the input JSX
// tree and the synthesized replacement expressions the emitter produces
// in its place. Fields are interpreted per Kind, exactly the way
// astro.Node's fields (Fragment, Component, DataAtom, Attr, ...) are
// interpreted per Type in the teacher.
type Node struct {
	Kind Kind    `json:"kind"`
	Loc  loc.Loc `json:"loc,omitempty"`

	// JSXElement / JSXFragment
	Tag           string         `json:"tag,omitempty"`
	TagNamespace  string         `json:"tagNamespace,omitempty"` // "ns" in "ns:local"
	Component     bool           `json:"component,omitempty"`
	CustomElement bool           `json:"customElement,omitempty"`
	MemberExpr    bool           `json:"memberExpr,omitempty"` // tag is a JSX member expression (Ns.Comp) -> always a component
	Attrs         []JSXAttribute `json:"attrs,omitempty"`
	Children      []*Node        `json:"children,omitempty"` // ordered JSX children, or (for synthesized nodes) ordered sub-nodes:
	// CallExpression -> Arguments, ArrayExpression -> Elements,
	// ObjectExpression -> Properties, VariableDeclaration -> Declarators,
	// BlockStatement -> Statements, ImportDeclaration -> Specifiers,
	// TemplateLiteral -> alternating raw-text/expression parts.

	// JSXText / opaque leaves
	Data  string `json:"data,omitempty"` // text content, identifier name, decoded literal value;
	// for a Program node, the decoded `@jsxImportSource` pragma value (options.RequireImportSource gate)
	Raw   string `json:"raw,omitempty"`  // verbatim source spelling (RawExpression body, number/bool literal spelling)
	Shape Shape  `json:"shape,omitempty"`

	// Synthesized-node auxiliary fields, reused across kinds the way a
	// single struct field serves several Kinds in the teacher's Node.
	Callee   *Node  `json:"callee,omitempty"`   // CallExpression
	Object   *Node  `json:"object,omitempty"`   // MemberExpression
	Property *Node  `json:"property,omitempty"` // MemberExpression (Data holds the name when !Computed)
	Computed bool   `json:"computed,omitempty"` // MemberExpression: obj[prop] vs obj.prop
	Left     *Node  `json:"left,omitempty"`     // AssignmentExpression
	Right    *Node  `json:"right,omitempty"`    // AssignmentExpression / VariableDeclarator init / ObjectProperty value
	Test     *Node  `json:"test,omitempty"`     // ConditionalExpression
	Async       bool   `json:"async,omitempty"`
	DeclKind    string `json:"declKind,omitempty"`    // VariableDeclaration: "var" | "const" | "let"
	ComputedKey bool   `json:"computedKey,omitempty"` // ObjectProperty: computed key

	// PureAnnotated marks a CallExpression for a leading `/*#__PURE__*/`
	// comment, used on hoisted template-clone factory calls (spec §4.8)
	// so bundlers may tree-shake an unused template.
	PureAnnotated bool `json:"pureAnnotated,omitempty"`

	// LeadingComment, when set, is printed as a `// ...` line immediately
	// before a top-level statement — used on the hoisted template
	// declaration to name the source file its templates came from.
	LeadingComment string `json:"leadingComment,omitempty"`
}

// IsStaticLiteral reports whether the node is a literal the template
// builder can inline as text (spec §4.2: "String, numeric, or boolean
// literal child -> inline into the HTML as text").
func (n *Node) IsStaticLiteral() bool {
	switch n.Kind {
	case KindStringLiteral, KindNumericLiteral, KindBooleanLiteral:
		return true
	}
	return false
}

// IsSimple reports whether the expression is "simple" in the sense
// spec §4.6 uses for fragment-child memo wrapping: an identifier or a
// literal never needs `_$memo` wrapping, everything else ("complex")
// does unless it's already a deferred-evaluation form (IIFE, template
// clone call, createComponent call).
func (n *Node) IsSimple() bool {
	switch n.Kind {
	case KindIdentifier, KindStringLiteral, KindNumericLiteral, KindBooleanLiteral, KindNullLiteral:
		return true
	}
	if n.Kind == KindRawExpression {
		return n.Shape == ShapeIdentifier || n.Shape == ShapeLiteral
	}
	return false
}

// IsCallExpression reports whether the node is (or wraps, when opaque) a
// call expression — the test spec §4.7 uses to decide whether to wrap a
// BoolAttribute/StyleProperty/ClassName setter in `_$effect`.
func (n *Node) IsCallExpression() bool {
	if n.Kind == KindCallExpression {
		return true
	}
	return n.Kind == KindRawExpression && (n.Shape == ShapeCallExpression || n.Shape == ShapeZeroArgCall)
}

// IsZeroArgCall reports a call expression with no arguments, f() — spec
// §4.6's fragment-wrapping rule unwraps _$memo(() => f()) to _$memo(f).
func (n *Node) IsZeroArgCall() bool {
	if n.Kind == KindRawExpression {
		return n.Shape == ShapeZeroArgCall
	}
	return n.Kind == KindCallExpression && len(n.Children) == 0
}

// IsDeferred reports whether the expression already evaluates lazily
// (IIFE, arrow function) so a fragment child wrapping pass should leave
// it alone (spec §4.6: "IIFEs, ... are not wrapped").
func (n *Node) IsDeferred() bool {
	if n.Kind == KindArrowFunctionExpression || n.Kind == KindCallExpression {
		return true
	}
	return n.Kind == KindRawExpression && (n.Shape == ShapeIIFE || n.Shape == ShapeArrowFunction)
}
