package ast

// This file is the synthesis half of the package: small constructors the
// emitter calls to build the replacement expression tree, mirroring the
// way the teacher's printer builds strings directly but one level higher
// (as nodes, so a later pass — the printer package — does the actual text
// formatting). Every constructor returns a fresh *Node; nothing here
// mutates an existing node, matching the "clone into the same pool"
// guidance for reused subtrees.

func Ident(name string) *Node {
	return &Node{Kind: KindIdentifier, Data: name}
}

func StringLit(value string) *Node {
	return &Node{Kind: KindStringLiteral, Data: value}
}

func NumberLit(raw string) *Node {
	return &Node{Kind: KindNumericLiteral, Raw: raw}
}

func BoolLit(v bool) *Node {
	n := &Node{Kind: KindBooleanLiteral}
	if v {
		n.Raw = "true"
	} else {
		n.Raw = "false"
	}
	return n
}

func Raw(source string) *Node {
	return &Node{Kind: KindRawExpression, Raw: source, Shape: ShapeOther}
}

// Call builds `callee(args...)`.
func Call(callee *Node, args ...*Node) *Node {
	return &Node{Kind: KindCallExpression, Callee: callee, Children: args}
}

// CallIdent is shorthand for Call(Ident(name), args...), the overwhelming
// majority of calls the emitter synthesizes (_$template, _$createComponent,
// _$effect, _$insert, ...).
func CallIdent(name string, args ...*Node) *Node {
	return Call(Ident(name), args...)
}

// Member builds `object.property` (or `object[property]` when computed).
func Member(object *Node, property string) *Node {
	return &Node{Kind: KindMemberExpression, Object: object, Property: &Node{Kind: KindIdentifier, Data: property}}
}

func MemberComputed(object, property *Node) *Node {
	return &Node{Kind: KindMemberExpression, Object: object, Property: property, Computed: true}
}

// Assign builds `left = right`.
func Assign(left, right *Node) *Node {
	return &Node{Kind: KindAssignmentExpression, Left: left, Right: right}
}

// Arrow builds `(params...) => body`. Body may be an expression (arrow
// returns it directly) or a KindBlockStatement.
func Arrow(params []string, body *Node) *Node {
	n := &Node{Kind: KindArrowFunctionExpression, Right: body}
	for _, p := range params {
		n.Children = append(n.Children, Ident(p))
	}
	return n
}

// ArrowExpr is the common zero-arg arrow `() => body`, used to wrap an
// expression for deferred evaluation (`_$effect(() => ...)`).
func ArrowExpr(body *Node) *Node {
	return Arrow(nil, body)
}

func Array(elements ...*Node) *Node {
	return &Node{Kind: KindArrayExpression, Children: elements}
}

func Object(props ...*Node) *Node {
	return &Node{Kind: KindObjectExpression, Children: props}
}

// Prop builds a plain `key: value` object property.
func Prop(key string, value *Node) *Node {
	return &Node{Kind: KindObjectProperty, Data: key, Right: value}
}

// GetterProp builds a `get key() { return value; }` accessor, used for
// component-prop passing so prop reads stay reactive (spec §4.6/§4.9).
func GetterProp(key string, value *Node) *Node {
	return &Node{Kind: KindGetterProperty, Data: key, Right: value}
}

func Spread(arg *Node) *Node {
	return &Node{Kind: KindSpreadElement, Right: arg}
}

// VarDecl builds `kind name = init;` as a single-declarator
// VariableDeclaration statement. The emitter itself declares its locals
// (`_el$`, `_el$2`, ..., `_tmpl$`, `_tmpl$2`, ...) through the combined
// VarDeclStmt form instead.
func VarDecl(kind, name string, init *Node) *Node {
	decl := &Node{Kind: KindVariableDeclarator, Data: name, Right: init}
	return &Node{Kind: KindVariableDeclaration, DeclKind: kind, Children: []*Node{decl}}
}

// VarDeclarator builds one `name = init` declarator for use inside a
// multi-declarator VarDeclStmt.
func VarDeclarator(name string, init *Node) *Node {
	return &Node{Kind: KindVariableDeclarator, Data: name, Right: init}
}

// VarDeclStmt builds a single `kind a = x, b = y, …;` statement from
// pre-built declarators — the combined declaration spec §4.5 requires
// for an IIFE's element-path materialization.
func VarDeclStmt(kind string, declarators ...*Node) *Node {
	return &Node{Kind: KindVariableDeclaration, DeclKind: kind, Children: declarators}
}

// IIFE builds `(() => { body... })()`, the scoping form every dynamic
// template clone/walk/bind sequence is wrapped in (spec §4.5).
func IIFE(body ...*Node) *Node {
	arrow := &Node{Kind: KindArrowFunctionExpression, Right: Block(body...)}
	return Call(arrow)
}

// ExprStmt wraps an expression as a statement.
func ExprStmt(expr *Node) *Node {
	return &Node{Kind: KindExpressionStatement, Right: expr}
}

func Block(stmts ...*Node) *Node {
	return &Node{Kind: KindBlockStatement, Children: stmts}
}

func Return(expr *Node) *Node {
	return &Node{Kind: KindReturnStatement, Right: expr}
}

// ImportSpecifier builds one named import binding, `imported as local`
// (local == imported when there's no rename).
func ImportSpecifier(imported, local string) *Node {
	return &Node{Kind: KindImportSpecifier, Data: imported, Raw: local}
}

// ImportDecl builds `import { specifiers... } from "source";`.
func ImportDecl(source string, specifiers ...*Node) *Node {
	return &Node{Kind: KindImportDeclaration, Data: source, Children: specifiers}
}

// TemplateLit builds a tagged-less template literal from alternating
// literal chunks and expression holes: quasis has len(exprs)+1 entries.
func TemplateLit(quasis []string, exprs []*Node) *Node {
	n := &Node{Kind: KindTemplateLiteral}
	for i, q := range quasis {
		n.Children = append(n.Children, &Node{Kind: KindJSXText, Data: q})
		if i < len(exprs) {
			n.Children = append(n.Children, exprs[i])
		}
	}
	return n
}

// Conditional builds `test ? consequent : alternate`.
func Conditional(test, consequent, alternate *Node) *Node {
	return &Node{Kind: KindConditionalExpression, Test: test, Left: consequent, Right: alternate}
}
