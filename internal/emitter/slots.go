package emitter

import (
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/domexpr/compiler-go/internal/ast"
	"github.com/domexpr/compiler-go/internal/classify"
	"github.com/domexpr/compiler-go/internal/options"
	"github.com/domexpr/compiler-go/internal/state"
	"github.com/domexpr/compiler-go/internal/template"
)

// lowerSlot emits the statement for one DynamicSlot targeting element
// variable elVar, per the table in spec.md §4.7. rootVar is the IIFE's
// first declared root, used (not elVar) as the TextContent insertion
// target regardless of nesting depth, per the spec table's explicit
// "root is the enclosing IIFE root (NOT E)".
func lowerSlot(module *state.Module, opts options.Options, slot template.DynamicSlot, elVar, rootVar string, markerVar string, hasMarker bool) *ast.Node {
	expr := resolveExpr(module, opts, slot.Expr)

	switch slot.Kind {
	case template.SlotTextContent:
		module.RequireImport("insert")
		marker := ast.Ident("null")
		if hasMarker {
			marker = ast.Ident(markerVar)
		}
		return ast.ExprStmt(ast.CallIdent("_$insert", ast.Ident(rootVar), expr, marker))

	case template.SlotAttribute:
		module.RequireImport("setAttribute")
		module.RequireImport("effect")
		inner := ast.CallIdent("_$setAttribute", ast.Ident(elVar), ast.StringLit(slot.Name), expr)
		return ast.ExprStmt(ast.CallIdent("_$effect", ast.ArrowExpr(inner)))

	case template.SlotAttrAttribute:
		module.RequireImport("setAttribute")
		return ast.ExprStmt(ast.CallIdent("_$setAttribute", ast.Ident(elVar), ast.StringLit(slot.Name), expr))

	case template.SlotBoolAttribute:
		module.RequireImport("setBoolAttribute")
		call := ast.CallIdent("_$setBoolAttribute", ast.Ident(elVar), ast.StringLit(slot.Name), expr)
		if slot.Expr != nil && slot.Expr.IsCallExpression() {
			module.RequireImport("effect")
			return ast.ExprStmt(ast.CallIdent("_$effect", ast.ArrowExpr(call)))
		}
		return ast.ExprStmt(call)

	case template.SlotPropAttribute:
		return ast.ExprStmt(ast.Assign(ast.Member(ast.Ident(elVar), slot.Name), expr))

	case template.SlotStyleProperty:
		module.RequireImport("setStyleProperty")
		call := ast.CallIdent("_$setStyleProperty", ast.Ident(elVar), ast.StringLit(slot.Name), expr)
		if slot.Expr != nil && slot.Expr.IsCallExpression() {
			module.RequireImport("effect")
			return ast.ExprStmt(ast.CallIdent("_$effect", ast.ArrowExpr(call)))
		}
		return ast.ExprStmt(call)

	case template.SlotClassBinding:
		module.RequireImport("className")
		call := ast.CallIdent("_$className", ast.Ident(elVar), ast.StringLit(slot.Name), expr)
		if slot.Expr != nil && slot.Expr.IsCallExpression() {
			module.RequireImport("effect")
			return ast.ExprStmt(ast.CallIdent("_$effect", ast.ArrowExpr(call)))
		}
		return ast.ExprStmt(call)

	case template.SlotClassList:
		module.RequireImport("classList")
		return ast.ExprStmt(ast.CallIdent("_$classList", ast.Ident(elVar), expr))

	case template.SlotStyleObject:
		module.RequireImport("style")
		return ast.ExprStmt(ast.CallIdent("_$style", ast.Ident(elVar), expr))

	case template.SlotRef:
		module.RequireImport("use")
		return ast.ExprStmt(ast.CallIdent("_$use", expr, ast.Ident(elVar)))

	case template.SlotUseDirective:
		return ast.ExprStmt(ast.Call(ast.Ident(slot.Name), ast.Ident(elVar), expr))

	case template.SlotEventHandler:
		return lowerEventHandler(module, opts, slot, elVar, expr)

	case template.SlotOnEvent:
		module.RequireImport("addEventListener")
		return ast.ExprStmt(ast.CallIdent("_$addEventListener", ast.Ident(elVar), ast.StringLit(slot.Name), expr))

	case template.SlotOnCaptureEvent:
		return ast.ExprStmt(ast.Call(ast.Member(ast.Ident(elVar), "addEventListener"),
			ast.StringLit(slot.Name), expr, ast.BoolLit(true)))

	case template.SlotSpread:
		return lowerSpread(module, elVar, expr)
	}
	return ast.ExprStmt(expr)
}

// lowerEventHandler implements the EventHandler row, including the
// array-form `[fn, data]` companion-data convention spec §4.7 describes.
func lowerEventHandler(module *state.Module, opts options.Options, slot template.DynamicSlot, elVar string, expr *ast.Node) *ast.Node {
	lower := strings.ToLower(slot.Name)
	if slot.Expr != nil && slot.Expr.Kind == ast.KindArrayExpression && len(slot.Expr.Children) == 2 {
		fn := resolveExpr(module, opts, slot.Expr.Children[0])
		data := resolveExpr(module, opts, slot.Expr.Children[1])
		if opts.DelegateEvents && classify.ShouldDelegateEvent(lower) {
			module.RequireDelegatedEvent(lower)
			dataProp := "$$" + strcase.ToLowerCamel(lower+"-data")
			return ast.Block(
				ast.ExprStmt(ast.Assign(ast.Member(ast.Ident(elVar), "$$"+lower), fn)),
				ast.ExprStmt(ast.Assign(ast.Member(ast.Ident(elVar), dataProp), data)),
			)
		}
		wrapped := ast.Arrow([]string{"e"}, ast.Call(fn, data, ast.Ident("e")))
		return ast.ExprStmt(ast.Call(ast.Member(ast.Ident(elVar), "addEventListener"), ast.StringLit(lower), wrapped))
	}

	if opts.DelegateEvents && classify.ShouldDelegateEvent(lower) {
		module.RequireDelegatedEvent(lower)
		return ast.ExprStmt(ast.Assign(ast.Member(ast.Ident(elVar), "$$"+lower), expr))
	}
	return ast.ExprStmt(ast.Call(ast.Member(ast.Ident(elVar), "addEventListener"), ast.StringLit(lower), expr))
}

func lowerSpread(module *state.Module, elVar string, expr *ast.Node) *ast.Node {
	module.RequireImport("spread")
	return ast.ExprStmt(ast.CallIdent("_$spread", ast.Ident(elVar), expr, ast.BoolLit(false), ast.BoolLit(true)))
}

// exprNode returns the slot's source expression verbatim, or an `undefined`
// identifier placeholder when the upstream parser produced none (should
// not occur for well-formed input, but keeps emission total).
func exprNode(n *ast.Node) *ast.Node {
	if n == nil {
		return ast.Ident("undefined")
	}
	if n.Kind == ast.KindJSXExpressionContainer {
		if n.Right != nil {
			return n.Right
		}
		if len(n.Children) > 0 {
			return n.Children[0]
		}
	}
	return n
}

// resolveExpr unwraps a JSX expression container and, when what's left
// is itself a JSX element or fragment (a component passed as a dynamic
// child, spec §4.2's "the emitter later expands the component inline as
// an expression"), lowers it recursively before the caller binds it.
func resolveExpr(module *state.Module, opts options.Options, n *ast.Node) *ast.Node {
	inner := exprNode(n)
	if inner.Kind == ast.KindJSXElement || inner.Kind == ast.KindJSXFragment {
		return EmitJSX(module, opts, inner)
	}
	return inner
}
