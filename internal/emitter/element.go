// Package emitter synthesizes the replacement expression for each JSX
// node on its bottom-up exit (spec.md §4.5-§4.9): a component call, a
// bare template-clone call, or a clone/walk/bind IIFE. It is the
// generalization of the teacher's render1/printAttribute switch
// (internal/printer/print-to-js.go, internal/printer/printer.go) from
// "render JSX to a markup string" to "synthesize an AST that constructs
// the equivalent DOM imperatively" — the structural idiom (one big
// switch over node/attribute kind, building output incrementally) is
// kept; the output target is not JS-as-string but ast.Node.
package emitter

import (
	"github.com/domexpr/compiler-go/internal/ast"
	"github.com/domexpr/compiler-go/internal/classify"
	"github.com/domexpr/compiler-go/internal/minify"
	"github.com/domexpr/compiler-go/internal/options"
	"github.com/domexpr/compiler-go/internal/state"
	"github.com/domexpr/compiler-go/internal/template"
)

// EmitJSX replaces one JSX node (element, fragment, or component) with
// its synthesized expression. The caller does not visit node's children
// first: JSX beneath node is left untouched, because the template
// builder reads raw JSX shape, not a synthesized replacement, and
// EmitJSX itself lowers nested components, fragments and expression
// children as it builds the replacement — see walkReplace in
// transform.go for the traversal order this depends on.
func EmitJSX(module *state.Module, opts options.Options, node *ast.Node) *ast.Node {
	if node.Kind == ast.KindJSXFragment {
		return emitFragment(module, opts, node)
	}
	if node.Kind != ast.KindJSXElement {
		return node
	}
	if classify.IsComponent(node.Tag, node.MemberExpr, opts.BuiltIns) {
		return emitComponent(module, opts, node)
	}
	return emitHostElement(module, opts, node)
}

func emitHostElement(module *state.Module, opts options.Options, node *ast.Node) *ast.Node {
	tmpl := template.Build(node, opts.BuiltIns)
	html := tmpl.HTML
	if opts.OmitQuotes || opts.OmitLastClosingTag || opts.OmitNestedClosingTags {
		html = minify.Minimize(html, opts)
	}

	templateImport := "template"
	if opts.Generate == options.Ssr {
		templateImport = "ssr"
	}
	module.RequireImport(templateImport)

	name := module.Pool.Intern(html, len(tmpl.DynamicSlots))

	if len(tmpl.DynamicSlots) == 0 {
		return ast.CallIdent(name)
	}

	rootVar := module.NextElementVar()

	var allPaths [][]string
	for _, s := range tmpl.DynamicSlots {
		if len(s.Path) > 0 {
			allPaths = append(allPaths, s.Path)
		}
		if s.HasMarker && len(s.MarkerPath) > 0 {
			allPaths = append(allPaths, s.MarkerPath)
		}
		// A trailing TextContent slot (no marker) inserts into the root
		// with a null marker, yet `_el$.firstChild` is still materialized
		// (spec §4.5) even though no slot's path/marker-path references it.
		if s.Kind == template.SlotTextContent && len(s.Path) == 0 && !s.HasMarker {
			allPaths = append(allPaths, []string{"firstChild"})
		}
	}

	pathDecls, varFor := materializePaths(module, rootVar, allPaths)

	rootDecl := ast.VarDeclarator(rootVar, ast.CallIdent(name))
	declarators := append([]*ast.Node{rootDecl}, pathDecls...)

	var body []*ast.Node
	body = append(body, ast.VarDeclStmt("var", declarators...))

	for _, slot := range tmpl.DynamicSlots {
		elVar := resolveVar(varFor, slot.Path)
		markerVar := ""
		hasMarker := slot.HasMarker
		if hasMarker {
			markerVar = resolveVar(varFor, slot.MarkerPath)
		}
		body = append(body, lowerSlot(module, opts, slot, elVar, rootVar, markerVar, hasMarker))
	}

	body = append(body, ast.Return(ast.Ident(rootVar)))

	return ast.IIFE(body...)
}
