package emitter

import (
	"path/filepath"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/domexpr/compiler-go/internal/ast"
	"github.com/domexpr/compiler-go/internal/options"
	"github.com/domexpr/compiler-go/internal/state"
)

// finalize implements the Program Finalizer (spec §4.8): import
// declarations first (fixed priority order), then the hoisted template
// declarations, then the original (now JSX-free) body, then a trailing
// delegateEvents call when any event was delegated.
func finalize(module *state.Module, opts options.Options, program *ast.Node) *ast.Node {
	var prelude []*ast.Node

	for _, name := range module.SortedImports() {
		prelude = append(prelude, ast.ImportDecl(opts.ModuleName, ast.ImportSpecifier(name, "_$"+name)))
	}

	if decl := templateDeclaration(module, opts); decl != nil {
		prelude = append(prelude, decl)
	}

	out := &ast.Node{Kind: ast.KindProgram}
	out.Children = append(out.Children, prelude...)
	out.Children = append(out.Children, program.Children...)

	if module.HasDelegatedEvents() {
		events := module.SortedEvents()
		args := make([]*ast.Node, 0, len(events))
		for _, e := range events {
			args = append(args, ast.StringLit(e))
		}
		out.Children = append(out.Children, ast.ExprStmt(ast.CallIdent("_$delegateEvents", ast.Array(args...))))
	}

	return out
}

// templateDeclaration builds the single combined `var _tmpl$ = ..., _tmpl$2 = ...;`
// statement listing every interned template in ascending index (spec
// §4.4/§4.8), or nil when no template was interned.
func templateDeclaration(module *state.Module, opts options.Options) *ast.Node {
	decls := module.Pool.Declarations()
	if len(decls) == 0 {
		return nil
	}
	declarators := make([]*ast.Node, 0, len(decls))
	for _, d := range decls {
		var init *ast.Node
		if opts.Generate == options.Ssr {
			init = ast.StringLit(d.HTML)
		} else {
			call := ast.CallIdent("_$template", ast.TemplateLit([]string{d.HTML}, nil))
			call.PureAnnotated = true
			init = call
		}
		declarators = append(declarators, ast.VarDeclarator(d.Name, init))
	}
	decl := ast.VarDeclStmt("var", declarators...)
	if name := componentNameFromFilename(opts.Filename); name != "" {
		decl.LeadingComment = name + "'s templates"
	}
	return decl
}

// componentNameFromFilename derives a short, readable tag for the
// hoisted template declaration's leading comment from the source path,
// generalizing the teacher's getComponentName/getTSXComponentName (which
// turn a .astro path into a PascalCase component name for diagnostics)
// to this compiler's arbitrary-extension JSX/TSX input.
func componentNameFromFilename(path string) string {
	if path == "" {
		return ""
	}
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" || base == "." {
		return ""
	}
	return strcase.ToCamel(base)
}
