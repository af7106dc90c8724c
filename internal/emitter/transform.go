package emitter

import (
	"github.com/domexpr/compiler-go/internal/ast"
	"github.com/domexpr/compiler-go/internal/intern"
	"github.com/domexpr/compiler-go/internal/options"
	"github.com/domexpr/compiler-go/internal/state"
)

// Result is everything a caller can learn about a single Transform run:
// the rewritten program plus the diagnostics original_source exposes via
// get_stats()/get_reused_templates().
type Result struct {
	Program         *ast.Node
	Stats           intern.Stats
	Optimizations   []intern.Optimization
	ReusedTemplates []string
}

// Transform replaces every JSX element/fragment reachable from program
// with its synthesized expression (spec §6: "run(transformer, program)
// — mutates the program in place"), then prepends the import and
// template preludes and appends the delegateEvents suffix (spec §4.8).
// It is the single entry point the CLI and wasm bridge call.
func Transform(opts options.Options, program *ast.Node) *ast.Node {
	return TransformFull(opts, program).Program
}

// TransformFull runs the same transform as Transform but also surfaces
// the interning pool's diagnostics, the Go equivalent of the original's
// get_stats()/get_reused_templates() accessors.
//
// When opts.RequireImportSource is set, the program must carry a
// matching `@jsxImportSource` pragma (conventionally recorded in the
// Program node's Data field by whatever decoded the source into JSON)
// or the transform is a no-op: the program is returned unmodified, the
// way original_source checks this before enter_program does any work.
func TransformFull(opts options.Options, program *ast.Node) Result {
	if opts.RequireImportSource != "" && program.Data != opts.RequireImportSource {
		return Result{Program: program}
	}

	module := state.New()
	walkReplace(module, opts, program)
	out := finalize(module, opts, program)

	return Result{
		Program:         out,
		Stats:           module.Pool.Stats(),
		Optimizations:   module.Pool.FindOptimizations(),
		ReusedTemplates: module.Pool.ReusedTemplates(),
	}
}

// walkReplace performs the generic bottom-up substitution described in
// element.go's doc comment: any JSX node found while descending through
// the plain-JS expression/statement tree is replaced by its emitted
// form, which has already lowered everything beneath it.
func walkReplace(module *state.Module, opts options.Options, n *ast.Node) {
	if n == nil {
		return
	}
	for i, c := range n.Children {
		n.Children[i] = maybeReplace(module, opts, c)
	}
	n.Right = maybeReplace(module, opts, n.Right)
	n.Left = maybeReplace(module, opts, n.Left)
	n.Callee = maybeReplace(module, opts, n.Callee)
	n.Object = maybeReplace(module, opts, n.Object)
	n.Property = maybeReplace(module, opts, n.Property)
	n.Test = maybeReplace(module, opts, n.Test)
}

func maybeReplace(module *state.Module, opts options.Options, c *ast.Node) *ast.Node {
	if c == nil {
		return nil
	}
	if c.Kind == ast.KindJSXElement || c.Kind == ast.KindJSXFragment {
		return EmitJSX(module, opts, c)
	}
	walkReplace(module, opts, c)
	return c
}
