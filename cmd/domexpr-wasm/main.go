//go:build js && wasm

// Command domexpr-wasm exposes the compiler to a JS host, grounded on
// the teacher's cmd/astro-wasm bridge: a single global function built
// with js.FuncOf, arguments/results marshaled through norunners/vert
// instead of hand-written js.Value plumbing. The JS host passes the
// program as a JSON-encoded ast.Node (see cmd/domexpr) plus an options
// object; Transform returns the printed code and any diagnostics.
package main

import (
	"syscall/js"

	"github.com/go-json-experiment/json"
	"github.com/norunners/vert"

	"github.com/domexpr/compiler-go/internal/ast"
	"github.com/domexpr/compiler-go/internal/emitter"
	"github.com/domexpr/compiler-go/internal/options"
	"github.com/domexpr/compiler-go/internal/printer"
)

// TransformResult is the value handed back to the JS host.
type TransformResult struct {
	Code  string   `js:"code"`
	Error string   `js:"error"`
	Warnings []string `js:"warnings"`
}

func Transform(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return vert.ValueOf(TransformResult{Error: "domexpr: missing program argument"})
	}

	programJSON := args[0].String()

	opts := options.Default()
	if len(args) > 1 && args[1].Type() == js.TypeString {
		o, err := options.Load([]byte(args[1].String()))
		if err != nil {
			return vert.ValueOf(TransformResult{Error: err.Error()})
		}
		opts = o
	}

	var program ast.Node
	if err := json.Unmarshal([]byte(programJSON), &program); err != nil {
		return vert.ValueOf(TransformResult{Error: "domexpr: decoding program: " + err.Error()})
	}

	result := emitter.Transform(opts, &program)
	code := printer.Print(result)

	return vert.ValueOf(TransformResult{Code: code})
}

func main() {
	c := make(chan struct{}, 0)
	js.Global().Set("__domexpr_transform", js.FuncOf(Transform))
	<-c
}
