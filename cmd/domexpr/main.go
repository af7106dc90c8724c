// Command domexpr is the command-line entry point for the compiler,
// grounded on the teacher's cmd/astro-wasm bridge (Transform dispatching
// on a JSON-decoded options struct, then printer.PrintToJS) but adapted
// to a file-based CLI instead of a JS-host bridge: since source parsing
// is out of scope (spec.md §1), it reads a JSON-encoded ast.Node Program
// — the "AST Interface (external)" spec.md §2/§6 describes — rather than
// JSX source text.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/go-json-experiment/json"

	"github.com/domexpr/compiler-go/internal/ast"
	"github.com/domexpr/compiler-go/internal/emitter"
	"github.com/domexpr/compiler-go/internal/options"
	"github.com/domexpr/compiler-go/internal/printer"
)

func main() {
	var (
		astPath  = flag.String("ast", "", "path to a JSON-encoded ast.Node Program (default: stdin)")
		optsPath = flag.String("options", "", "path to a JSON-encoded options.Options config")
		outPath  = flag.String("out", "", "path to write the printed JS output (default: stdout)")
		ssr      = flag.Bool("ssr", false, "force Ssr generate mode, overriding -options")
		stats    = flag.Bool("stats", false, "print template interning stats (get_stats/get_reused_templates) as JSON to stderr")
	)
	flag.Parse()

	opts := options.Default()
	if *optsPath != "" {
		data, err := os.ReadFile(*optsPath)
		if err != nil {
			fatalf("domexpr: %v", err)
		}
		opts, err = options.Load(data)
		if err != nil {
			fatalf("domexpr: %v", err)
		}
	}
	if *ssr {
		opts = opts.WithGenerate(options.Ssr)
	}

	var astData []byte
	var err error
	if *astPath == "" || *astPath == "-" {
		astData, err = readAll(os.Stdin)
	} else {
		astData, err = os.ReadFile(*astPath)
		opts.Filename = *astPath
	}
	if err != nil {
		fatalf("domexpr: %v", err)
	}

	var program ast.Node
	if err := json.Unmarshal(astData, &program); err != nil {
		fatalf("domexpr: decoding program: %v", err)
	}

	result := emitter.TransformFull(opts, &program)
	code := printer.Print(result.Program)

	if *stats {
		statsJSON, err := json.Marshal(struct {
			Stats           any `json:"stats"`
			Optimizations   any `json:"optimizations"`
			ReusedTemplates any `json:"reusedTemplates"`
		}{result.Stats, result.Optimizations, result.ReusedTemplates})
		if err != nil {
			fatalf("domexpr: %v", err)
		}
		fmt.Fprintln(os.Stderr, string(statsJSON))
	}

	if *outPath == "" {
		fmt.Fprint(os.Stdout, code)
		return
	}
	if err := os.WriteFile(*outPath, []byte(code), 0o644); err != nil {
		fatalf("domexpr: %v", err)
	}
}

func readAll(f *os.File) ([]byte, error) {
	data, err := io.ReadAll(f)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return data, nil
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
