package emitter

import (
	"strings"
	"testing"

	"github.com/domexpr/compiler-go/internal/ast"
	"github.com/domexpr/compiler-go/internal/options"
	"github.com/domexpr/compiler-go/internal/printer"
)

func printNode(n *ast.Node) string {
	return printer.Print(&ast.Node{Kind: ast.KindProgram, Children: []*ast.Node{ast.ExprStmt(n)}})
}

// printStmt renders an already-built statement node (as lowerSlot returns)
// directly, without re-wrapping it as an expression.
func printStmt(n *ast.Node) string {
	return printer.Print(&ast.Node{Kind: ast.KindProgram, Children: []*ast.Node{n}})
}

func TestEmitHostElementStaticReturnsBareClone(t *testing.T) {
	m := newTestModule()
	div := &ast.Node{Kind: ast.KindJSXElement, Tag: "div"}
	got := EmitJSX(m, options.Default(), div)
	if got.Kind != ast.KindCallExpression || len(got.Children) != 0 {
		t.Errorf("expected a bare zero-arg clone call, got %s", printNode(got))
	}
}

func TestEmitHostElementReusesInternedTemplate(t *testing.T) {
	m := newTestModule()
	opts := options.Default()
	a := EmitJSX(m, opts, &ast.Node{Kind: ast.KindJSXElement, Tag: "div"})
	b := EmitJSX(m, opts, &ast.Node{Kind: ast.KindJSXElement, Tag: "div"})
	if a.Callee.Data != b.Callee.Data {
		t.Errorf("two identical templates should intern to the same clone callee: %q vs %q", a.Callee.Data, b.Callee.Data)
	}
}

func TestEmitHostElementDynamicWrapsIIFE(t *testing.T) {
	m := newTestModule()
	span := &ast.Node{
		Kind: ast.KindJSXElement,
		Tag:  "span",
		Children: []*ast.Node{
			{Kind: ast.KindJSXExpressionContainer, Right: ast.Ident("count")},
		},
	}
	got := EmitJSX(m, options.Default(), span)
	out := printNode(got)
	if !strings.Contains(out, "(() => {") {
		t.Errorf("expected an IIFE wrapper for a template with dynamic slots: %s", out)
	}
	if !strings.Contains(out, "return _el$;") {
		t.Errorf("expected the IIFE to return its root element var: %s", out)
	}
}
