package emitter

import (
	"strings"
	"testing"

	"github.com/domexpr/compiler-go/internal/ast"
	"github.com/domexpr/compiler-go/internal/options"
	"github.com/domexpr/compiler-go/internal/printer"
)

func TestEmitComponentMemberExprTag(t *testing.T) {
	node := &ast.Node{
		Kind:       ast.KindJSXElement,
		Tag:        "Ns.Comp",
		Component:  true,
		MemberExpr: true,
	}
	got := EmitJSX(newTestModule(), options.Default(), node)
	out := printer.Print(&ast.Node{Kind: ast.KindProgram, Children: []*ast.Node{ast.ExprStmt(got)}})
	if !strings.Contains(out, "_$createComponent(Ns.Comp, {})") {
		t.Errorf("unexpected output: %s", out)
	}
}

func TestBuildChildrenPropSingleChild(t *testing.T) {
	m := newTestModule()
	node := &ast.Node{
		Kind: ast.KindJSXElement, Tag: "Box", Component: true,
		Children: []*ast.Node{{Kind: ast.KindJSXText, Data: "hi"}},
	}
	got := emitComponent(m, options.Default(), node)
	out := printer.Print(&ast.Node{Kind: ast.KindProgram, Children: []*ast.Node{ast.ExprStmt(got)}})
	if !strings.Contains(out, `children: "hi"`) {
		t.Errorf("expected single text child to collapse to a bare string prop: %s", out)
	}
}

func TestBuildChildrenPropMixedGetsGetterWrapped(t *testing.T) {
	m := newTestModule()
	node := &ast.Node{
		Kind: ast.KindJSXElement, Tag: "Box", Component: true,
		Children: []*ast.Node{
			{Kind: ast.KindJSXText, Data: "a"},
			{Kind: ast.KindJSXExpressionContainer, Right: ast.Ident("b")},
		},
	}
	got := emitComponent(m, options.Default(), node)
	out := printer.Print(&ast.Node{Kind: ast.KindProgram, Children: []*ast.Node{ast.ExprStmt(got)}})
	if !strings.Contains(out, "get children()") {
		t.Errorf("expected mixed text+expression children to be getter-wrapped: %s", out)
	}
}

func TestWrapFragmentChildLeavesSimpleAlone(t *testing.T) {
	m := newTestModule()
	got := wrapFragmentChild(m, options.Default(), ast.Ident("x"))
	if got.Kind != ast.KindIdentifier {
		t.Errorf("expected a simple identifier to pass through, got kind %v", got.Kind)
	}
}

func TestWrapFragmentChildWrapsComplexExpression(t *testing.T) {
	m := newTestModule()
	raw := &ast.Node{Kind: ast.KindRawExpression, Raw: "a + b", Shape: ast.ShapeOther}
	got := wrapFragmentChild(m, options.Default(), raw)
	out := printer.Print(&ast.Node{Kind: ast.KindProgram, Children: []*ast.Node{ast.ExprStmt(got)}})
	if !strings.Contains(out, "_$memo(() => a + b)") {
		t.Errorf("expected complex expression wrapped in _$memo: %s", out)
	}
}

func TestWrapFragmentChildUnwrapsZeroArgCall(t *testing.T) {
	m := newTestModule()
	call := &ast.Node{Kind: ast.KindRawExpression, Raw: "f()", Shape: ast.ShapeZeroArgCall}
	got := wrapFragmentChild(m, options.Default(), call)
	out := printer.Print(&ast.Node{Kind: ast.KindProgram, Children: []*ast.Node{ast.ExprStmt(got)}})
	if !strings.Contains(out, "_$memo(f)") {
		t.Errorf("expected zero-arg call unwrapped as the memo callee: %s", out)
	}
}

func TestDecodeEntities(t *testing.T) {
	if got := decodeEntities("a &amp; b"); got != "a & b" {
		t.Errorf("decodeEntities() = %q, want %q", got, "a & b")
	}
}
