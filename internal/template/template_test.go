package template

import (
	"testing"

	"github.com/domexpr/compiler-go/internal/ast"
)

func exprContainer(inner *ast.Node) *ast.Node {
	return &ast.Node{Kind: ast.KindJSXExpressionContainer, Right: inner}
}

func TestBuildStaticElement(t *testing.T) {
	div := &ast.Node{
		Kind: ast.KindJSXElement,
		Tag:  "div",
		Attrs: []ast.JSXAttribute{
			{Name: "className", Kind: ast.AttrQuoted, Value: ast.StringLit("box")},
		},
		Children: []*ast.Node{
			{Kind: ast.KindJSXText, Data: "hello"},
		},
	}

	tpl := Build(div, nil)
	if tpl.HTML != `<div class="box">hello</div>` {
		t.Errorf("HTML = %q", tpl.HTML)
	}
	if len(tpl.DynamicSlots) != 0 {
		t.Errorf("expected no dynamic slots, got %v", tpl.DynamicSlots)
	}
}

func TestBuildVoidElement(t *testing.T) {
	img := &ast.Node{Kind: ast.KindJSXElement, Tag: "img"}
	tpl := Build(img, nil)
	if tpl.HTML != "<img>" {
		t.Errorf("HTML = %q", tpl.HTML)
	}
}

func TestBuildDynamicTextSlot(t *testing.T) {
	span := &ast.Node{
		Kind: ast.KindJSXElement,
		Tag:  "span",
		Children: []*ast.Node{
			exprContainer(ast.Ident("count")),
		},
	}
	tpl := Build(span, nil)
	if tpl.HTML != "<span></span>" {
		t.Errorf("HTML = %q", tpl.HTML)
	}
	if len(tpl.DynamicSlots) != 1 {
		t.Fatalf("expected 1 dynamic slot, got %d", len(tpl.DynamicSlots))
	}
	slot := tpl.DynamicSlots[0]
	if slot.Kind != SlotTextContent {
		t.Errorf("slot kind = %v, want SlotTextContent", slot.Kind)
	}
	if slot.HasMarker {
		t.Error("a single/last dynamic text child needs no marker")
	}
}

func TestBuildDynamicTextSlotNotLastNeedsMarker(t *testing.T) {
	div := &ast.Node{
		Kind: ast.KindJSXElement,
		Tag:  "div",
		Children: []*ast.Node{
			exprContainer(ast.Ident("a")),
			{Kind: ast.KindJSXText, Data: "!"},
		},
	}
	tpl := Build(div, nil)
	if tpl.HTML != "<div><!>!</div>" {
		t.Errorf("HTML = %q", tpl.HTML)
	}
	if !tpl.DynamicSlots[0].HasMarker {
		t.Error("a non-last dynamic text child needs a marker")
	}
}

func TestBuildDynamicAttributeSlot(t *testing.T) {
	div := &ast.Node{
		Kind: ast.KindJSXElement,
		Tag:  "div",
		Attrs: []ast.JSXAttribute{
			{Name: "id", Kind: ast.AttrExpression, Value: exprContainer(ast.Ident("id"))},
		},
	}
	tpl := Build(div, nil)
	if tpl.HTML != "<div></div>" {
		t.Errorf("HTML = %q", tpl.HTML)
	}
	if len(tpl.DynamicSlots) != 1 || tpl.DynamicSlots[0].Kind != SlotAttribute || tpl.DynamicSlots[0].Name != "id" {
		t.Errorf("slots = %+v", tpl.DynamicSlots)
	}
}

func TestBuildEventHandlerSlot(t *testing.T) {
	button := &ast.Node{
		Kind: ast.KindJSXElement,
		Tag:  "button",
		Attrs: []ast.JSXAttribute{
			{Name: "onClick", Kind: ast.AttrExpression, Value: exprContainer(ast.Ident("handleClick"))},
		},
	}
	tpl := Build(button, nil)
	if len(tpl.DynamicSlots) != 1 {
		t.Fatalf("expected 1 slot, got %d", len(tpl.DynamicSlots))
	}
	slot := tpl.DynamicSlots[0]
	if slot.Kind != SlotEventHandler || slot.Name != "click" {
		t.Errorf("slot = %+v", slot)
	}
}

func TestBuildNestedElementPaths(t *testing.T) {
	inner := &ast.Node{
		Kind: ast.KindJSXElement,
		Tag:  "b",
		Attrs: []ast.JSXAttribute{
			{Name: "id", Kind: ast.AttrExpression, Value: exprContainer(ast.Ident("id"))},
		},
	}
	outer := &ast.Node{
		Kind:     ast.KindJSXElement,
		Tag:      "div",
		Children: []*ast.Node{inner},
	}
	tpl := Build(outer, nil)
	if tpl.HTML != "<div><b></b></div>" {
		t.Errorf("HTML = %q", tpl.HTML)
	}
	if len(tpl.DynamicSlots) != 1 {
		t.Fatalf("expected 1 slot, got %d", len(tpl.DynamicSlots))
	}
	wantPath := []string{"firstChild"}
	got := tpl.DynamicSlots[0].Path
	if len(got) != len(wantPath) || got[0] != wantPath[0] {
		t.Errorf("path = %v, want %v", got, wantPath)
	}
}

func TestBuildComponentChildIsDynamicSlotNotEmbeddedHTML(t *testing.T) {
	comp := &ast.Node{Kind: ast.KindJSXElement, Tag: "Foo"}
	div := &ast.Node{
		Kind:     ast.KindJSXElement,
		Tag:      "div",
		Children: []*ast.Node{comp},
	}
	tpl := Build(div, nil)
	// The component's tag must never land in the hoisted HTML (spec
	// §4.2): only a child marker, never "<foo>" or "<Foo>".
	if tpl.HTML != "<div></div>" {
		t.Errorf("HTML = %q, want the component tag absent entirely", tpl.HTML)
	}
	if len(tpl.DynamicSlots) != 1 {
		t.Fatalf("expected 1 dynamic slot for the component child, got %d", len(tpl.DynamicSlots))
	}
	slot := tpl.DynamicSlots[0]
	if slot.Kind != SlotTextContent {
		t.Errorf("slot kind = %v, want SlotTextContent", slot.Kind)
	}
	if slot.HasMarker {
		t.Error("a single/last component child needs no marker")
	}
	if slot.Expr != comp {
		t.Errorf("slot.Expr should be the component element itself so the emitter can lower it, got %+v", slot.Expr)
	}
}

func TestBuildComponentChildNotLastGetsMarker(t *testing.T) {
	comp := &ast.Node{Kind: ast.KindJSXElement, Tag: "Foo"}
	div := &ast.Node{
		Kind: ast.KindJSXElement,
		Tag:  "div",
		Children: []*ast.Node{
			comp,
			{Kind: ast.KindJSXText, Data: "tail"},
		},
	}
	tpl := Build(div, nil)
	if tpl.HTML != "<div><!>tail</div>" {
		t.Errorf("HTML = %q", tpl.HTML)
	}
	if len(tpl.DynamicSlots) != 1 || !tpl.DynamicSlots[0].HasMarker {
		t.Fatalf("expected 1 marker-backed slot, got %+v", tpl.DynamicSlots)
	}
}

func TestBuildFragmentChildIsDynamicSlot(t *testing.T) {
	frag := &ast.Node{Kind: ast.KindJSXFragment}
	div := &ast.Node{
		Kind:     ast.KindJSXElement,
		Tag:      "div",
		Children: []*ast.Node{frag},
	}
	tpl := Build(div, nil)
	if tpl.HTML != "<div></div>" {
		t.Errorf("HTML = %q, want the fragment contributing nothing to the markup", tpl.HTML)
	}
	if len(tpl.DynamicSlots) != 1 || tpl.DynamicSlots[0].Expr != frag {
		t.Fatalf("expected 1 slot referencing the fragment node, got %+v", tpl.DynamicSlots)
	}
}
