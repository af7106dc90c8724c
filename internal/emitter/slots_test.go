package emitter

import (
	"strings"
	"testing"

	"github.com/domexpr/compiler-go/internal/ast"
	"github.com/domexpr/compiler-go/internal/options"
	"github.com/domexpr/compiler-go/internal/template"
)

func TestLowerSlotAttributeWrapsEffect(t *testing.T) {
	m := newTestModule()
	slot := template.DynamicSlot{Kind: template.SlotAttribute, Name: "id", Expr: ast.Ident("id")}
	out := printStmt(lowerSlot(m, options.Default(), slot, "_el$", "_el$", "", false))
	if !strings.Contains(out, "_$effect(() => _$setAttribute(_el$, \"id\", id))") {
		t.Errorf("unexpected output: %s", out)
	}
}

func TestLowerSlotPropAttributeIsPlainAssignment(t *testing.T) {
	m := newTestModule()
	slot := template.DynamicSlot{Kind: template.SlotPropAttribute, Name: "value", Expr: ast.Ident("v")}
	out := printStmt(lowerSlot(m, options.Default(), slot, "_el$", "_el$", "", false))
	if !strings.Contains(out, "_el$.value = v;") {
		t.Errorf("unexpected output: %s", out)
	}
}

func TestLowerSlotRefCallsUse(t *testing.T) {
	m := newTestModule()
	slot := template.DynamicSlot{Kind: template.SlotRef, Expr: ast.Ident("setRef")}
	out := printStmt(lowerSlot(m, options.Default(), slot, "_el$", "_el$", "", false))
	if !strings.Contains(out, "_$use(setRef, _el$);") {
		t.Errorf("unexpected output: %s", out)
	}
}

func TestLowerSlotTextContentUsesMarkerWhenPresent(t *testing.T) {
	m := newTestModule()
	slot := template.DynamicSlot{Kind: template.SlotTextContent, Expr: ast.Ident("x"), HasMarker: true}
	out := printStmt(lowerSlot(m, options.Default(), slot, "_el$", "_root$", "_marker$", true))
	if !strings.Contains(out, "_$insert(_root$, x, _marker$);") {
		t.Errorf("expected marker used as the insert boundary: %s", out)
	}
}

func TestLowerSlotTextContentNoMarkerUsesNull(t *testing.T) {
	m := newTestModule()
	slot := template.DynamicSlot{Kind: template.SlotTextContent, Expr: ast.Ident("x")}
	out := printStmt(lowerSlot(m, options.Default(), slot, "_el$", "_root$", "", false))
	if !strings.Contains(out, "_$insert(_root$, x, null);") {
		t.Errorf("expected null when there is no marker: %s", out)
	}
}

func TestLowerEventHandlerDelegatesWhenEligible(t *testing.T) {
	m := newTestModule()
	slot := template.DynamicSlot{Kind: template.SlotEventHandler, Name: "click", Expr: ast.Ident("onClick")}
	out := printStmt(lowerSlot(m, options.Default(), slot, "_el$", "_el$", "", false))
	if !strings.Contains(out, "_el$.$$click = onClick;") {
		t.Errorf("expected delegated assignment: %s", out)
	}
	if !m.HasDelegatedEvents() {
		t.Error("expected the module to record the delegated event")
	}
}

func TestLowerEventHandlerNonDelegatedUsesAddEventListener(t *testing.T) {
	m := newTestModule()
	slot := template.DynamicSlot{Kind: template.SlotEventHandler, Name: "scroll", Expr: ast.Ident("onScroll")}
	out := printStmt(lowerSlot(m, options.Default(), slot, "_el$", "_el$", "", false))
	if !strings.Contains(out, `_el$.addEventListener("scroll", onScroll);`) {
		t.Errorf("expected addEventListener for a non-delegated event: %s", out)
	}
}

func TestLowerEventHandlerArrayFormWithData(t *testing.T) {
	m := newTestModule()
	arr := ast.Array(ast.Ident("handler"), ast.Ident("rowId"))
	slot := template.DynamicSlot{Kind: template.SlotEventHandler, Name: "click", Expr: arr}
	out := printStmt(lowerSlot(m, options.Default(), slot, "_el$", "_el$", "", false))
	if !strings.Contains(out, "_el$.$$clickData = rowId;") {
		t.Errorf("expected delegated data assignment for array-form handler: %s", out)
	}
}

func TestLowerSpread(t *testing.T) {
	m := newTestModule()
	out := printStmt(lowerSpread(m, "_el$", ast.Ident("props")))
	if !strings.Contains(out, "_$spread(_el$, props, false, true);") {
		t.Errorf("unexpected output: %s", out)
	}
}
