package emitter

import (
	"testing"

	"github.com/domexpr/compiler-go/internal/state"
)

func TestMaterializePathsParentBeforeChild(t *testing.T) {
	m := state.New()
	paths := [][]string{
		{"firstChild", "nextSibling"},
		{"firstChild"},
	}
	decls, varFor := materializePaths(m, "_el$", paths)
	if len(decls) != 2 {
		t.Fatalf("expected 2 declarators, got %d", len(decls))
	}
	if decls[0].Right.Object.Data != "_el$" {
		t.Errorf("first declarator should reference the root, got %+v", decls[0].Right.Object)
	}
	childVar := varFor[pathKey([]string{"firstChild"})]
	grandchildVar := varFor[pathKey([]string{"firstChild", "nextSibling"})]
	if decls[1].Right.Object.Data != childVar {
		t.Errorf("grandchild declarator should reference the child var %q, got %+v", childVar, decls[1].Right.Object)
	}
	if childVar == "" || grandchildVar == "" || childVar == grandchildVar {
		t.Errorf("expected distinct var names, got %q and %q", childVar, grandchildVar)
	}
}

func TestMaterializePathsDedupes(t *testing.T) {
	m := state.New()
	paths := [][]string{
		{"firstChild"},
		{"firstChild"},
	}
	decls, _ := materializePaths(m, "_el$", paths)
	if len(decls) != 1 {
		t.Errorf("expected duplicate paths to collapse to 1 declarator, got %d", len(decls))
	}
}

func TestMaterializePathsMaterializesUnreferencedIntermediate(t *testing.T) {
	m := state.New()
	// Only the depth-2 path is ever used by a slot (e.g. a grandchild
	// element's attribute); the depth-1 step in between must still get
	// its own declarator so the walk is two single-property hops, not
	// one hop mislabeled with the wrong step.
	paths := [][]string{
		{"firstChild", "firstChild"},
	}
	decls, varFor := materializePaths(m, "_el$", paths)
	if len(decls) != 2 {
		t.Fatalf("expected 2 declarators (intermediate + target), got %d", len(decls))
	}
	childVar := varFor[pathKey([]string{"firstChild"})]
	grandchildVar := varFor[pathKey([]string{"firstChild", "firstChild"})]
	if decls[0].Right.Object.Data != "_el$" || decls[0].Right.Property.Data != "firstChild" {
		t.Errorf("first declarator should be _el$.firstChild, got %+v.%+v", decls[0].Right.Object, decls[0].Right.Property)
	}
	if decls[1].Right.Object.Data != childVar || decls[1].Right.Property.Data != "firstChild" {
		t.Errorf("second declarator should be %s.firstChild, got %+v.%+v", childVar, decls[1].Right.Object, decls[1].Right.Property)
	}
	if childVar == "" || grandchildVar == "" || childVar == grandchildVar {
		t.Errorf("expected distinct var names, got %q and %q", childVar, grandchildVar)
	}
}

func TestResolveVarFallsBackToRoot(t *testing.T) {
	varFor := map[string]string{"": "_el$"}
	if got := resolveVar(varFor, []string{"firstChild"}); got != "_el$" {
		t.Errorf("resolveVar() = %q, want fallback to root _el$", got)
	}
}
