package emitter

import (
	"strings"

	"github.com/domexpr/compiler-go/internal/ast"
	"github.com/domexpr/compiler-go/internal/state"
)

func pathKey(path []string) string {
	return strings.Join(path, "/")
}

// materializePaths assigns an element variable to every distinct
// non-empty path referenced by slots (as either a binding target or a
// text-marker position), emitting one declarator per path in
// parent-before-child order so each declarator's initializer can
// reference an already-declared ancestor variable (spec §4.5).
//
// It returns the declarator list (root excluded — the caller prepends
// the root declarator itself) and a lookup from path to variable name.
func materializePaths(module *state.Module, rootVar string, paths [][]string) ([]*ast.Node, map[string]string) {
	varFor := map[string]string{"": rootVar}
	seen := map[string]bool{"": true}

	var ordered [][]string
	for _, p := range paths {
		// A path can only be walked if every ancestor step is itself
		// materialized first (spec §4.5: "each intermediate path is
		// materialized as a variable"), so expand every prefix of p —
		// not just p itself — into the candidate set.
		for depth := 1; depth <= len(p); depth++ {
			prefix := p[:depth]
			k := pathKey(prefix)
			if seen[k] {
				continue
			}
			seen[k] = true
			ordered = append(ordered, append([]string(nil), prefix...))
		}
	}

	// Parent-before-child: sort by depth, preserving first-seen order
	// within a depth via a stable sort.
	stableSortByDepth(ordered)

	var decls []*ast.Node
	for _, p := range ordered {
		parentKey := pathKey(p[:len(p)-1])
		parentVar := varFor[parentKey]
		step := p[len(p)-1]
		varName := module.NextElementVar()
		varFor[pathKey(p)] = varName
		decls = append(decls, ast.VarDeclarator(varName, ast.Member(ast.Ident(parentVar), step)))
	}
	return decls, varFor
}

func stableSortByDepth(paths [][]string) {
	// insertion sort: stable, and path lists here are always small.
	for i := 1; i < len(paths); i++ {
		j := i
		for j > 0 && len(paths[j-1]) > len(paths[j]) {
			paths[j-1], paths[j] = paths[j], paths[j-1]
			j--
		}
	}
}

func resolveVar(varFor map[string]string, path []string) string {
	if v, ok := varFor[pathKey(path)]; ok {
		return v
	}
	return varFor[""]
}
