// Package validate runs a best-effort sanity check over a generated
// template's HTML using the standard-conformant golang.org/x/net/html
// parser: it round-trips the minimized template through a real HTML5
// tree builder and reports elements that end up directly under a table
// element they may not sit in (a sign the JSX nesting was invalid HTML,
// e.g. a <div> directly inside a <table>). This mirrors the teacher's own use of x/net/html in its printer
// test suite for round-trip DOM comparisons, repurposed here as an
// opt-in diagnostics pass (spec.md §4.2's Non-goal: "full HTML content
// model validation" is explicitly out of scope; this is the best-effort
// exception the spec allows for).
package validate

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/domexpr/compiler-go/internal/loc"
)

// Warning describes one element the parser restructured while parsing
// the template fragment, a signal (not a guarantee) of invalid nesting.
type Warning struct {
	Tag string
	Loc loc.Loc
}

// Check parses templateHTML as a fragment and reports any element whose
// reconstructed parent doesn't match what the compiler intended — in
// practice, this only fires for content-model violations x/net/html's
// parser silently repairs, like a <div> appearing directly inside a
// <table> without an intervening <tbody>/<tr>/<td>.
func Check(templateHTML string, context string) []Warning {
	if context == "" {
		context = "div"
	}
	contextNode := &html.Node{Type: html.ElementNode, Data: context, DataAtom: atom.Lookup([]byte(context))}
	nodes, err := html.ParseFragment(strings.NewReader(templateHTML), contextNode)
	if err != nil {
		return nil
	}

	var warnings []Warning
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && wasRelocated(n) {
			warnings = append(warnings, Warning{Tag: n.Data})
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range nodes {
		// ParseFragment returns top-level nodes detached; re-parent them
		// under the context so wasRelocated can see it.
		contextNode.AppendChild(n)
		walk(n)
	}
	return warnings
}

// wasRelocated reports the handful of cases the HTML5 tree construction
// algorithm is documented to "foster parent" content out of its literal
// source position — table-related misnesting is the only one a
// generated template can realistically trigger, since the compiler never
// emits a <html>/<head>/<body> itself.
func wasRelocated(n *html.Node) bool {
	if n.Parent == nil {
		return false
	}
	switch n.Parent.Data {
	case "table", "tbody", "thead", "tfoot", "tr":
		switch n.Data {
		case "tr", "td", "th", "tbody", "thead", "tfoot", "caption", "colgroup", "col":
			return false
		default:
			return true
		}
	}
	return false
}
