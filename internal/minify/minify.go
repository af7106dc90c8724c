// Package minify turns the well-formed HTML template.Build produces into
// the compact dom-expressions wire format: attribute quotes dropped when
// safe, and closing tags dropped along the last-child path. It is a
// direct Go port of original_source's src/template_minimalizer.rs, but
// built on github.com/tdewolff/parse/v2/html's tokenizer instead of the
// original's hand-rolled html_subset_parser — the teacher reaches for
// tdewolff/parse for exactly this kind of throwaway markup tokenization,
// so this package follows suit rather than hand-rolling a parser (spec's
// template HTML is always compiler-generated, never untrusted, so a
// permissive streaming tokenizer is all minimization needs).
package minify

import (
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/html"

	"github.com/domexpr/compiler-go/internal/options"
)

type nodeKind int

const (
	nodeText nodeKind = iota
	nodeMarker
	nodeElement
)

type attr struct {
	name  string
	value string
}

type node struct {
	kind     nodeKind
	text     string
	tag      string
	attrs    []attr
	children []*node
	void     bool
}

// Minimize parses the generated template HTML and re-serializes it with
// the quote- and closing-tag-omission rules spec.md §3/§4.2 describe.
func Minimize(src string, opts options.Options) string {
	nodes, ok := parseFragment(src)
	if !ok {
		// Malformed input (should not happen for compiler-generated HTML);
		// fall back to the unminimized string rather than guess.
		return src
	}
	return serializeAll(nodes, opts, true)
}

func parseFragment(src string) ([]*node, bool) {
	lexer := html.NewLexer(parse.NewInputString(src))

	root := &node{kind: nodeElement, tag: ""}
	stack := []*node{root}
	top := func() *node { return stack[len(stack)-1] }

	for {
		tt, data := lexer.Next()
		switch tt {
		case html.ErrorToken:
			if len(stack) != 1 {
				return nil, false
			}
			return root.children, true

		case html.TextToken:
			top().children = append(top().children, &node{kind: nodeText, text: string(data)})

		case html.CommentToken:
			if string(data) == "<!>" {
				top().children = append(top().children, &node{kind: nodeMarker})
			}
			// other bogus/real comments never appear in generated templates

		case html.StartTagToken:
			tag := string(lexer.Text())
			el := &node{kind: nodeElement, tag: tag}
			for {
				attrTT, _ := lexer.Next()
				if attrTT != html.AttributeToken {
					// StartTagCloseToken or StartTagVoidToken ends the tag;
					// re-dispatch it below by falling through the loop.
					if attrTT == html.StartTagVoidToken {
						el.void = true
					}
					break
				}
				name := string(lexer.Text())
				val := strings.Trim(string(lexer.AttrVal()), `"'`)
				el.attrs = append(el.attrs, attr{name: name, value: val})
			}
			top().children = append(top().children, el)
			if !el.void && !isVoidTag(tag) {
				stack = append(stack, el)
			}

		case html.EndTagToken:
			tag := string(lexer.Text())
			for i := len(stack) - 1; i > 0; i-- {
				if stack[i].tag == tag {
					stack = stack[:i]
					break
				}
			}
		}
	}
}

var voidTags = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

func isVoidTag(tag string) bool { return voidTags[strings.ToLower(tag)] }

func serializeAll(nodes []*node, opts options.Options, isRoot bool) string {
	var b strings.Builder
	for i, n := range nodes {
		isLast := i == len(nodes)-1
		b.WriteString(serializeNode(n, opts, isRoot && isLast))
	}
	return b.String()
}

func serializeNode(n *node, opts options.Options, onLastPath bool) string {
	switch n.kind {
	case nodeText:
		return n.text
	case nodeMarker:
		return "<!>"
	}

	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(n.tag)
	for _, a := range n.attrs {
		b.WriteByte(' ')
		b.WriteString(a.name)
		if a.value != "" {
			b.WriteByte('=')
			if opts.OmitQuotes && canOmitQuotes(a.value) {
				b.WriteString(a.value)
			} else {
				b.WriteByte('"')
				b.WriteString(a.value)
				b.WriteByte('"')
			}
		}
	}
	b.WriteByte('>')

	if n.void || isVoidTag(n.tag) {
		return b.String()
	}

	hasElementChildren, hasTextChildren := false, false
	for _, c := range n.children {
		switch c.kind {
		case nodeElement:
			hasElementChildren = true
		case nodeText:
			hasTextChildren = true
		}
	}
	shouldStopHere := onLastPath && hasElementChildren && hasTextChildren

	for idx, c := range n.children {
		childIsLast := idx == len(n.children)-1
		childIsElement := c.kind == nodeElement
		childOnLastPath := !shouldStopHere && onLastPath && childIsLast && childIsElement
		b.WriteString(serializeNode(c, opts, childOnLastPath))
	}

	if !(opts.OmitLastClosingTag && onLastPath && !shouldStopHere) {
		b.WriteString("</")
		b.WriteString(n.tag)
		b.WriteByte('>')
	}

	return b.String()
}

// canOmitQuotes mirrors original_source's can_omit_quotes exactly.
func canOmitQuotes(value string) bool {
	if value == "" {
		return false
	}
	for _, c := range value {
		if !(isAlnum(c) || c == '-' || c == '_' || c == '.' || c == ':') {
			return false
		}
	}
	return true
}

func isAlnum(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
