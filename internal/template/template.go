// Package template builds the per-JSX-element HTML template string and
// its dynamic slot list — the compiler's core data structure (spec.md
// §3-§4.2). It is a direct Go port of original_source's
// src/template.rs build_template/build_element_html/
// build_child_html_with_context, restructured around internal/ast.Node
// and internal/classify instead of oxc_ast, the way the teacher's own
// printer walks astro.Node instead of a borrowed parser's tree.
package template

import (
	"strconv"
	"strings"

	"github.com/domexpr/compiler-go/internal/ast"
	"github.com/domexpr/compiler-go/internal/classify"
	"github.com/domexpr/compiler-go/internal/loc"
)

// SlotKind is the discriminant of a DynamicSlot, mirroring
// original_source's SlotType enum.
type SlotKind int

const (
	SlotTextContent SlotKind = iota
	SlotAttribute
	SlotEventHandler
	SlotRef
	SlotClassList
	SlotStyleObject
	SlotOnEvent
	SlotOnCaptureEvent
	SlotBoolAttribute
	SlotPropAttribute
	SlotAttrAttribute
	SlotUseDirective
	SlotStyleProperty
	SlotClassBinding
	SlotSpread
)

// DynamicSlot is a single position in a template that the emitter's
// slot lowering (internal/emitter lowerSlot) fills in after cloning
// (spec §3).
type DynamicSlot struct {
	Path       []string
	Kind       SlotKind
	Name       string // attribute/event/style-property/use-directive name; empty for TextContent/Ref/ClassList/StyleObject/Spread
	MarkerPath []string
	HasMarker  bool
	Expr       *ast.Node // the dynamic expression/value that will be bound here
	Loc        loc.Loc
}

// Template is the built HTML plus its dynamic slots for one JSX element
// (spec §3).
type Template struct {
	HTML         string
	DynamicSlots []DynamicSlot
}

// Build walks a JSXElement node and produces its unminimized Template.
// Minimization (quote/closing-tag omission) is a separate pass, package
// internal/minify, applied afterward exactly as original_source applies
// minimalize_template after build_element_html returns.
func Build(element *ast.Node, builtIns []string) Template {
	var t Template
	var html strings.Builder
	path := make([]string, 0, 8)
	buildElementHTML(element, &html, &t.DynamicSlots, &path, builtIns)
	t.HTML = html.String()
	return t
}

func buildElementHTML(element *ast.Node, html *strings.Builder, slots *[]DynamicSlot, path *[]string, builtIns []string) {
	tag := elementTagName(element)

	html.WriteByte('<')
	html.WriteString(tag)

	for _, attr := range element.Attrs {
		writeAttribute(attr, html, slots, path)
	}

	html.WriteByte('>')

	if classify.IsVoidElement(tag) {
		return
	}

	childPathStart := len(*path)
	hasPreviousNode := false

	children := element.Children
	for i, child := range children {
		isLastChild := i == len(children)-1

		if !hasPreviousNode {
			*path = append(*path, "firstChild")
			hasPreviousNode = true
		} else {
			(*path)[len(*path)-1] = "nextSibling"
		}

		buildChildHTML(child, html, slots, path, isLastChild, builtIns)
	}

	*path = (*path)[:childPathStart]

	html.WriteString("</")
	html.WriteString(tag)
	html.WriteByte('>')
}

func buildChildHTML(child *ast.Node, html *strings.Builder, slots *[]DynamicSlot, path *[]string, isLastChild bool, builtIns []string) {
	switch child.Kind {
	case ast.KindJSXText:
		text := child.Data
		trimmed := strings.TrimSpace(text)
		if trimmed == "" && strings.Contains(text, "\n") {
			return
		}
		html.WriteString(escapeTemplateText(text))

	case ast.KindJSXElement:
		// A host-element child is folded directly into the template's
		// HTML (spec §4.2's "descend without changing the slot-collection
		// policy"). A component child is not: spec §4.2 is explicit that
		// "the builder does NOT embed a component's output into the
		// HTML. It treats the component child as a dynamic expression" —
		// the same marker/trailing-slot rule an expression-container
		// child gets, with the element node itself as the slot's Expr so
		// the emitter's resolveExpr can lower it via _$createComponent.
		if classify.IsComponent(child.Tag, child.MemberExpr, builtIns) {
			addDynamicChildSlot(html, slots, path, isLastChild, child, child.Loc)
			return
		}
		buildElementHTML(child, html, slots, path, builtIns)

	case ast.KindJSXFragment:
		// A fragment has no tag to embed into the HTML either way, so it
		// is always treated as a dynamic expression child, same as a
		// component.
		addDynamicChildSlot(html, slots, path, isLastChild, child, child.Loc)

	case ast.KindJSXExpressionContainer:
		inner := child.Right
		if inner == nil && len(child.Children) > 0 {
			inner = child.Children[0]
		}
		if inner == nil {
			return
		}
		switch inner.Kind {
		case ast.KindStringLiteral:
			html.WriteString(escapeTemplateText(inner.Data))
			return
		case ast.KindNumericLiteral:
			html.WriteString(inner.Raw)
			return
		case ast.KindBooleanLiteral:
			html.WriteString(inner.Raw)
			return
		}
		if inner.Kind == ast.KindJSXEmptyExpression {
			return
		}

		addDynamicChildSlot(html, slots, path, isLastChild, inner, child.Loc)

	case ast.KindJSXEmptyExpression:
		// comment child, nothing to emit
	}
}

// addDynamicChildSlot records a TextContent slot for a dynamic child
// (an expression-container value, a component element, or a fragment),
// inserting a `<!>` marker into the HTML when the child is not the last
// one of its parent, or leaving a trailing null-marker slot when it is
// (spec §4.2).
func addDynamicChildSlot(html *strings.Builder, slots *[]DynamicSlot, path *[]string, isLastChild bool, expr *ast.Node, at loc.Loc) {
	var markerPath []string
	hasMarker := false
	if !isLastChild {
		html.WriteString("<!>")
		markerPath = append([]string(nil), (*path)...)
		hasMarker = true
	}

	*slots = append(*slots, DynamicSlot{
		Path:       nil,
		Kind:       SlotTextContent,
		MarkerPath: markerPath,
		HasMarker:  hasMarker,
		Expr:       expr,
		Loc:        at,
	})
}

func writeAttribute(attr ast.JSXAttribute, html *strings.Builder, slots *[]DynamicSlot, path *[]string) {
	if attr.Kind == ast.AttrSpread {
		*slots = append(*slots, DynamicSlot{
			Path: append([]string(nil), (*path)...),
			Kind: SlotSpread,
			Expr: attr.SpreadArg,
			Loc:  attr.KeyLoc,
		})
		return
	}

	name := classify.NormalizeAttrName(attr.Name)
	combined := name
	if attr.Namespace != "" {
		combined = attr.Namespace + ":" + name
	}

	if dir, rest, ok := classify.MatchDirective(combined); ok {
		kind, slotName := directiveSlotKind(dir, rest)
		*slots = append(*slots, DynamicSlot{
			Path: append([]string(nil), (*path)...),
			Kind: kind,
			Name: slotName,
			Expr: attr.Value,
			Loc:  attr.KeyLoc,
		})
		return
	}

	switch {
	case classify.IsRefBinding(name):
		*slots = append(*slots, DynamicSlot{Path: append([]string(nil), (*path)...), Kind: SlotRef, Expr: attr.Value, Loc: attr.KeyLoc})
	case classify.IsClassListBinding(name):
		*slots = append(*slots, DynamicSlot{Path: append([]string(nil), (*path)...), Kind: SlotClassList, Expr: attr.Value, Loc: attr.KeyLoc})
	case classify.IsStyleBinding(name) && attr.Value != nil:
		if static, ok := staticAttributeValue(attr.Value); ok {
			html.WriteString(` style="`)
			html.WriteString(static)
			html.WriteByte('"')
		} else {
			*slots = append(*slots, DynamicSlot{Path: append([]string(nil), (*path)...), Kind: SlotStyleObject, Expr: attr.Value, Loc: attr.KeyLoc})
		}
	case classify.IsEventHandler(name):
		event := classify.EventName(name)
		*slots = append(*slots, DynamicSlot{Path: append([]string(nil), (*path)...), Kind: SlotEventHandler, Name: event, Expr: attr.Value, Loc: attr.KeyLoc})
	case attr.Value != nil:
		if static, ok := staticAttributeValue(attr.Value); ok {
			html.WriteByte(' ')
			html.WriteString(name)
			html.WriteString(`="`)
			html.WriteString(static)
			html.WriteByte('"')
		} else {
			*slots = append(*slots, DynamicSlot{Path: append([]string(nil), (*path)...), Kind: SlotAttribute, Name: name, Expr: attr.Value, Loc: attr.KeyLoc})
		}
	default:
		html.WriteByte(' ')
		html.WriteString(name)
	}
}

func directiveSlotKind(dir classify.DirectiveKind, name string) (SlotKind, string) {
	switch dir {
	case classify.DirectiveOn:
		return SlotOnEvent, name
	case classify.DirectiveOnCapture:
		return SlotOnCaptureEvent, name
	case classify.DirectiveBool:
		return SlotBoolAttribute, name
	case classify.DirectiveProp:
		return SlotPropAttribute, name
	case classify.DirectiveAttr:
		return SlotAttrAttribute, name
	case classify.DirectiveUse:
		return SlotUseDirective, name
	case classify.DirectiveStyle:
		return SlotStyleProperty, name
	case classify.DirectiveClass:
		return SlotClassBinding, name
	}
	return SlotAttribute, name
}

// staticAttributeValue mirrors original_source's get_static_attribute_value:
// a quoted string attribute, or an expression container wrapping a
// string/numeric/boolean literal, is inlined into the template HTML
// verbatim; any other expression shape is dynamic.
func staticAttributeValue(value *ast.Node) (string, bool) {
	switch value.Kind {
	case ast.KindStringLiteral:
		return value.Data, true
	case ast.KindNumericLiteral:
		return value.Raw, true
	case ast.KindBooleanLiteral:
		return value.Raw, true
	case ast.KindJSXExpressionContainer:
		inner := value.Right
		if inner == nil && len(value.Children) > 0 {
			inner = value.Children[0]
		}
		if inner == nil {
			return "", false
		}
		switch inner.Kind {
		case ast.KindStringLiteral:
			return inner.Data, true
		case ast.KindNumericLiteral:
			return inner.Raw, true
		case ast.KindBooleanLiteral:
			return inner.Raw, true
		}
	}
	return "", false
}

func elementTagName(element *ast.Node) string {
	if element.Kind == ast.KindJSXFragment {
		return ""
	}
	if element.TagNamespace != "" {
		return element.TagNamespace + ":" + element.Tag
	}
	return element.Tag
}

// escapeTemplateText mirrors original_source's child-text escaping: only
// backslashes and opening braces are escaped, matching the Babel plugin
// behavior the original notes it follows. This runs before the text is
// embedded in a JS template literal by the printer, so a literal
// backtick or `${` is handled later by the printer's own quoting.
func escapeTemplateText(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `{`, `\{`)
	return s
}

// quoteNumber formats a float64 in the shortest form that reads back as
// the same number. Nothing in this package calls it: numeric literals
// are always inlined from their Raw spelling, even when Raw is empty.
func quoteNumber(n float64) string {
	return strconv.FormatFloat(n, 'g', -1, 64)
}
