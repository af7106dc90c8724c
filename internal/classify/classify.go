// Package classify answers the purely name-driven questions the template
// builder and emitter need about a JSX tag or attribute name: is this a
// component, a void element, a delegatable event, a directive-prefixed
// binding? Every rule here is ported directly from original_source's
// src/utils.rs (is_component, is_void_element, should_delegate_event,
// is_ref_binding, ...), which is itself the source of truth spec.md §2/§4
// distill from, kept in one place the way the teacher keeps its own
// element/attribute predicates in internal/transform/utils.go.
package classify

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// IsComponent reports whether a JSX tag identifier names a component
// rather than a host element: it starts with an uppercase letter, is a
// member expression (Ns.Comp, always a component), or is explicitly
// listed in builtIns (spec §4.6, mirroring original_source's
// context_to_custom_elements/built_ins extension of is_component).
func IsComponent(tag string, memberExpr bool, builtIns []string) bool {
	if memberExpr {
		return true
	}
	if tag == "" {
		return false
	}
	if r := []rune(tag); r[0] >= 'A' && r[0] <= 'Z' {
		return true
	}
	for _, b := range builtIns {
		if b == tag {
			return true
		}
	}
	return false
}

var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// IsVoidElement reports whether tag never receives a closing tag or
// children (spec §4.2, original_source's is_void_element).
func IsVoidElement(tag string) bool {
	return voidElements[strings.ToLower(tag)]
}

var delegatedEvents = map[string]bool{
	"click": true, "dblclick": true, "input": true, "change": true,
	"submit": true, "reset": true, "mousedown": true, "mouseup": true,
	"mouseover": true, "mouseout": true, "mousemove": true, "keydown": true,
	"keyup": true, "keypress": true, "focus": true, "blur": true,
	"touchstart": true, "touchend": true, "touchmove": true, "touchcancel": true,
}

// ShouldDelegateEvent reports whether eventName (already stripped of any
// "on" prefix, e.g. "click") bubbles or composes and is therefore a
// candidate for the `delegateEvents` fast path rather than a per-element
// addEventListener call (spec §4.7, original_source's
// should_delegate_event — comparison is case-insensitive).
func ShouldDelegateEvent(eventName string) bool {
	return delegatedEvents[strings.ToLower(eventName)]
}

// IsRefBinding reports the `ref` attribute.
func IsRefBinding(name string) bool { return name == "ref" }

// IsClassListBinding reports the `classList` attribute.
func IsClassListBinding(name string) bool { return name == "classList" }

// IsStyleBinding reports the plain `style` attribute (as opposed to a
// `style:prop` directive, handled separately).
func IsStyleBinding(name string) bool {
	return name == "style" && !strings.HasPrefix(name, "style:")
}

// IsEventHandler reports a bare `onX` attribute (onClick, onInput, ...).
// Namespaced forms (on:, oncapture:) are matched first by the caller, so
// by the time this runs "on" + len>2 always means a direct DOM handler
// property.
func IsEventHandler(name string) bool {
	return strings.HasPrefix(name, "on") && len(name) > 2
}

// EventName strips the leading "on" from a bare event-handler attribute,
// lower-casing the first letter so "onClick" -> "click" matches the DOM
// event name the runtime registers.
func EventName(attrName string) string {
	rest := attrName[2:]
	return lowerFirst(rest)
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	if r[0] >= 'A' && r[0] <= 'Z' {
		r[0] += 'a' - 'A'
	}
	return string(r)
}

// Directive prefixes that change how the emitter lowers an attribute,
// e.g. `on:click`, `bool:disabled`. Matched with regexp2 (per
// SPEC_FULL.md's DOMAIN STACK) rather than a chain of strings.HasPrefix,
// since the same pattern also needs to report which alternative matched.
var directivePattern = regexp2.MustCompile(
	`^(on|oncapture|bool|prop|attr|use|style|class):(.+)$`, regexp2.None)

// DirectiveKind is the namespace portion of a `prefix:name` attribute.
type DirectiveKind string

const (
	DirectiveNone      DirectiveKind = ""
	DirectiveOn        DirectiveKind = "on"
	DirectiveOnCapture DirectiveKind = "oncapture"
	DirectiveBool      DirectiveKind = "bool"
	DirectiveProp      DirectiveKind = "prop"
	DirectiveAttr      DirectiveKind = "attr"
	DirectiveUse       DirectiveKind = "use"
	DirectiveStyle     DirectiveKind = "style"
	DirectiveClass     DirectiveKind = "class"
)

// MatchDirective splits a `prefix:name` attribute into its DirectiveKind
// and the name after the prefix. The second return is false when name
// carries no recognized directive prefix (including a genuine XML
// namespace like `xlink:href`, which the emitter treats as a plain
// attribute name).
func MatchDirective(name string) (DirectiveKind, string, bool) {
	m, err := directivePattern.FindStringMatch(name)
	if err != nil || m == nil {
		return DirectiveNone, "", false
	}
	groups := m.Groups()
	if len(groups) < 3 {
		return DirectiveNone, "", false
	}
	return DirectiveKind(groups[1].String()), groups[2].String(), true
}

// NormalizeAttrName applies the JSX->HTML renames spec.md §4.2 and
// original_source's get_attribute_name perform before any other
// classification: `className` -> `class`, `htmlFor` -> `for`.
func NormalizeAttrName(name string) string {
	switch name {
	case "className":
		return "class"
	case "htmlFor":
		return "for"
	default:
		return name
	}
}
