package classify

import "testing"

func TestIsComponent(t *testing.T) {
	cases := []struct {
		tag        string
		memberExpr bool
		builtIns   []string
		want       bool
	}{
		{"div", false, nil, false},
		{"Foo", false, nil, true},
		{"ns.Comp", true, nil, true},
		{"portal", false, []string{"portal"}, true},
		{"", false, nil, false},
	}
	for _, c := range cases {
		if got := IsComponent(c.tag, c.memberExpr, c.builtIns); got != c.want {
			t.Errorf("IsComponent(%q, %v, %v) = %v, want %v", c.tag, c.memberExpr, c.builtIns, got, c.want)
		}
	}
}

func TestIsVoidElement(t *testing.T) {
	for _, tag := range []string{"br", "IMG", "input"} {
		if !IsVoidElement(tag) {
			t.Errorf("expected %q to be a void element", tag)
		}
	}
	if IsVoidElement("div") {
		t.Error("div should not be a void element")
	}
}

func TestShouldDelegateEvent(t *testing.T) {
	if !ShouldDelegateEvent("Click") {
		t.Error("click should delegate (case-insensitive)")
	}
	if ShouldDelegateEvent("scroll") {
		t.Error("scroll is not in the delegated set")
	}
}

func TestEventName(t *testing.T) {
	cases := map[string]string{
		"onClick": "click",
		"onInput": "input",
	}
	for in, want := range cases {
		if got := EventName(in); got != want {
			t.Errorf("EventName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMatchDirective(t *testing.T) {
	kind, name, ok := MatchDirective("on:click")
	if !ok || kind != DirectiveOn || name != "click" {
		t.Errorf("MatchDirective(on:click) = %v, %q, %v", kind, name, ok)
	}

	kind, name, ok = MatchDirective("style:color")
	if !ok || kind != DirectiveStyle || name != "color" {
		t.Errorf("MatchDirective(style:color) = %v, %q, %v", kind, name, ok)
	}

	if _, _, ok := MatchDirective("xlink:href"); ok {
		t.Error("a genuine XML namespace should not match a directive prefix")
	}

	if _, _, ok := MatchDirective("disabled"); ok {
		t.Error("a plain attribute should not match a directive prefix")
	}
}

func TestNormalizeAttrName(t *testing.T) {
	if got := NormalizeAttrName("className"); got != "class" {
		t.Errorf("NormalizeAttrName(className) = %q, want class", got)
	}
	if got := NormalizeAttrName("htmlFor"); got != "for" {
		t.Errorf("NormalizeAttrName(htmlFor) = %q, want for", got)
	}
	if got := NormalizeAttrName("id"); got != "id" {
		t.Errorf("NormalizeAttrName(id) = %q, want id", got)
	}
}
