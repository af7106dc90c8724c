package ast

import "testing"

func TestIsSimple(t *testing.T) {
	cases := []struct {
		name string
		n    *Node
		want bool
	}{
		{"identifier", Ident("count"), true},
		{"string literal", StringLit("hi"), true},
		{"call expression", Call(Ident("f")), false},
		{"raw identifier-shaped", &Node{Kind: KindRawExpression, Shape: ShapeIdentifier}, true},
		{"raw call-shaped", &Node{Kind: KindRawExpression, Shape: ShapeCallExpression}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.n.IsSimple(); got != c.want {
				t.Errorf("IsSimple() = %v, want %v", got, c.want)
			}
		})
	}
}

func TestIsZeroArgCall(t *testing.T) {
	if !Call(Ident("f")).IsZeroArgCall() {
		t.Error("Call(f) should be a zero-arg call")
	}
	if Call(Ident("f"), Ident("x")).IsZeroArgCall() {
		t.Error("Call(f, x) should not be a zero-arg call")
	}
	raw := &Node{Kind: KindRawExpression, Shape: ShapeZeroArgCall}
	if !raw.IsZeroArgCall() {
		t.Error("raw ShapeZeroArgCall should report zero-arg call")
	}
}

func TestIsDeferred(t *testing.T) {
	if !ArrowExpr(Ident("x")).IsDeferred() {
		t.Error("arrow function should be deferred")
	}
	if !IIFE(Return(Ident("x"))).IsDeferred() {
		t.Error("IIFE (a CallExpression) should be deferred")
	}
	if StringLit("x").IsDeferred() {
		t.Error("a literal should not be deferred")
	}
}

func TestKindJSONRoundTrip(t *testing.T) {
	for k := range kindNames {
		data, err := k.MarshalJSON()
		if err != nil {
			t.Fatalf("MarshalJSON(%v): %v", k, err)
		}
		var got Kind
		if err := got.UnmarshalJSON(data); err != nil {
			t.Fatalf("UnmarshalJSON(%s): %v", data, err)
		}
		if got != k {
			t.Errorf("round trip %v -> %s -> %v", k, data, got)
		}
	}
}

func TestKindUnmarshalUnknown(t *testing.T) {
	var k Kind
	if err := k.UnmarshalJSON([]byte(`"NotARealKind"`)); err == nil {
		t.Error("expected an error for an unknown kind spelling")
	}
}
