package options

import "testing"

func TestDefaultMatchesSpecDefaults(t *testing.T) {
	o := Default()
	if o.ModuleName != "solid-js/web" {
		t.Errorf("ModuleName = %q", o.ModuleName)
	}
	if o.Generate != Dom {
		t.Errorf("Generate = %v, want Dom", o.Generate)
	}
	if !o.DelegateEvents || !o.OmitQuotes || !o.OmitLastClosingTag || !o.Validate {
		t.Errorf("unexpected defaults: %+v", o)
	}
	if o.OmitNestedClosingTags {
		t.Error("OmitNestedClosingTags should default false")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	o, err := Load([]byte(`{"generate": "ssr", "delegateEvents": false}`))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if o.Generate != Ssr {
		t.Errorf("Generate = %v, want Ssr", o.Generate)
	}
	if o.DelegateEvents {
		t.Error("DelegateEvents should have been overridden to false")
	}
	if o.ModuleName != "solid-js/web" {
		t.Errorf("untouched fields should keep their default, got ModuleName=%q", o.ModuleName)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	if _, err := Load([]byte(`not json`)); err == nil {
		t.Error("expected an error for malformed JSON")
	}
}

func TestWithHelpers(t *testing.T) {
	o := Default().WithGenerate(Ssr).WithDelegateEvents(false).WithModuleName("custom/web")
	if o.Generate != Ssr || o.DelegateEvents || o.ModuleName != "custom/web" {
		t.Errorf("unexpected options after With* chain: %+v", o)
	}
}

func TestIsBuiltIn(t *testing.T) {
	o := Default()
	o.BuiltIns = []string{"portal"}
	if !o.IsBuiltIn("portal") {
		t.Error("expected portal to be a built-in")
	}
	if o.IsBuiltIn("div") {
		t.Error("div should not be a built-in")
	}
}

func TestGenerateModeJSONRoundTrip(t *testing.T) {
	data, err := Ssr.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	var g GenerateMode
	if err := g.UnmarshalJSON(data); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}
	if g != Ssr {
		t.Errorf("round trip got %v, want Ssr", g)
	}
}
