// Package options defines the per-invocation configuration for the
// JSX-to-template compiler, mirroring the shape (and defaults) of
// original_source's DomExpressionsOptions, but exposed the way the
// teacher exposes transform.TransformOptions: a plain struct consumed by
// value, loaded from JSON at the CLI boundary with the teacher's JSON
// library instead of encoding/json.
package options

import (
	"fmt"

	"github.com/go-json-experiment/json"
)

// GenerateMode selects between the DOM clone/walk/bind output (spec's
// primary contract) and the Ssr template-string variant.
type GenerateMode int

const (
	Dom GenerateMode = iota
	Ssr
)

func (g GenerateMode) String() string {
	if g == Ssr {
		return "ssr"
	}
	return "dom"
}

func (g GenerateMode) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", g.String())), nil
}

func (g *GenerateMode) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"ssr"`, `"Ssr"`:
		*g = Ssr
	default:
		*g = Dom
	}
	return nil
}

// Options is immutable for the lifetime of a single Transformer; every
// field has a zero-config default matching spec.md §3.
type Options struct {
	ModuleName      string       `json:"moduleName"`
	Generate        GenerateMode `json:"generate"`
	Hydratable      bool         `json:"hydratable"`
	DelegateEvents  bool         `json:"delegateEvents"`
	WrapConditionals bool        `json:"wrapConditionals"`
	EffectWrapper   string       `json:"effectWrapper"`
	MemoWrapper     string       `json:"memoWrapper"`
	StaticMarker    string       `json:"staticMarker"`

	// BuiltIns extends the component predicate the way original_source's
	// built_ins does: a lowercase tag listed in BuiltIns is still treated
	// as a component. ContextToCustomElements is carried for parity with
	// original_source's context_to_custom_elements; nothing consults it.
	ContextToCustomElements bool     `json:"contextToCustomElements"`
	BuiltIns                []string `json:"builtIns"`

	// RequireImportSource, when non-empty, gates the whole transform: the
	// module must carry a leading `/* @jsxImportSource <value> */` pragma
	// (decoded into the Program node's Data field) or
	// emitter.TransformFull is a no-op that returns the original program
	// untouched.
	RequireImportSource string `json:"requireImportSource,omitempty"`

	OmitNestedClosingTags bool `json:"omitNestedClosingTags"`
	OmitLastClosingTag    bool `json:"omitLastClosingTag"`
	OmitQuotes            bool `json:"omitQuotes"`
	Validate              bool `json:"validate"`

	// Filename only names the source file: its PascalCase stem becomes the
	// leading `// <Name>'s templates` comment on the hoisted template
	// declaration. It changes no emitted code.
	Filename string `json:"-"`
}

// Default returns the spec.md §3 defaults.
func Default() Options {
	return Options{
		ModuleName:            "solid-js/web",
		Generate:              Dom,
		Hydratable:            false,
		DelegateEvents:        true,
		WrapConditionals:      true,
		EffectWrapper:         "effect",
		MemoWrapper:           "memo",
		StaticMarker:          "@once",
		OmitNestedClosingTags: false,
		OmitLastClosingTag:    true,
		OmitQuotes:            true,
		Validate:              true,
	}
}

func (o Options) WithGenerate(g GenerateMode) Options {
	o.Generate = g
	return o
}

func (o Options) WithDelegateEvents(delegate bool) Options {
	o.DelegateEvents = delegate
	return o
}

func (o Options) WithModuleName(name string) Options {
	o.ModuleName = name
	return o
}

// IsBuiltIn reports whether tag is in the BuiltIns allow-list, used by
// the component predicate to widen "is this a component" past the
// "first character is uppercase" rule for runtime-provided lowercase
// pseudo-components (e.g. a `portal` built-in).
func (o Options) IsBuiltIn(tag string) bool {
	for _, b := range o.BuiltIns {
		if b == tag {
			return true
		}
	}
	return false
}

// Load reads Options from a JSON config file, defaulting any field the
// file omits.
func Load(data []byte) (Options, error) {
	opts := Default()
	if err := json.Unmarshal(data, &opts); err != nil {
		return Options{}, fmt.Errorf("options: %w", err)
	}
	return opts, nil
}
