// Package state holds the module-scoped mutable state spec.md §3/§9
// calls "Emitter state": template interning, the required-imports
// ordered set, the delegated-events set, and the element variable
// counter. It is created fresh per Transform call and never shared
// across concurrent transforms, mirroring the teacher's own
// per-invocation printer.Printer rather than a process-global.
package state

import (
	"sort"

	"github.com/domexpr/compiler-go/internal/intern"
)

// importPriority is the fixed ordering table spec §4.8 requires: template
// and ssr first, then delegateEvents, createComponent, memo, the
// event/attribute/insert runtime, then control-flow components; anything
// not listed sorts after everything here, alphabetically.
var importPriority = map[string]int{
	"template":         0,
	"ssr":              1,
	"delegateEvents":   2,
	"createComponent":  3,
	"memo":             4,
	"effect":           5,
	"insert":           6,
	"setAttribute":     7,
	"setBoolAttribute": 8,
	"className":        9,
	"classList":        10,
	"style":            11,
	"setStyleProperty": 12,
	"use":              13,
	"addEventListener": 14,
	"mergeProps":       15,
	"spread":           16,
}

// Module is the per-transform mutable state the bottom-up visitor reads
// and writes.
type Module struct {
	Pool *intern.Pool

	imports map[string]bool
	events  map[string]bool

	elVarCounter int
	firstRootSet bool
}

func New() *Module {
	return &Module{
		Pool:    intern.NewPool(),
		imports: make(map[string]bool),
		events:  make(map[string]bool),
	}
}

// RequireImport records that the emitted body calls the given runtime
// export at least once.
func (m *Module) RequireImport(name string) {
	m.imports[name] = true
}

// RequireDelegatedEvent records a lowercase DOM event name assigned via
// the `$$event` delegation property.
func (m *Module) RequireDelegatedEvent(name string) {
	m.events[name] = true
	m.imports["delegateEvents"] = true
}

// SortedImports returns every required import name in the fixed priority
// order spec §4.8 mandates.
func (m *Module) SortedImports() []string {
	names := make([]string, 0, len(m.imports))
	for n := range m.imports {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool {
		pi, oki := importPriority[names[i]]
		pj, okj := importPriority[names[j]]
		switch {
		case oki && okj:
			return pi < pj
		case oki && !okj:
			return true
		case !oki && okj:
			return false
		default:
			return names[i] < names[j]
		}
	})
	return names
}

// SortedEvents returns the delegated event set, lexicographically sorted
// (spec §4.8/§6: "events sorted lexicographically").
func (m *Module) SortedEvents() []string {
	names := make([]string, 0, len(m.events))
	for n := range m.events {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (m *Module) HasDelegatedEvents() bool {
	return len(m.events) > 0
}

// NextElementVar returns the next element variable name in the module:
// `_el$` for the first root emitted anywhere in the module, `_el$2`,
// `_el$3`, … after that (spec §6: "globally across the module").
func (m *Module) NextElementVar() string {
	if !m.firstRootSet {
		m.firstRootSet = true
		m.elVarCounter = 1
		return "_el$"
	}
	m.elVarCounter++
	return "_el$" + itoa(m.elVarCounter)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}
