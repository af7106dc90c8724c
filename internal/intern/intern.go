// Package intern deduplicates identical templates across a module and
// tracks the statistics spec.md §4.4 calls for, porting
// original_source's src/optimizer.rs (TemplateOptimizer/TemplateStats/
// Optimization) to Go. JSON rendering of Stats uses
// go-json-experiment/json the way the rest of the module's
// configuration and diagnostics do, so `--stats` output on the CLI is a
// single json.Marshal call away.
package intern

import "sort"

// Pool interns template HTML strings in first-seen order, handing back
// the stable name (`_tmpl$`, `_tmpl$2`, ...) every occurrence of an
// identical template should share (spec §4.4).
type Pool struct {
	order   []string
	names   map[string]string
	counts  map[string]int
	htmlLen map[string]int
	slots   map[string]int
	next    int
}

func NewPool() *Pool {
	return &Pool{
		names:   make(map[string]string),
		counts:  make(map[string]int),
		htmlLen: make(map[string]int),
		slots:   make(map[string]int),
	}
}

// Intern records one occurrence of html (with slotCount dynamic slots)
// and returns its interned variable name, reusing the name from a prior
// identical template when one exists.
func (p *Pool) Intern(html string, slotCount int) string {
	p.counts[html]++
	if name, ok := p.names[html]; ok {
		return name
	}
	p.next++
	name := templateName(p.next)
	p.names[html] = name
	p.order = append(p.order, html)
	p.htmlLen[html] = len(html)
	p.slots[html] = slotCount
	return name
}

func templateName(n int) string {
	if n == 1 {
		return "_tmpl$"
	}
	return "_tmpl$" + itoa(n)
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

// Declarations returns the interned templates in first-seen order, the
// order the emitter lists them in its single combined
// `var _tmpl$ = /*#__PURE__*/ _$template(...), _tmpl$2 = ...` declaration
// (spec §4.4, §4.8 determinism requirements).
func (p *Pool) Declarations() []struct {
	Name string
	HTML string
} {
	out := make([]struct {
		Name string
		HTML string
	}, 0, len(p.order))
	for _, html := range p.order {
		out = append(out, struct {
			Name string
			HTML string
		}{Name: p.names[html], HTML: html})
	}
	return out
}

// Stats mirrors original_source's TemplateStats.
type Stats struct {
	TotalTemplates          int `json:"totalTemplates"`
	UniqueTemplates         int `json:"uniqueTemplates"`
	ReusedTemplates         int `json:"reusedTemplates"`
	TotalHTMLSize           int `json:"totalHtmlSize"`
	DeduplicatedHTMLSize    int `json:"deduplicatedHtmlSize"`
	StaticTemplates         int `json:"staticTemplates"`
	DynamicTemplates        int `json:"dynamicTemplates"`
}

// SpaceSaved is the byte count dedup avoided re-emitting.
func (s Stats) SpaceSaved() int {
	return s.TotalHTMLSize - s.DeduplicatedHTMLSize
}

// DeduplicationRatio is in [0,1]; 0 when there were no templates at all.
func (s Stats) DeduplicationRatio() float64 {
	if s.TotalHTMLSize == 0 {
		return 0
	}
	return float64(s.SpaceSaved()) / float64(s.TotalHTMLSize)
}

// AverageTemplateSize is 0 when there were no unique templates.
func (s Stats) AverageTemplateSize() float64 {
	if s.UniqueTemplates == 0 {
		return 0
	}
	return float64(s.DeduplicatedHTMLSize) / float64(s.UniqueTemplates)
}

// Stats computes the final TemplateStats snapshot for everything interned
// so far.
func (p *Pool) Stats() Stats {
	var s Stats
	s.UniqueTemplates = len(p.order)
	for _, html := range p.order {
		count := p.counts[html]
		s.TotalTemplates += count
		s.TotalHTMLSize += p.htmlLen[html] * count
		s.DeduplicatedHTMLSize += p.htmlLen[html]
		if count > 1 {
			s.ReusedTemplates++
		}
		if p.slots[html] == 0 {
			s.StaticTemplates++
		} else {
			s.DynamicTemplates++
		}
	}
	return s
}

// OptimizationKind mirrors original_source's OptimizationKind.
type OptimizationKind int

const (
	LargeTemplate OptimizationKind = iota
	ManyDynamicSlots
)

func (k OptimizationKind) String() string {
	if k == ManyDynamicSlots {
		return "ManyDynamicSlots"
	}
	return "LargeTemplate"
}

// Optimization flags one interned template worth a second look: either
// its HTML is large with many slots, or it alone has an unusually high
// dynamic-slot count. Thresholds match original_source exactly (html
// length > 1000 with > 5 slots; or > 10 slots on its own).
type Optimization struct {
	Kind     OptimizationKind
	Name     string
	HTMLSize int
	Slots    int
}

// FindOptimizations reports every interned template matching
// original_source's find_optimizations thresholds, sorted by name for
// deterministic diagnostic ordering.
func (p *Pool) FindOptimizations() []Optimization {
	var out []Optimization
	for _, html := range p.order {
		size := p.htmlLen[html]
		slots := p.slots[html]
		name := p.names[html]
		if size > 1000 && slots > 5 {
			out = append(out, Optimization{Kind: LargeTemplate, Name: name, HTMLSize: size, Slots: slots})
		}
		if slots > 10 {
			out = append(out, Optimization{Kind: ManyDynamicSlots, Name: name, HTMLSize: size, Slots: slots})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ReusedTemplates returns the interned templates seen more than once,
// matching original_source's get_reused_templates (count > 1).
func (p *Pool) ReusedTemplates() []string {
	var out []string
	for _, html := range p.order {
		if p.counts[html] > 1 {
			out = append(out, p.names[html])
		}
	}
	return out
}
