// Package handler accumulates compiler diagnostics the way
// github.com/withastro/compiler's internal/handler does: errors, warnings,
// infos and hints are collected as plain []error during a single
// transform and only resolved to line/column positions when a caller asks
// for them, so the hot path never pays for position lookups it doesn't
// need.
package handler

import (
	"errors"
	"strings"

	"github.com/domexpr/compiler-go/internal/loc"
)

type Handler struct {
	sourcetext string
	filename   string
	lineStarts []int
	errors     []error
	warnings   []error
	infos      []error
	hints      []error
}

func NewHandler(sourcetext string, filename string) *Handler {
	return &Handler{
		sourcetext: sourcetext,
		filename:   filename,
		lineStarts: computeLineStarts(sourcetext),
		errors:     make([]error, 0),
		warnings:   make([]error, 0),
		infos:      make([]error, 0),
		hints:      make([]error, 0),
	}
}

func computeLineStarts(source string) []int {
	starts := []int{0}
	for i, c := range source {
		if c == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// GetLineAndColumnForLocation resolves a byte offset into a 1-based
// [line, column] pair using a binary search over precomputed line starts.
func (h *Handler) GetLineAndColumnForLocation(l loc.Loc) [2]int {
	if l.Start < 0 {
		return [2]int{1, 1}
	}
	lo, hi := 0, len(h.lineStarts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if h.lineStarts[mid] <= l.Start {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return [2]int{lo + 1, l.Start - h.lineStarts[lo] + 1}
}

func (h *Handler) HasErrors() bool {
	return len(h.errors) > 0
}

func (h *Handler) AppendError(err error) {
	h.errors = append(h.errors, err)
}

func (h *Handler) AppendWarning(err error) {
	h.warnings = append(h.warnings, err)
}

func (h *Handler) AppendInfo(err error) {
	h.infos = append(h.infos, err)
}

func (h *Handler) AppendHint(err error) {
	h.hints = append(h.hints, err)
}

func (h *Handler) Errors() []loc.DiagnosticMessage {
	msgs := make([]loc.DiagnosticMessage, 0, len(h.errors))
	for _, err := range h.errors {
		if err != nil {
			msgs = append(msgs, errorToMessage(h, loc.ErrorType, err))
		}
	}
	return msgs
}

func (h *Handler) Warnings() []loc.DiagnosticMessage {
	msgs := make([]loc.DiagnosticMessage, 0, len(h.warnings))
	for _, err := range h.warnings {
		if err != nil {
			msgs = append(msgs, errorToMessage(h, loc.WarningType, err))
		}
	}
	return msgs
}

// Diagnostics returns every accumulated error, warning, info and hint in
// that priority order, matching the severity ordering a caller expects to
// print first.
func (h *Handler) Diagnostics() []loc.DiagnosticMessage {
	msgs := make([]loc.DiagnosticMessage, 0, len(h.errors)+len(h.warnings)+len(h.infos)+len(h.hints))
	for _, err := range h.errors {
		if err != nil {
			msgs = append(msgs, errorToMessage(h, loc.ErrorType, err))
		}
	}
	for _, err := range h.warnings {
		if err != nil {
			msgs = append(msgs, errorToMessage(h, loc.WarningType, err))
		}
	}
	for _, err := range h.infos {
		if err != nil {
			msgs = append(msgs, errorToMessage(h, loc.InformationType, err))
		}
	}
	for _, err := range h.hints {
		if err != nil {
			msgs = append(msgs, errorToMessage(h, loc.HintType, err))
		}
	}
	return msgs
}

func errorToMessage(h *Handler, severity loc.DiagnosticSeverity, err error) loc.DiagnosticMessage {
	var rangedError *loc.ErrorWithRange
	switch {
	case errors.As(err, &rangedError):
		pos := h.GetLineAndColumnForLocation(rangedError.Range.Loc)
		location := &loc.DiagnosticLocation{
			File:   h.filename,
			Line:   pos[0],
			Column: pos[1],
			Length: rangedError.Range.Len,
		}
		message := rangedError.ToMessage(location)
		message.Severity = int(severity)
		return message
	default:
		return loc.DiagnosticMessage{Text: err.Error(), Severity: int(severity)}
	}
}

// String renders every diagnostic as a single multi-line report, one per
// line, in the `file:line:col: message` shape most terminals and editors
// already know how to hyperlink.
func (h *Handler) String() string {
	var b strings.Builder
	for _, msg := range h.Diagnostics() {
		if msg.Location != nil {
			b.WriteString(h.filename)
			b.WriteString(":")
			b.WriteString(itoa(msg.Location.Line))
			b.WriteString(":")
			b.WriteString(itoa(msg.Location.Column))
			b.WriteString(": ")
		}
		b.WriteString(msg.Text)
		b.WriteString("\n")
	}
	return b.String()
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
