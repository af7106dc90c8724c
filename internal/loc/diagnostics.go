package loc

import "fmt"

type DiagnosticCode int

const (
	ERROR                            DiagnosticCode = 1000
	ERROR_UNSUPPORTED_JSX_CONSTRUCT  DiagnosticCode = 1001
	ERROR_UNSUPPORTED_SLOT_ATTRIBUTE DiagnosticCode = 1002
	ERROR_INVALID_NAMESPACE          DiagnosticCode = 1003
	ERROR_REQUIRE_IMPORT_SOURCE      DiagnosticCode = 1004
	WARNING                          DiagnosticCode = 2000
	WARNING_MINIMIZER_PARSE_FAILURE  DiagnosticCode = 2001
	WARNING_HTML_NESTING             DiagnosticCode = 2002
	WARNING_LARGE_TEMPLATE           DiagnosticCode = 2003
	WARNING_MANY_DYNAMIC_SLOTS       DiagnosticCode = 2004
	INFO                             DiagnosticCode = 3000
	HINT                             DiagnosticCode = 4000
)

// DiagnosticSeverity mirrors the LSP DiagnosticSeverity enum ordering so a
// CLI or editor integration can render these with no translation step.
type DiagnosticSeverity int

const (
	ErrorType       DiagnosticSeverity = 1
	WarningType     DiagnosticSeverity = 2
	InformationType DiagnosticSeverity = 3
	HintType        DiagnosticSeverity = 4
)

// DiagnosticLocation is the line/column view of a Range, resolved against
// a specific source file by the caller (internal/handler's cached line
// starts, in practice).
type DiagnosticLocation struct {
	File   string
	Line   int
	Column int
	Length int
}

type DiagnosticMessage struct {
	Code     DiagnosticCode
	Text     string
	Hint     string
	Severity int
	Location *DiagnosticLocation
}

// ErrorWithRange is the error shape every diagnostic raised by the core
// should use so it carries enough position information to be rendered
// against source text later, without forcing every call site to resolve
// a line/column immediately.
type ErrorWithRange struct {
	Code  DiagnosticCode
	Text  string
	Hint  string
	Range Range
}

func (e *ErrorWithRange) Error() string {
	return e.Text
}

func (e *ErrorWithRange) ToMessage(location *DiagnosticLocation) DiagnosticMessage {
	return DiagnosticMessage{
		Code:     e.Code,
		Text:     e.Text,
		Hint:     e.Hint,
		Location: location,
	}
}

func (e *ErrorWithRange) String() string {
	return fmt.Sprintf("%s (%d:%d)", e.Text, e.Range.Loc.Start, e.Range.End())
}
