// Package testutil adapts the teacher's internal/test_utils snapshot
// helpers to this module's fixtures: JSON-encoded ast.Node programs in,
// printed JS (or emitted template HTML) out.
package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/google/go-cmp/cmp"
	"github.com/lithammer/dedent"
)

func RemoveNewlines(input string) string {
	return strings.ReplaceAll(input, "\n", "")
}

func Dedent(input string) string {
	return dedent.Dedent(
		strings.ReplaceAll(
			strings.TrimLeft(
				strings.TrimRight(input, " \n\r"),
				" \t\r\n"),
			"\n\n\n", "\n\n"),
	)
}

func ANSIDiff(x, y interface{}, opts ...cmp.Option) string {
	escapeCode := func(code int) string {
		return fmt.Sprintf("\x1b[%dm", code)
	}
	diff := cmp.Diff(x, y, opts...)
	if diff == "" {
		return ""
	}
	ss := strings.Split(diff, "\n")
	for i, s := range ss {
		switch {
		case strings.HasPrefix(s, "-"):
			ss[i] = escapeCode(31) + s + escapeCode(0)
		case strings.HasPrefix(s, "+"):
			ss[i] = escapeCode(32) + s + escapeCode(0)
		}
	}
	return strings.Join(ss, "\n")
}

// RedactTestName strips characters that can't appear in a snapshot filename.
func RedactTestName(testCaseName string) string {
	r := strings.NewReplacer(
		"#", "_", "<", "_", ">", "_", ")", "_", "(", "_",
		":", "_", " ", "_", "'", "_", "\"", "_", "@", "_",
		"`", "_", "+", "_",
	)
	return r.Replace(testCaseName)
}

type OutputKind int

const (
	JsOutput OutputKind = iota
	JsonOutput
	HtmlOutput
	JsxOutput
)

var outputKind = map[OutputKind]string{
	JsOutput:   "js",
	JsonOutput: "json",
	HtmlOutput: "html",
	JsxOutput:  "jsx",
}

type SnapshotOptions struct {
	Testing      *testing.T
	TestCaseName string
	Input        string
	Output       string
	Kind         OutputKind
	FolderName   string
}

// MakeSnapshot records a fixture's JSX-shaped input alongside the
// compiler's output (printed JS, emitted template HTML, or diagnostics).
func MakeSnapshot(options *SnapshotOptions) {
	t := options.Testing
	folderName := "__snapshots__"
	if options.FolderName != "" {
		folderName = options.FolderName
	}
	snapshotName := RedactTestName(options.TestCaseName)

	s := snaps.WithConfig(
		snaps.Filename(snapshotName),
		snaps.Dir(folderName),
	)

	snapshot := "## Input\n\n```\n"
	snapshot += Dedent(options.Input)
	snapshot += "\n```\n\n## Output\n\n"
	snapshot += "```" + outputKind[options.Kind] + "\n"
	snapshot += Dedent(options.Output)
	snapshot += "\n```"

	s.MatchSnapshot(t, snapshot)
}
