package printer

import "strings"

// escapeTemplateLiteralText escapes the characters that would otherwise
// terminate a JS template literal or open a spurious `${...}`
// substitution, adapted from the teacher's escapeBackticks/
// escapeInterpolation/escapeExistingEscapes trio (used for Astro's own
// template-literal text nodes). Only the first two substitutions are
// applied here; backslashes are not escaped by this function.
// internal/template already escapes `\` and `{` for the *HTML* template
// string (original_source's child-text rule); this is the second,
// JS-literal-level escaping pass applied when that HTML is embedded in
// a backtick string by the printer.
func escapeTemplateLiteralText(src string) string {
	return escapeBackticks(escapeInterpolation(src))
}

func escapeInterpolation(src string) string {
	return strings.ReplaceAll(src, "${", "\\${")
}

func escapeBackticks(src string) string {
	return strings.ReplaceAll(src, "`", "\\`")
}
