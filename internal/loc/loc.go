package loc

// Loc is a byte offset into the original source text. Every node and
// dynamic slot produced by the compiler carries one so diagnostics and
// editor integrations can point back at the JSX that produced them.
type Loc struct {
	// This is the 0-based index of this location from the start of the file, in bytes
	Start int
}

// Range is a Loc plus a byte length, used for diagnostics that span more
// than a single point (an attribute value, a whole JSX expression, ...).
type Range struct {
	Loc Loc
	Len int
}

func (r Range) End() int {
	return r.Loc.Start + r.Len
}

// Span is a half-open range of bytes in a source buffer. The start is
// inclusive, the end is exclusive.
type Span struct {
	Start, End int
}
