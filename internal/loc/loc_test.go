package loc

import "testing"

func TestRangeEnd(t *testing.T) {
	r := Range{Loc: Loc{Start: 10}, Len: 5}
	if r.End() != 15 {
		t.Errorf("End() = %d, want 15", r.End())
	}
}
