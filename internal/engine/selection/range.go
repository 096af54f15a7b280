package selection

import "fmt"

// Range represents a selection as an anchor point and an active point.
// All coordinates are 0-indexed and never negative. The anchor is where the
// selection gesture began; the active point is the moving end.
type Range struct {
	AnchorLine   int
	AnchorColumn int
	ActiveLine   int
	ActiveColumn int
}

// NewRange creates a range from anchor to active.
func NewRange(anchorLine, anchorColumn, activeLine, activeColumn int) Range {
	return Range{
		AnchorLine:   anchorLine,
		AnchorColumn: anchorColumn,
		ActiveLine:   activeLine,
		ActiveColumn: activeColumn,
	}
}

// IsEmpty returns true if the anchor equals the active point.
func (r Range) IsEmpty() bool {
	return r.AnchorLine == r.ActiveLine && r.AnchorColumn == r.ActiveColumn
}

// IsForward returns true if the active point is at or after the anchor.
func (r Range) IsForward() bool {
	return comparePoints(r.AnchorLine, r.AnchorColumn, r.ActiveLine, r.ActiveColumn) <= 0
}

// Normalize re-expresses the range as a Span with start <= end under
// lexicographic (line, then column) order. Ties keep the forward orientation.
func (r Range) Normalize() Span {
	if !r.IsForward() {
		return Span{
			StartLine:   r.ActiveLine,
			StartColumn: r.ActiveColumn,
			EndLine:     r.AnchorLine,
			EndColumn:   r.AnchorColumn,
		}
	}
	return Span{
		StartLine:   r.AnchorLine,
		StartColumn: r.AnchorColumn,
		EndLine:     r.ActiveLine,
		EndColumn:   r.ActiveColumn,
	}
}

// String returns a string representation of the range.
func (r Range) String() string {
	dir := "→"
	if !r.IsForward() {
		dir = "←"
	}
	return fmt.Sprintf("Range(%d:%d%s%d:%d)", r.AnchorLine, r.AnchorColumn, dir, r.ActiveLine, r.ActiveColumn)
}

// Span is a normalized selection range with a guaranteed start <= end
// ordering.
type Span struct {
	StartLine   int
	StartColumn int
	EndLine     int
	EndColumn   int
}

// Range re-expresses the span as a forward-oriented range (anchor at start).
func (s Span) Range() Range {
	return Range{
		AnchorLine:   s.StartLine,
		AnchorColumn: s.StartColumn,
		ActiveLine:   s.EndLine,
		ActiveColumn: s.EndColumn,
	}
}

// IsEmpty returns true if the span covers nothing.
func (s Span) IsEmpty() bool {
	return s.StartLine == s.EndLine && s.StartColumn == s.EndColumn
}

// Overlaps returns true if the spans overlap. The test is half-open: a span
// ending exactly where another starts does not overlap it. Both spans must be
// normalized.
func (s Span) Overlaps(other Span) bool {
	if comparePoints(s.EndLine, s.EndColumn, other.StartLine, other.StartColumn) <= 0 {
		return false
	}
	if comparePoints(other.EndLine, other.EndColumn, s.StartLine, s.StartColumn) <= 0 {
		return false
	}
	return true
}

// Contains returns true if the given position lies within the span.
// The end is exclusive; empty spans contain nothing.
func (s Span) Contains(line, column int) bool {
	if comparePoints(line, column, s.StartLine, s.StartColumn) < 0 {
		return false
	}
	return comparePoints(line, column, s.EndLine, s.EndColumn) < 0
}

// String returns a string representation of the span.
func (s Span) String() string {
	return fmt.Sprintf("Span(%d:%d..%d:%d)", s.StartLine, s.StartColumn, s.EndLine, s.EndColumn)
}

// comparePoints compares two (line, column) points lexicographically,
// returning -1, 0, or 1.
func comparePoints(line1, col1, line2, col2 int) int {
	if line1 < line2 {
		return -1
	}
	if line1 > line2 {
		return 1
	}
	if col1 < col2 {
		return -1
	}
	if col1 > col2 {
		return 1
	}
	return 0
}

// clampRange corrects negative coordinates to zero.
func clampRange(r Range) Range {
	if r.AnchorLine < 0 {
		r.AnchorLine = 0
	}
	if r.AnchorColumn < 0 {
		r.AnchorColumn = 0
	}
	if r.ActiveLine < 0 {
		r.ActiveLine = 0
	}
	if r.ActiveColumn < 0 {
		r.ActiveColumn = 0
	}
	return r
}
