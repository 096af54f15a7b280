package cursor

import "fmt"

// Position represents a line and column position in a buffer.
// Both Line and Column are 0-indexed and never negative.
// Column is measured in runes from the start of the line.
type Position struct {
	Line   int
	Column int
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d:%d)", p.Line, p.Column)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other,
// under lexicographic (line, then column) order.
func (p Position) Compare(other Position) int {
	if p.Line < other.Line {
		return -1
	}
	if p.Line > other.Line {
		return 1
	}
	if p.Column < other.Column {
		return -1
	}
	if p.Column > other.Column {
		return 1
	}
	return 0
}

// Before returns true if p comes before other.
func (p Position) Before(other Position) bool {
	return p.Compare(other) < 0
}

// After returns true if p comes after other.
func (p Position) After(other Position) bool {
	return p.Compare(other) > 0
}

// IsZero returns true if this is the zero position (0:0).
func (p Position) IsZero() bool {
	return p.Line == 0 && p.Column == 0
}

// clampPosition corrects negative coordinates to zero.
func clampPosition(line, column int) Position {
	if line < 0 {
		line = 0
	}
	if column < 0 {
		column = 0
	}
	return Position{Line: line, Column: column}
}
