package cursor

import "fmt"

// PrimaryID is the identifier of the primary cursor.
const PrimaryID = "primary"

// Direction represents a navigation direction.
type Direction uint8

const (
	// Up moves toward lower line numbers.
	Up Direction = iota
	// Down moves toward higher line numbers.
	Down
	// Left moves toward lower columns.
	Left
	// Right moves toward higher columns.
	Right
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Unit represents the granularity of a navigation step.
type Unit uint8

const (
	// Character moves by a single character or line.
	Character Unit = iota
	// Word is accepted by the dispatch but carries no distinct vertical
	// semantics; it behaves like Character.
	Word
	// Line moves to a line boundary for horizontal directions.
	Line
	// Page moves by the manager's page size for vertical directions.
	Page
	// Document moves to the start or end of the buffer.
	Document
)

// String returns the unit name.
func (u Unit) String() string {
	switch u {
	case Character:
		return "character"
	case Word:
		return "word"
	case Line:
		return "line"
	case Page:
		return "page"
	case Document:
		return "document"
	default:
		return "unknown"
	}
}

// Cursor represents a single insertion point.
type Cursor struct {
	// ID uniquely identifies the cursor within its manager.
	ID string

	// Position is the cursor's current line and column.
	Position Position

	// Anchor is where the current selection gesture began, or nil when the
	// cursor has no selection.
	Anchor *Position

	// DesiredColumn is the column of the last horizontal move, used to
	// resolve vertical movement onto lines shorter than that column.
	DesiredColumn int
}

// IsPrimary returns true if this is the primary cursor.
func (c Cursor) IsPrimary() bool {
	return c.ID == PrimaryID
}

// HasAnchor returns true if the cursor has an active selection anchor.
func (c Cursor) HasAnchor() bool {
	return c.Anchor != nil
}

// String returns a string representation of the cursor.
func (c Cursor) String() string {
	if c.Anchor != nil {
		return fmt.Sprintf("Cursor(%s %s~%s)", c.ID, c.Anchor, c.Position)
	}
	return fmt.Sprintf("Cursor(%s %s)", c.ID, c.Position)
}

// clone returns a deep copy of the cursor. The anchor is copied so callers
// holding the result cannot mutate manager state through it.
func (c Cursor) clone() Cursor {
	out := c
	if c.Anchor != nil {
		a := *c.Anchor
		out.Anchor = &a
	}
	return out
}
