package cursor

import "fmt"

// DefaultPageSize is the number of lines a page-unit vertical move advances
// when no other size has been configured.
const DefaultPageSize = 30

// LineLenFunc reports the character length of a 0-based line. It must be
// defined for every line in [0, lineCount-1] passed alongside it.
type LineLenFunc func(line int) int

// Manager owns a collection of cursors and applies navigation commands to it.
// The collection is never empty and its first element is always the primary
// cursor.
type Manager struct {
	cursors  []Cursor
	pageSize int
	nextID   int
}

// NewManager creates a manager holding a single primary cursor at (0,0).
func NewManager() *Manager {
	return &Manager{
		cursors:  []Cursor{{ID: PrimaryID}},
		pageSize: DefaultPageSize,
		nextID:   1,
	}
}

// Primary returns a copy of the primary cursor.
func (m *Manager) Primary() Cursor {
	return m.cursors[0].clone()
}

// All returns copies of all cursors in stable order, primary first.
// The returned slice is safe to modify without affecting the manager.
func (m *Manager) All() []Cursor {
	out := make([]Cursor, len(m.cursors))
	for i, c := range m.cursors {
		out[i] = c.clone()
	}
	return out
}

// Count returns the number of cursors.
func (m *Manager) Count() int {
	return len(m.cursors)
}

// PageSize returns the number of lines advanced by a page-unit vertical move.
func (m *Manager) PageSize() int {
	return m.pageSize
}

// SetPageSize sets the page size, clamping to a minimum of 1.
func (m *Manager) SetPageSize(n int) {
	if n < 1 {
		n = 1
	}
	m.pageSize = n
}

// SetPosition collapses the collection to a single primary cursor at the
// given position. Negative coordinates are clamped to zero. Any selection
// anchor is cleared and the desired column is reset to the clamped column.
func (m *Manager) SetPosition(line, column int) {
	pos := clampPosition(line, column)
	m.cursors = m.cursors[:1]
	m.cursors[0] = Cursor{ID: PrimaryID, Position: pos, DesiredColumn: pos.Column}
}

// AddCursor creates a secondary cursor at the given position and returns a
// copy of it. If a cursor already occupies the position, that cursor is
// returned instead and no duplicate is created. Negative coordinates are
// clamped to zero.
func (m *Manager) AddCursor(line, column int) Cursor {
	pos := clampPosition(line, column)
	for i := range m.cursors {
		if m.cursors[i].Position == pos {
			return m.cursors[i].clone()
		}
	}
	c := Cursor{
		ID:            fmt.Sprintf("cursor-%d", m.nextID),
		Position:      pos,
		DesiredColumn: pos.Column,
	}
	m.nextID++
	m.cursors = append(m.cursors, c)
	return c.clone()
}

// RemoveCursor removes the cursor with the given identifier and reports
// whether removal occurred. Removing the primary cursor or an unknown
// identifier is a no-op returning false.
func (m *Manager) RemoveCursor(id string) bool {
	if id == PrimaryID {
		return false
	}
	for i := range m.cursors {
		if m.cursors[i].ID == id {
			m.cursors = append(m.cursors[:i], m.cursors[i+1:]...)
			return true
		}
	}
	return false
}

// ClearSecondary discards every cursor except the primary.
func (m *Manager) ClearSecondary() {
	m.cursors = m.cursors[:1]
}

// MoveAll applies one navigation step to every cursor, then removes cursors
// that ended up at identical positions, keeping first-seen order. When
// selecting is true each cursor without an anchor captures its pre-move
// position as the anchor; when false all anchors are cleared.
func (m *Manager) MoveAll(dir Direction, unit Unit, lineCount int, lineLen LineLenFunc, selecting bool) {
	if lineCount <= 0 || lineLen == nil {
		return
	}
	for i := range m.cursors {
		m.step(&m.cursors[i], dir, unit, lineCount, lineLen, selecting)
	}
	m.dedupe()
}

// SelectAll sets the primary cursor's anchor to (0,0) and its position to the
// end of the last line, then discards secondary cursors.
func (m *Manager) SelectAll(lineCount int, lineLen LineLenFunc) {
	if lineCount <= 0 || lineLen == nil {
		return
	}
	anchor := Position{}
	m.cursors = m.cursors[:1]
	m.cursors[0].Anchor = &anchor
	m.cursors[0].Position = Position{Line: lineCount - 1, Column: lineLen(lineCount - 1)}
}

// step applies a single navigation command to one cursor.
func (m *Manager) step(c *Cursor, dir Direction, unit Unit, lineCount int, lineLen LineLenFunc, selecting bool) {
	if selecting {
		if c.Anchor == nil {
			a := c.Position
			c.Anchor = &a
		}
	} else {
		c.Anchor = nil
	}

	switch dir {
	case Up:
		m.moveVertical(c, -1, unit, lineCount, lineLen)
	case Down:
		m.moveVertical(c, 1, unit, lineCount, lineLen)
	case Left:
		moveLeft(c, unit, lineLen)
	case Right:
		moveRight(c, unit, lineCount, lineLen)
	}
}

// moveVertical handles up/down movement. The desired column is consumed, not
// updated: the cursor lands on min(desired, length of the target line).
func (m *Manager) moveVertical(c *Cursor, sign int, unit Unit, lineCount int, lineLen LineLenFunc) {
	if unit == Document {
		if sign < 0 {
			c.Position = Position{}
		} else {
			last := lineCount - 1
			c.Position = Position{Line: last, Column: lineLen(last)}
		}
		return
	}

	step := 1
	if unit == Page {
		step = m.pageSize
	}

	line := c.Position.Line
	if sign < 0 {
		if line == 0 && unit != Page {
			return
		}
		line -= step
		if line < 0 {
			line = 0
		}
	} else {
		last := lineCount - 1
		if line >= last && unit != Page {
			return
		}
		line += step
		if line > last {
			line = last
		}
	}

	column := c.DesiredColumn
	if length := lineLen(line); column > length {
		column = length
	}
	c.Position = Position{Line: line, Column: column}
}

// moveLeft handles leftward movement and records the resulting column as the
// cursor's desired column.
func moveLeft(c *Cursor, unit Unit, lineLen LineLenFunc) {
	switch {
	case unit == Line:
		c.Position.Column = 0
	case c.Position.Column > 0:
		c.Position.Column--
	case c.Position.Line > 0:
		c.Position.Line--
		c.Position.Column = lineLen(c.Position.Line)
	}
	c.DesiredColumn = c.Position.Column
}

// moveRight mirrors moveLeft, bounded by the line length and line count.
func moveRight(c *Cursor, unit Unit, lineCount int, lineLen LineLenFunc) {
	switch {
	case unit == Line:
		c.Position.Column = lineLen(c.Position.Line)
	case c.Position.Column < lineLen(c.Position.Line):
		c.Position.Column++
	case c.Position.Line < lineCount-1:
		c.Position.Line++
		c.Position.Column = 0
	}
	c.DesiredColumn = c.Position.Column
}

// dedupe removes cursors occupying the same position, keeping the first
// occurrence. The primary cursor is first and therefore always survives.
func (m *Manager) dedupe() {
	if len(m.cursors) <= 1 {
		return
	}
	seen := make(map[Position]struct{}, len(m.cursors))
	out := m.cursors[:0]
	for _, c := range m.cursors {
		if _, dup := seen[c.Position]; dup {
			continue
		}
		seen[c.Position] = struct{}{}
		out = append(out, c)
	}
	m.cursors = out
}
