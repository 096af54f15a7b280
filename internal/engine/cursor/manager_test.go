package cursor

import (
	"testing"
)

// fixedLen returns a LineLenFunc reporting the same length for every line.
func fixedLen(n int) LineLenFunc {
	return func(int) int { return n }
}

// linesLen returns a LineLenFunc backed by a slice of line lengths.
func linesLen(lengths ...int) LineLenFunc {
	return func(line int) int { return lengths[line] }
}

func TestNewManager(t *testing.T) {
	m := NewManager()

	if m.Count() != 1 {
		t.Fatalf("expected 1 cursor, got %d", m.Count())
	}
	p := m.Primary()
	if p.ID != PrimaryID {
		t.Errorf("expected primary id %q, got %q", PrimaryID, p.ID)
	}
	if !p.Position.IsZero() {
		t.Errorf("expected primary at (0,0), got %s", p.Position)
	}
	if p.Anchor != nil {
		t.Error("new primary should have no anchor")
	}
	if m.PageSize() != DefaultPageSize {
		t.Errorf("expected default page size %d, got %d", DefaultPageSize, m.PageSize())
	}
}

func TestSetPosition(t *testing.T) {
	m := NewManager()
	m.AddCursor(1, 1)
	m.SetPosition(2, 5)

	if m.Count() != 1 {
		t.Errorf("SetPosition should collapse to one cursor, got %d", m.Count())
	}
	p := m.Primary()
	if p.Position != (Position{Line: 2, Column: 5}) {
		t.Errorf("expected (2:5), got %s", p.Position)
	}
	if p.DesiredColumn != 5 {
		t.Errorf("expected desired column 5, got %d", p.DesiredColumn)
	}
}

func TestSetPositionClampsNegative(t *testing.T) {
	m := NewManager()
	m.SetPosition(-3, -7)

	p := m.Primary()
	if !p.Position.IsZero() {
		t.Errorf("negative coordinates should clamp to (0,0), got %s", p.Position)
	}
	if p.DesiredColumn != 0 {
		t.Errorf("expected desired column 0, got %d", p.DesiredColumn)
	}
}

func TestSetPositionClearsAnchor(t *testing.T) {
	m := NewManager()
	m.MoveAll(Right, Character, 5, fixedLen(10), true)
	if m.Primary().Anchor == nil {
		t.Fatal("selecting move should set an anchor")
	}

	m.SetPosition(1, 1)
	if m.Primary().Anchor != nil {
		t.Error("SetPosition should clear the anchor")
	}
}

func TestAddCursor(t *testing.T) {
	m := NewManager()
	c := m.AddCursor(3, 7)

	if c.ID == PrimaryID {
		t.Error("secondary cursor must not reuse the primary id")
	}
	if c.Position != (Position{Line: 3, Column: 7}) {
		t.Errorf("expected (3:7), got %s", c.Position)
	}
	if c.DesiredColumn != 7 {
		t.Errorf("expected desired column 7, got %d", c.DesiredColumn)
	}
	if m.Count() != 2 {
		t.Errorf("expected 2 cursors, got %d", m.Count())
	}
}

func TestAddCursorDuplicatePosition(t *testing.T) {
	m := NewManager()
	first := m.AddCursor(3, 7)
	second := m.AddCursor(3, 7)

	if second.ID != first.ID {
		t.Errorf("expected existing cursor %q, got %q", first.ID, second.ID)
	}
	if m.Count() != 2 {
		t.Errorf("duplicate add must not grow the collection, got %d cursors", m.Count())
	}
}

func TestAddCursorAtPrimaryPosition(t *testing.T) {
	m := NewManager()
	c := m.AddCursor(0, 0)

	if c.ID != PrimaryID {
		t.Errorf("adding at the primary's position should return the primary, got %q", c.ID)
	}
	if m.Count() != 1 {
		t.Errorf("expected 1 cursor, got %d", m.Count())
	}
}

func TestAddCursorUniqueIDs(t *testing.T) {
	m := NewManager()
	seen := map[string]bool{PrimaryID: true}
	for i := 1; i <= 20; i++ {
		c := m.AddCursor(i, 0)
		if seen[c.ID] {
			t.Fatalf("duplicate cursor id %q", c.ID)
		}
		seen[c.ID] = true
	}
}

func TestRemoveCursor(t *testing.T) {
	m := NewManager()
	c := m.AddCursor(1, 1)

	if !m.RemoveCursor(c.ID) {
		t.Error("expected removal to succeed")
	}
	if m.Count() != 1 {
		t.Errorf("expected 1 cursor after removal, got %d", m.Count())
	}
}

func TestRemoveCursorPrimary(t *testing.T) {
	m := NewManager()
	m.AddCursor(1, 1)

	if m.RemoveCursor(PrimaryID) {
		t.Error("removing the primary cursor must fail")
	}
	if m.Count() != 2 {
		t.Errorf("collection should be unchanged, got %d cursors", m.Count())
	}
	if m.All()[0].ID != PrimaryID {
		t.Error("primary must remain the first cursor")
	}
}

func TestRemoveCursorUnknown(t *testing.T) {
	m := NewManager()
	if m.RemoveCursor("cursor-99") {
		t.Error("removing an unknown cursor must return false")
	}
}

func TestClearSecondary(t *testing.T) {
	m := NewManager()
	m.AddCursor(1, 1)
	m.AddCursor(2, 2)
	m.ClearSecondary()

	if m.Count() != 1 {
		t.Errorf("expected 1 cursor, got %d", m.Count())
	}
	if m.Primary().ID != PrimaryID {
		t.Error("primary must survive ClearSecondary")
	}
}

func TestAllReturnsCopies(t *testing.T) {
	m := NewManager()
	m.MoveAll(Right, Character, 5, fixedLen(10), true)

	all := m.All()
	all[0].Position = Position{Line: 4, Column: 4}
	*all[0].Anchor = Position{Line: 4, Column: 4}

	p := m.Primary()
	if p.Position != (Position{Line: 0, Column: 1}) {
		t.Errorf("mutating the returned slice must not affect the manager, got %s", p.Position)
	}
	if !p.Anchor.IsZero() {
		t.Errorf("mutating a returned anchor must not affect the manager, got %s", p.Anchor)
	}
}

func TestMoveLeftCharacter(t *testing.T) {
	m := NewManager()
	m.SetPosition(2, 5)
	m.MoveAll(Left, Character, 5, fixedLen(10), false)

	p := m.Primary()
	if p.Position != (Position{Line: 2, Column: 4}) {
		t.Errorf("expected (2:4), got %s", p.Position)
	}
	if p.DesiredColumn != 4 {
		t.Errorf("expected desired column 4, got %d", p.DesiredColumn)
	}
}

func TestMoveRightLineUnit(t *testing.T) {
	m := NewManager()
	m.SetPosition(2, 5)
	m.MoveAll(Left, Character, 5, fixedLen(10), false)
	m.MoveAll(Right, Line, 5, fixedLen(10), false)

	p := m.Primary()
	if p.Position != (Position{Line: 2, Column: 10}) {
		t.Errorf("expected (2:10), got %s", p.Position)
	}
	if p.DesiredColumn != 10 {
		t.Errorf("expected desired column 10, got %d", p.DesiredColumn)
	}
}

func TestMoveLeftLineUnit(t *testing.T) {
	m := NewManager()
	m.SetPosition(2, 5)
	m.MoveAll(Left, Line, 5, fixedLen(10), false)

	p := m.Primary()
	if p.Position != (Position{Line: 2, Column: 0}) {
		t.Errorf("expected (2:0), got %s", p.Position)
	}
}

func TestMoveLeftWrapsToPreviousLine(t *testing.T) {
	m := NewManager()
	m.SetPosition(1, 0)
	m.MoveAll(Left, Character, 3, linesLen(7, 5, 5), false)

	p := m.Primary()
	if p.Position != (Position{Line: 0, Column: 7}) {
		t.Errorf("expected (0:7), got %s", p.Position)
	}
	if p.DesiredColumn != 7 {
		t.Errorf("expected desired column 7, got %d", p.DesiredColumn)
	}
}

func TestMoveLeftAtOrigin(t *testing.T) {
	m := NewManager()
	m.MoveAll(Left, Character, 3, fixedLen(5), false)

	if !m.Primary().Position.IsZero() {
		t.Errorf("left at (0,0) should not move, got %s", m.Primary().Position)
	}
}

func TestMoveRightWrapsToNextLine(t *testing.T) {
	m := NewManager()
	m.SetPosition(0, 5)
	m.MoveAll(Right, Character, 3, linesLen(5, 8, 8), false)

	p := m.Primary()
	if p.Position != (Position{Line: 1, Column: 0}) {
		t.Errorf("expected (1:0), got %s", p.Position)
	}
}

func TestMoveRightAtDocumentEnd(t *testing.T) {
	m := NewManager()
	m.SetPosition(2, 5)
	m.MoveAll(Right, Character, 3, fixedLen(5), false)

	if m.Primary().Position != (Position{Line: 2, Column: 5}) {
		t.Errorf("right at document end should not move, got %s", m.Primary().Position)
	}
}

func TestMoveVerticalDesiredColumn(t *testing.T) {
	// Line lengths: 10, 3, 10. Moving down across the short line and back
	// onto a long one must restore the remembered column.
	lengths := linesLen(10, 3, 10)
	m := NewManager()
	m.SetPosition(0, 8)

	m.MoveAll(Down, Character, 3, lengths, false)
	p := m.Primary()
	if p.Position != (Position{Line: 1, Column: 3}) {
		t.Fatalf("expected (1:3), got %s", p.Position)
	}
	if p.DesiredColumn != 8 {
		t.Fatalf("vertical move must not change desired column, got %d", p.DesiredColumn)
	}

	m.MoveAll(Down, Character, 3, lengths, false)
	p = m.Primary()
	if p.Position != (Position{Line: 2, Column: 8}) {
		t.Errorf("expected (2:8), got %s", p.Position)
	}
}

func TestMoveUpAtFirstLine(t *testing.T) {
	m := NewManager()
	m.SetPosition(0, 4)
	m.MoveAll(Up, Character, 3, fixedLen(10), false)

	if m.Primary().Position != (Position{Line: 0, Column: 4}) {
		t.Errorf("up at line 0 should not move, got %s", m.Primary().Position)
	}
}

func TestMoveDownAtLastLine(t *testing.T) {
	m := NewManager()
	m.SetPosition(2, 4)
	m.MoveAll(Down, Character, 3, fixedLen(10), false)

	if m.Primary().Position != (Position{Line: 2, Column: 4}) {
		t.Errorf("down at the last line should not move, got %s", m.Primary().Position)
	}
}

func TestMovePageUnit(t *testing.T) {
	m := NewManager()
	m.SetPageSize(10)
	m.SetPosition(25, 4)

	m.MoveAll(Up, Page, 100, fixedLen(10), false)
	if m.Primary().Position.Line != 15 {
		t.Errorf("expected line 15, got %d", m.Primary().Position.Line)
	}

	m.MoveAll(Up, Page, 100, fixedLen(10), false)
	m.MoveAll(Up, Page, 100, fixedLen(10), false)
	if m.Primary().Position.Line != 0 {
		t.Errorf("page up should clamp at line 0, got %d", m.Primary().Position.Line)
	}

	m.MoveAll(Down, Page, 8, fixedLen(10), false)
	if m.Primary().Position.Line != 7 {
		t.Errorf("page down should clamp at the last line, got %d", m.Primary().Position.Line)
	}
}

func TestMoveDocumentUnit(t *testing.T) {
	m := NewManager()
	m.SetPosition(2, 4)

	m.MoveAll(Up, Document, 5, fixedLen(9), false)
	if !m.Primary().Position.IsZero() {
		t.Errorf("document up should land at (0,0), got %s", m.Primary().Position)
	}

	m.MoveAll(Down, Document, 5, fixedLen(9), false)
	if m.Primary().Position != (Position{Line: 4, Column: 9}) {
		t.Errorf("document down should land at (4:9), got %s", m.Primary().Position)
	}
}

func TestMoveAllSelectCapturesAnchor(t *testing.T) {
	m := NewManager()
	m.SetPosition(1, 3)

	m.MoveAll(Right, Character, 5, fixedLen(10), true)
	p := m.Primary()
	if p.Anchor == nil {
		t.Fatal("selecting move should capture an anchor")
	}
	if *p.Anchor != (Position{Line: 1, Column: 3}) {
		t.Errorf("anchor should be the pre-move position, got %s", p.Anchor)
	}

	// A second selecting move keeps the original anchor.
	m.MoveAll(Right, Character, 5, fixedLen(10), true)
	p = m.Primary()
	if *p.Anchor != (Position{Line: 1, Column: 3}) {
		t.Errorf("anchor should be stable across selecting moves, got %s", p.Anchor)
	}
	if p.Position != (Position{Line: 1, Column: 5}) {
		t.Errorf("expected (1:5), got %s", p.Position)
	}
}

func TestMoveAllNonSelectClearsAnchor(t *testing.T) {
	m := NewManager()
	m.MoveAll(Right, Character, 5, fixedLen(10), true)
	m.MoveAll(Right, Character, 5, fixedLen(10), false)

	if m.Primary().Anchor != nil {
		t.Error("non-selecting move should clear the anchor")
	}
}

func TestMoveAllDeduplicates(t *testing.T) {
	m := NewManager()
	m.SetPosition(0, 1)
	m.AddCursor(0, 2)

	// Line-unit left sends both cursors to column 0 of line 0.
	m.MoveAll(Left, Line, 1, fixedLen(5), false)
	if m.Count() != 1 {
		t.Errorf("cursors converging on the same position must merge, got %d", m.Count())
	}
	if m.Primary().ID != PrimaryID {
		t.Error("primary must survive deduplication")
	}
}

func TestMoveAllDedupKeepsFirstSeenOrder(t *testing.T) {
	m := NewManager()
	m.AddCursor(1, 0)
	m.AddCursor(2, 0)
	m.AddCursor(3, 0)

	// Document jump moves every cursor to (0,0); only the primary survives.
	m.MoveAll(Up, Document, 5, fixedLen(5), false)
	if m.Count() != 1 {
		t.Fatalf("expected 1 cursor, got %d", m.Count())
	}
	if m.Primary().ID != PrimaryID {
		t.Errorf("expected primary to survive, got %q", m.Primary().ID)
	}
}

func TestMoveAllMovesEveryCursor(t *testing.T) {
	m := NewManager()
	m.SetPosition(0, 0)
	m.AddCursor(1, 0)
	m.AddCursor(2, 0)

	m.MoveAll(Right, Character, 5, fixedLen(10), false)
	for i, c := range m.All() {
		if c.Position.Column != 1 {
			t.Errorf("cursor %d: expected column 1, got %d", i, c.Position.Column)
		}
	}
}

func TestMoveAllZeroLines(t *testing.T) {
	m := NewManager()
	m.SetPosition(2, 5)
	m.MoveAll(Down, Character, 0, fixedLen(10), false)

	if m.Primary().Position != (Position{Line: 2, Column: 5}) {
		t.Error("MoveAll with no lines should be a no-op")
	}
}

func TestSelectAll(t *testing.T) {
	m := NewManager()
	m.AddCursor(1, 1)
	m.SelectAll(4, linesLen(3, 5, 2, 8))

	if m.Count() != 1 {
		t.Errorf("SelectAll should discard secondary cursors, got %d", m.Count())
	}
	p := m.Primary()
	if p.Anchor == nil || !p.Anchor.IsZero() {
		t.Errorf("expected anchor (0,0), got %v", p.Anchor)
	}
	if p.Position != (Position{Line: 3, Column: 8}) {
		t.Errorf("expected position (3:8), got %s", p.Position)
	}
}

func TestSetPageSizeClamps(t *testing.T) {
	m := NewManager()
	m.SetPageSize(0)
	if m.PageSize() != 1 {
		t.Errorf("page size must clamp to 1, got %d", m.PageSize())
	}
	m.SetPageSize(-5)
	if m.PageSize() != 1 {
		t.Errorf("page size must clamp to 1, got %d", m.PageSize())
	}
	m.SetPageSize(40)
	if m.PageSize() != 40 {
		t.Errorf("expected page size 40, got %d", m.PageSize())
	}
}

func TestColumnsStayWithinLineBounds(t *testing.T) {
	lengths := linesLen(4, 0, 9, 2)
	m := NewManager()
	m.SetPosition(2, 9)
	m.AddCursor(0, 4)

	dirs := []Direction{Up, Down, Left, Right, Down, Left, Up, Right, Right}
	for _, d := range dirs {
		m.MoveAll(d, Character, 4, lengths, false)
		for _, c := range m.All() {
			if c.Position.Column < 0 || c.Position.Column > lengths(c.Position.Line) {
				t.Fatalf("column out of bounds after %s: %s", d, c.Position)
			}
		}
	}
}
