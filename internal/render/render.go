// Package render paints a text buffer, selections, and cursors onto a tcell
// screen for the demo application.
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/dshills/caret/internal/engine/cursor"
	"github.com/dshills/caret/internal/engine/selection"
	"github.com/dshills/caret/internal/engine/textbuf"
)

// fallbackHighlight is used when the configured color fails to parse.
const fallbackHighlight = "#30508c"

// Renderer paints buffer contents with selection highlighting and cursor
// markers. The bottom screen row is reserved for a status line.
type Renderer struct {
	text      tcell.Style
	highlight tcell.Style
	secondary tcell.Style
	status    tcell.Style
}

// New creates a renderer. The selection highlight uses the given hex color;
// secondary cursors use a darker blend of the same color so the primary
// terminal cursor stands out.
func New(highlightHex string) *Renderer {
	base, err := colorful.Hex(highlightHex)
	if err != nil {
		base, _ = colorful.Hex(fallbackHighlight)
	}
	dim := base.BlendLab(colorful.Color{}, 0.45).Clamped()

	return &Renderer{
		text:      tcell.StyleDefault,
		highlight: tcell.StyleDefault.Background(toTcell(base)),
		secondary: tcell.StyleDefault.Background(toTcell(dim)),
		status:    tcell.StyleDefault.Reverse(true),
	}
}

// SetHighlight replaces the highlight color, for live config reload.
func (r *Renderer) SetHighlight(highlightHex string) {
	base, err := colorful.Hex(highlightHex)
	if err != nil {
		return
	}
	dim := base.BlendLab(colorful.Color{}, 0.45).Clamped()
	r.highlight = tcell.StyleDefault.Background(toTcell(base))
	r.secondary = tcell.StyleDefault.Background(toTcell(dim))
}

// Draw paints the visible slice of the buffer starting at topLine, then the
// selection ranges, per-cursor anchor selections, and cursor markers.
func (r *Renderer) Draw(screen tcell.Screen, buf *textbuf.Buffer, cursors []cursor.Cursor, sels []selection.Range, topLine int) {
	screen.Clear()
	width, height := screen.Size()
	if height < 2 {
		return
	}
	textRows := height - 1

	spans := collectSpans(cursors, sels)

	for row := 0; row < textRows; row++ {
		line := topLine + row
		if line >= buf.LineCount() {
			break
		}
		x := 0
		for col, ch := range []rune(buf.Line(line)) {
			if x >= width {
				break
			}
			style := r.text
			if containsAny(spans, line, col) {
				style = r.highlight
			}
			screen.SetContent(x, row, ch, nil, style)
			x += runewidth.RuneWidth(ch)
		}
	}

	r.drawCursors(screen, buf, cursors, topLine, textRows)
	r.drawStatus(screen, buf, cursors, width, height)
	screen.Show()
}

// drawCursors shows the terminal cursor at the primary position and paints
// secondary cursor cells.
func (r *Renderer) drawCursors(screen tcell.Screen, buf *textbuf.Buffer, cursors []cursor.Cursor, topLine, textRows int) {
	screen.HideCursor()
	for _, c := range cursors {
		row := c.Position.Line - topLine
		if row < 0 || row >= textRows {
			continue
		}
		x := cellX(buf.Line(c.Position.Line), c.Position.Column)
		if c.IsPrimary() {
			screen.ShowCursor(x, row)
			continue
		}
		ch, _, _, _ := screen.GetContent(x, row)
		if ch == 0 {
			ch = ' '
		}
		screen.SetContent(x, row, ch, nil, r.secondary)
	}
}

// drawStatus renders the bottom status line.
func (r *Renderer) drawStatus(screen tcell.Screen, buf *textbuf.Buffer, cursors []cursor.Cursor, width, height int) {
	var pos cursor.Position
	if len(cursors) > 0 {
		pos = cursors[0].Position
	}
	msg := fmt.Sprintf(" %d:%d  %d cursors  %d lines", pos.Line+1, pos.Column+1, len(cursors), buf.LineCount())

	y := height - 1
	x := 0
	for _, ch := range msg {
		if x >= width {
			break
		}
		screen.SetContent(x, y, ch, nil, r.status)
		x += runewidth.RuneWidth(ch)
	}
	for ; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, r.status)
	}
}

// collectSpans gathers normalized spans from the selection list and from
// cursors carrying anchors.
func collectSpans(cursors []cursor.Cursor, sels []selection.Range) []selection.Span {
	spans := make([]selection.Span, 0, len(sels)+len(cursors))
	for _, s := range sels {
		spans = append(spans, s.Normalize())
	}
	for _, c := range cursors {
		if c.Anchor == nil {
			continue
		}
		r := selection.NewRange(c.Anchor.Line, c.Anchor.Column, c.Position.Line, c.Position.Column)
		spans = append(spans, r.Normalize())
	}
	return spans
}

func containsAny(spans []selection.Span, line, col int) bool {
	for _, sp := range spans {
		if sp.Contains(line, col) {
			return true
		}
	}
	return false
}

// cellX converts a rune column to a screen x coordinate, accounting for
// double-width runes before the column.
func cellX(line string, column int) int {
	x := 0
	for i, ch := range []rune(line) {
		if i >= column {
			break
		}
		x += runewidth.RuneWidth(ch)
	}
	return x
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
