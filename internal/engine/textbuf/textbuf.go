// Package textbuf provides a minimal line-oriented text buffer implementing
// the accessor surface the cursor and selection managers consume: a line
// count, per-line lengths, and per-line text. It also supports the insert and
// delete edits the demo host needs.
//
// Columns are rune-indexed, matching the engine packages. Grapheme-cluster
// counts are exposed separately for display purposes.
package textbuf

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Buffer is a line-oriented text buffer. A buffer always holds at least one
// (possibly empty) line.
type Buffer struct {
	lines []string
}

// New creates a buffer from the given text, split on newlines.
func New(text string) *Buffer {
	return &Buffer{lines: strings.Split(text, "\n")}
}

// LineCount returns the number of lines.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns the text of the given 0-based line, or "" when out of range.
func (b *Buffer) Line(line int) string {
	if line < 0 || line >= len(b.lines) {
		return ""
	}
	return b.lines[line]
}

// LineLen returns the length of the given line in runes, or 0 when out of
// range.
func (b *Buffer) LineLen(line int) int {
	if line < 0 || line >= len(b.lines) {
		return 0
	}
	return len([]rune(b.lines[line]))
}

// Graphemes returns the number of grapheme clusters on the given line.
// Useful for display-oriented callers; engine columns remain rune-based.
func (b *Buffer) Graphemes(line int) int {
	if line < 0 || line >= len(b.lines) {
		return 0
	}
	return uniseg.GraphemeClusterCount(b.lines[line])
}

// Text returns the full buffer contents.
func (b *Buffer) Text() string {
	return strings.Join(b.lines, "\n")
}

// Insert inserts text at the given line and rune column. Text containing
// newlines splits the line. Out-of-range coordinates are clamped.
func (b *Buffer) Insert(line, column int, text string) {
	if text == "" {
		return
	}
	line = b.clampLine(line)
	runes := []rune(b.lines[line])
	column = clampInt(column, 0, len(runes))

	head := string(runes[:column])
	tail := string(runes[column:])

	parts := strings.Split(text, "\n")
	if len(parts) == 1 {
		b.lines[line] = head + text + tail
		return
	}

	inserted := make([]string, len(parts))
	copy(inserted, parts)
	inserted[0] = head + inserted[0]
	inserted[len(inserted)-1] += tail

	out := make([]string, 0, len(b.lines)+len(inserted)-1)
	out = append(out, b.lines[:line]...)
	out = append(out, inserted...)
	out = append(out, b.lines[line+1:]...)
	b.lines = out
}

// Delete removes the text between (startLine, startColumn) and
// (endLine, endColumn), end exclusive, joining lines when the span covers a
// newline. Coordinates are clamped; an inverted span is a no-op.
func (b *Buffer) Delete(startLine, startColumn, endLine, endColumn int) {
	startLine = b.clampLine(startLine)
	endLine = b.clampLine(endLine)
	if startLine > endLine {
		return
	}

	startRunes := []rune(b.lines[startLine])
	endRunes := []rune(b.lines[endLine])
	startColumn = clampInt(startColumn, 0, len(startRunes))
	endColumn = clampInt(endColumn, 0, len(endRunes))
	if startLine == endLine && startColumn >= endColumn {
		return
	}

	joined := string(startRunes[:startColumn]) + string(endRunes[endColumn:])

	out := make([]string, 0, len(b.lines)-(endLine-startLine))
	out = append(out, b.lines[:startLine]...)
	out = append(out, joined)
	out = append(out, b.lines[endLine+1:]...)
	b.lines = out
}

func (b *Buffer) clampLine(line int) int {
	return clampInt(line, 0, len(b.lines)-1)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
