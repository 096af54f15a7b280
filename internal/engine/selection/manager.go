package selection

import (
	"sort"
	"strings"
)

// LineLenFunc reports the character length of a 0-based line.
type LineLenFunc func(line int) int

// GetLineFunc returns the full text of a 0-based line.
type GetLineFunc func(line int) string

// Manager owns an ordered list of selection ranges. The first range is the
// primary selection. The list carries no required sort order except
// immediately after a merge pass.
type Manager struct {
	selections []Range
}

// NewManager creates a manager with no selections.
func NewManager() *Manager {
	return &Manager{}
}

// Selections returns a copy of all selection ranges.
func (m *Manager) Selections() []Range {
	out := make([]Range, len(m.selections))
	copy(out, m.selections)
	return out
}

// Primary returns the first selection, or false if the list is empty.
func (m *Manager) Primary() (Range, bool) {
	if len(m.selections) == 0 {
		return Range{}, false
	}
	return m.selections[0], true
}

// Count returns the number of selections.
func (m *Manager) Count() int {
	return len(m.selections)
}

// HasSelection returns true if at least one selection exists.
func (m *Manager) HasSelection() bool {
	return len(m.selections) > 0
}

// Set replaces the whole list with a single range. Negative coordinates are
// clamped to zero.
func (m *Manager) Set(r Range) {
	m.selections = []Range{clampRange(r)}
}

// Add appends a range and merges overlapping selections. Negative
// coordinates are clamped to zero.
func (m *Manager) Add(r Range) {
	m.selections = append(m.selections, clampRange(r))
	m.mergeOverlapping()
}

// Clear removes all selections.
func (m *Manager) Clear() {
	m.selections = nil
}

// SelectWord installs the word surrounding the given column of lineText as
// the sole selection and returns it. The word boundary follows
// WordBoundaryAt.
func (m *Manager) SelectWord(line, column int, lineText string) Range {
	if line < 0 {
		line = 0
	}
	b := WordBoundaryAt(column, lineText)
	r := Range{AnchorLine: line, AnchorColumn: b.Start, ActiveLine: line, ActiveColumn: b.End}
	m.selections = []Range{r}
	return r
}

// SelectLine installs the entire line, columns 0..lineLen, as the sole
// selection and returns it.
func (m *Manager) SelectLine(line, lineLen int) Range {
	if line < 0 {
		line = 0
	}
	if lineLen < 0 {
		lineLen = 0
	}
	r := Range{AnchorLine: line, ActiveLine: line, ActiveColumn: lineLen}
	m.selections = []Range{r}
	return r
}

// ExpandToFullLines widens the primary selection so its start column is 0 and
// its end column is the full length of its end line. No-op when the list is
// empty.
func (m *Manager) ExpandToFullLines(lineLen LineLenFunc) {
	if len(m.selections) == 0 || lineLen == nil {
		return
	}
	sp := m.selections[0].Normalize()
	sp.StartColumn = 0
	sp.EndColumn = lineLen(sp.EndLine)
	m.selections[0] = sp.Range()
}

// Shrink insets the primary selection. A single-line selection spanning at
// most 2 columns collapses to an empty selection at the midpoint column;
// otherwise both ends move inward by one column, with the end clamped to
// never cross below start+1.
func (m *Manager) Shrink() {
	if len(m.selections) == 0 {
		return
	}
	sp := m.selections[0].Normalize()

	if sp.StartLine == sp.EndLine && sp.EndColumn-sp.StartColumn <= 2 {
		mid := (sp.StartColumn + sp.EndColumn) / 2
		m.selections[0] = Range{
			AnchorLine:   sp.StartLine,
			AnchorColumn: mid,
			ActiveLine:   sp.StartLine,
			ActiveColumn: mid,
		}
		return
	}

	start := sp.StartColumn + 1
	end := sp.EndColumn - 1
	if sp.StartLine == sp.EndLine {
		if end < start {
			end = start
		}
	} else if end < 0 {
		end = 0
	}
	m.selections[0] = Range{
		AnchorLine:   sp.StartLine,
		AnchorColumn: start,
		ActiveLine:   sp.EndLine,
		ActiveColumn: end,
	}
}

// SelectedText extracts the text covered by a selection. Single-line
// selections yield a substring of that line; multi-line selections yield the
// tail of the start line, every full line between, and the head of the end
// line, joined with newlines. Columns beyond a line's length are clamped.
func SelectedText(r Range, getLine GetLineFunc) string {
	if getLine == nil {
		return ""
	}
	sp := r.Normalize()
	if sp.StartLine == sp.EndLine {
		return sliceRunes(getLine(sp.StartLine), sp.StartColumn, sp.EndColumn)
	}

	var b strings.Builder
	b.WriteString(sliceRunes(getLine(sp.StartLine), sp.StartColumn, -1))
	for line := sp.StartLine + 1; line < sp.EndLine; line++ {
		b.WriteByte('\n')
		b.WriteString(getLine(line))
	}
	b.WriteByte('\n')
	b.WriteString(sliceRunes(getLine(sp.EndLine), 0, sp.EndColumn))
	return b.String()
}

// sliceRunes returns s[from:to] in rune indices, clamping both bounds.
// A negative to means the end of the string.
func sliceRunes(s string, from, to int) string {
	runes := []rune(s)
	if to < 0 || to > len(runes) {
		to = len(runes)
	}
	if from < 0 {
		from = 0
	}
	if from > len(runes) {
		from = len(runes)
	}
	if from >= to {
		return ""
	}
	return string(runes[from:to])
}

// mergeOverlapping normalizes every range, sorts by start, and sweeps left to
// right merging overlapping ranges. Merged output is forward-oriented, and no
// two surviving ranges overlap: any span starting before the running span's
// end is absorbed, which also swallows zero-width spans inside it. A span
// starting exactly at the end stays separate.
// Running the pass twice yields the same list as running it once.
func (m *Manager) mergeOverlapping() {
	if len(m.selections) == 0 {
		return
	}

	spans := make([]Span, len(m.selections))
	for i, r := range m.selections {
		spans[i] = r.Normalize()
	}

	sort.Slice(spans, func(i, j int) bool {
		c := comparePoints(spans[i].StartLine, spans[i].StartColumn, spans[j].StartLine, spans[j].StartColumn)
		if c != 0 {
			return c < 0
		}
		// Same start: larger ranges first so the sweep absorbs the rest.
		return comparePoints(spans[i].EndLine, spans[i].EndColumn, spans[j].EndLine, spans[j].EndColumn) > 0
	})

	merged := spans[:1]
	for _, sp := range spans[1:] {
		last := &merged[len(merged)-1]
		if comparePoints(sp.StartLine, sp.StartColumn, last.EndLine, last.EndColumn) < 0 {
			if comparePoints(sp.EndLine, sp.EndColumn, last.EndLine, last.EndColumn) > 0 {
				last.EndLine = sp.EndLine
				last.EndColumn = sp.EndColumn
			}
		} else {
			merged = append(merged, sp)
		}
	}

	m.selections = m.selections[:0]
	for _, sp := range merged {
		m.selections = append(m.selections, sp.Range())
	}
}
