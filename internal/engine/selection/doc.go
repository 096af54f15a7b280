// Package selection provides selection range management for a text editing
// surface.
//
// Selections use an anchor/active model where:
//   - Anchor: the position where the selection gesture began
//   - Active: the current (moving) end of the selection
//
// When anchor equals active the selection is empty. A selection can extend
// forward (active after anchor) or backward (active before anchor); Normalize
// re-expresses either orientation as a Span with a guaranteed start <= end
// ordering.
//
// The Manager holds an ordered list of ranges. Adding a range triggers a
// merge pass that normalizes, sorts by start, and sweeps overlapping ranges
// into one. Overlap is half-open: a range ending exactly where another begins
// does not overlap it. Ranges that pass through Add come out
// forward-oriented; directionality is not preserved.
//
// The range list is independent of the cursor package's per-cursor anchors,
// so selection sets need not correspond 1:1 with insertion points (for
// example, selecting every occurrence of a word).
//
// Columns are rune-indexed. Word boundary detection classifies letters,
// digits, and underscore as word characters; see IsWordChar.
//
// Manager is not thread-safe; it is driven synchronously from a single
// input-handling goroutine.
package selection
