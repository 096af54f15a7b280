// Package cursor provides multi-cursor management for a text editing surface.
//
// The cursor package handles:
//
//   - Line/column positions with Position
//   - Insertion points with optional selection anchors via Cursor
//   - A cursor collection with a permanent primary cursor via Manager
//   - Directional, unit-based navigation with MoveAll
//
// Primary Cursor:
//
// A Manager always holds at least one cursor, identified as "primary". The
// primary cursor is created at (0,0) when the manager is constructed, is
// always the first element of the collection, and cannot be removed.
// Secondary cursors are created with AddCursor and destroyed by RemoveCursor,
// ClearSecondary, operations that collapse back to a single cursor, or
// automatically when two cursors converge on the same position after a move.
//
// Desired Column:
//
// Each cursor remembers the column of its last horizontal move. Vertical
// moves resolve onto shorter lines using min(desired, line length) without
// overwriting the remembered column, so crossing a short line and landing on
// a long one restores the original column.
//
// Selection Anchors:
//
// A cursor carries at most one selection anchor, captured on the first
// selecting move and cleared by any non-selecting move. Anchors describe
// keyboard-driven selection per insertion point; the selection package holds
// an independent range list for selection sets that do not correspond 1:1
// with insertion points. The two models are deliberately not unified.
//
// Manager is not thread-safe; it is driven synchronously from a single
// input-handling goroutine. The buffer accessor functions passed to MoveAll
// and SelectAll must not call back into the manager.
package cursor
