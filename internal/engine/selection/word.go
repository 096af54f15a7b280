package selection

import "unicode"

// Boundary describes the word surrounding a column in a line.
// Start is inclusive, End is exclusive, both rune-indexed.
type Boundary struct {
	Start int
	End   int
	Word  string
}

// IsWordChar returns true if r is a word character: a letter, a digit, or
// underscore. This is the single predicate used for word boundary detection,
// so behavior is portable across callers.
func IsWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// WordBoundaryAt returns the boundary of the word containing the given
// column. On an empty line it returns a zero-length boundary at 0. The
// column is clamped to the last valid rune index. If the rune there is not a
// word character the boundary covers exactly that one rune; otherwise the
// boundary expands left and right while adjacent runes are word characters.
func WordBoundaryAt(column int, lineText string) Boundary {
	runes := []rune(lineText)
	if len(runes) == 0 {
		return Boundary{}
	}
	if column < 0 {
		column = 0
	}
	if column >= len(runes) {
		column = len(runes) - 1
	}

	if !IsWordChar(runes[column]) {
		return Boundary{
			Start: column,
			End:   column + 1,
			Word:  string(runes[column : column+1]),
		}
	}

	start, end := column, column+1
	for start > 0 && IsWordChar(runes[start-1]) {
		start--
	}
	for end < len(runes) && IsWordChar(runes[end]) {
		end++
	}
	return Boundary{
		Start: start,
		End:   end,
		Word:  string(runes[start:end]),
	}
}
