package domain

import (
	"fmt"

	"go.trai.ch/zerr"
)

// Range is a text range as recorded by the analysis engine.
// Lines are 1-based. Columns are 1-based, count runes, and are half-open:
// the rune at EndColumn is not part of the range.
type Range struct {
	StartLine   int `json:"startLine" yaml:"startLine"`
	StartColumn int `json:"startColumn" yaml:"startColumn"`
	EndLine     int `json:"endLine" yaml:"endLine"`
	EndColumn   int `json:"endColumn" yaml:"endColumn"`
}

// NewRange builds a Range and validates its invariants.
func NewRange(startLine, startColumn, endLine, endColumn int) (Range, error) {
	r := Range{
		StartLine:   startLine,
		StartColumn: startColumn,
		EndLine:     endLine,
		EndColumn:   endColumn,
	}
	if !r.Valid() {
		return Range{}, zerr.With(ErrInvalidRange, "range", r.String())
	}
	return r, nil
}

// Valid reports whether the range satisfies its invariants.
func (r Range) Valid() bool {
	if r.StartLine < 1 || r.StartLine > r.EndLine {
		return false
	}
	if r.StartColumn < 1 || r.EndColumn < 1 {
		return false
	}
	if r.StartLine == r.EndLine && r.StartColumn > r.EndColumn {
		return false
	}
	return true
}

// SingleLine reports whether the range starts and ends on the same line.
func (r Range) SingleLine() bool {
	return r.StartLine == r.EndLine
}

// String formats the range as "startLine:startColumn-endLine:endColumn".
func (r Range) String() string {
	return fmt.Sprintf("%d:%d-%d:%d", r.StartLine, r.StartColumn, r.EndLine, r.EndColumn)
}
