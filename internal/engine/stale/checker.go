// Package stale decides whether a cached refactor candidate still matches a document.
package stale

import (
	"sort"
	"strings"
	"unicode/utf8"

	"go.trai.ch/vigil/internal/core/domain"
)

// Status is the outcome of a staleness check.
type Status uint8

const (
	// Unchanged means the body is still at its recorded range.
	Unchanged Status = iota
	// Moved means the body exists verbatim elsewhere in the document.
	Moved
	// Stale means the body can no longer be found.
	Stale
)

// String returns the string representation of the Status.
func (s Status) String() string {
	switch s {
	case Unchanged:
		return "unchanged"
	case Moved:
		return "moved"
	case Stale:
		return "stale"
	default:
		return "unknown"
	}
}

// Result is the outcome of Check. Range is the candidate's range clamped to the
// document when Unchanged, the relocated range when Moved, and the zero Range when Stale.
type Result struct {
	Status Status
	Range  domain.Range
}

// Check compares the candidate's body with the document text at its recorded range
// and, failing that, searches the whole document for the body.
func Check(text string, c domain.RefactorCandidate) Result {
	if c.Body == "" {
		return Result{Status: Stale}
	}

	doc := newDocument(text)
	if doc.extract(c.Range) == c.Body {
		return Result{Status: Unchanged, Range: doc.clamp(c.Range)}
	}

	i := find(text, c.Body)
	if i < 0 {
		return Result{Status: Stale}
	}
	return Result{Status: Moved, Range: doc.locate(i, c.Body)}
}

// Revalidate returns the candidate with a corrected range, or false when it is stale.
func Revalidate(text string, c domain.RefactorCandidate) (domain.RefactorCandidate, bool) {
	res := Check(text, c)
	switch res.Status {
	case Unchanged, Moved:
		return c.WithRange(res.Range), true
	default:
		return domain.RefactorCandidate{}, false
	}
}

// extract returns the text covered by r, or "" when r does not address the document.
func (d document) extract(r domain.Range) string {
	if !r.Valid() || r.StartLine > len(d.lines) {
		return ""
	}
	endLine := min(r.EndLine, len(d.lines))

	first := d.lines[r.StartLine-1]
	if r.SingleLine() {
		return sliceRunes(first, r.StartColumn-1, r.EndColumn-1)
	}

	parts := make([]string, 0, endLine-r.StartLine+1)
	parts = append(parts, sliceRunes(first, r.StartColumn-1, utf8.RuneCountInString(first)))
	if endLine > r.StartLine {
		parts = append(parts, d.lines[r.StartLine:endLine-1]...)
		parts = append(parts, sliceRunes(d.lines[endLine-1], 0, r.EndColumn-1))
	}
	return strings.Join(parts, d.newline)
}

// clamp pulls the end of r back inside the document. r must address the document.
func (d document) clamp(r domain.Range) domain.Range {
	width := utf8.RuneCountInString(d.lines[min(r.EndLine, len(d.lines))-1]) + 1
	if r.EndLine > len(d.lines) {
		r.EndLine = len(d.lines)
		r.EndColumn = width
	}
	r.EndColumn = min(r.EndColumn, width)
	return r
}

// find returns the byte offset of the first occurrence of body in text that
// neither starts nor ends between the two bytes of a CRLF, or -1.
func find(text, body string) int {
	for from := 0; from+len(body) <= len(text); {
		i := strings.Index(text[from:], body)
		if i < 0 {
			return -1
		}
		i += from
		if !splitsCRLF(text, i) && !splitsCRLF(text, i+len(body)) {
			return i
		}
		from = i + 1
	}
	return -1
}

func splitsCRLF(text string, i int) bool {
	return i > 0 && i < len(text) && text[i-1] == '\r' && text[i] == '\n'
}

// locate converts the byte offset of body in the document into a Range.
func (d document) locate(offset int, body string) domain.Range {
	k := sort.Search(len(d.starts), func(i int) bool { return d.starts[i] > offset }) - 1
	startLine := k + 1
	startCol := utf8.RuneCountInString(d.text[d.starts[k]:offset]) + 1

	bodyLines, _ := splitLines(body)
	if len(bodyLines) == 1 {
		return domain.Range{
			StartLine:   startLine,
			StartColumn: startCol,
			EndLine:     startLine,
			EndColumn:   startCol + utf8.RuneCountInString(body),
		}
	}
	last := bodyLines[len(bodyLines)-1]
	return domain.Range{
		StartLine:   startLine,
		StartColumn: startCol,
		EndLine:     startLine + len(bodyLines) - 1,
		EndColumn:   utf8.RuneCountInString(last) + 1,
	}
}
