package stale

import (
	"strings"
	"unicode/utf8"
)

// document is a text split into lines with the byte offset of each line.
type document struct {
	text    string
	newline string
	lines   []string
	starts  []int // byte offset of each line in text
}

func newDocument(text string) document {
	lines, starts := splitLines(text)
	return document{
		text:    text,
		newline: detectNewline(text),
		lines:   lines,
		starts:  starts,
	}
}

// detectNewline returns the first line break found in text, "\n" when there is none.
func detectNewline(text string) string {
	i := strings.IndexAny(text, "\r\n")
	switch {
	case i < 0:
		return "\n"
	case text[i] == '\n':
		return "\n"
	case i+1 < len(text) && text[i+1] == '\n':
		return "\r\n"
	default:
		return "\r"
	}
}

// splitLines splits on "\r\n", "\r" and "\n". A trailing break yields a final empty line.
func splitLines(text string) (lines []string, starts []int) {
	start := 0
	for i := 0; i < len(text); i++ {
		var sep int
		switch text[i] {
		case '\n':
			sep = 1
		case '\r':
			sep = 1
			if i+1 < len(text) && text[i+1] == '\n' {
				sep = 2
			}
		default:
			continue
		}
		lines = append(lines, text[start:i])
		starts = append(starts, start)
		i += sep - 1
		start = i + 1
	}
	lines = append(lines, text[start:])
	starts = append(starts, start)
	return lines, starts
}

// sliceRunes returns line[from:to] counted in runes, clamped to the line.
func sliceRunes(line string, from, to int) string {
	n := utf8.RuneCountInString(line)
	from = min(max(from, 0), n)
	to = min(max(to, 0), n)
	if to <= from {
		return ""
	}

	var b, e int
	idx := 0
	for off := range line {
		if idx == from {
			b = off
		}
		if idx == to {
			e = off
			return line[b:e]
		}
		idx++
	}
	return line[b:]
}
