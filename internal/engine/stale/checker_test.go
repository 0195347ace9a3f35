package stale_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vigil/internal/core/domain"
	"go.trai.ch/vigil/internal/engine/stale"
)

const classA = "class A {\n    int F() { return 1; }\n}\n"

func candidate(body string, r domain.Range) domain.RefactorCandidate {
	return domain.RefactorCandidate{Name: "F", Body: body, Range: r, FileType: "cs"}
}

func rng(sl, sc, el, ec int) domain.Range {
	return domain.Range{StartLine: sl, StartColumn: sc, EndLine: el, EndColumn: ec}
}

func TestCheck_Unchanged(t *testing.T) {
	c := candidate("int F() { return 1; }", rng(2, 5, 2, 26))

	res := stale.Check(classA, c)

	assert.Equal(t, stale.Unchanged, res.Status)
	assert.Equal(t, c.Range, res.Range)
}

func TestCheck_Moved(t *testing.T) {
	c := candidate("int F() { return 1; }", rng(2, 5, 2, 26))
	doc := "// header\n" + classA

	res := stale.Check(doc, c)

	require.Equal(t, stale.Moved, res.Status)
	assert.Equal(t, rng(3, 5, 3, 26), res.Range)
	assert.Equal(t, rng(2, 5, 2, 26), c.Range, "the input candidate must not change")

	again := stale.Check(doc, c.WithRange(res.Range))
	assert.Equal(t, stale.Unchanged, again.Status)
}

func TestCheck_Stale(t *testing.T) {
	c := candidate("int F() { return 1; }", rng(2, 5, 2, 26))
	doc := "class A {\n    int F() { return 2; }\n}\n"

	res := stale.Check(doc, c)

	assert.Equal(t, stale.Stale, res.Status)
	assert.Equal(t, domain.Range{}, res.Range)
}

func TestCheck_EmptyBodyIsStale(t *testing.T) {
	assert.Equal(t, stale.Stale, stale.Check(classA, candidate("", rng(1, 1, 1, 1))).Status)
}

func TestCheck_CRLFMultiLine(t *testing.T) {
	body := "void G()\r\n{\r\n    x();\r\n}"
	doc := "using X;\r\n\r\nvoid G()\r\n{\r\n    x();\r\n}\r\n"

	res := stale.Check(doc, candidate(body, rng(1, 1, 4, 2)))
	require.Equal(t, stale.Moved, res.Status)
	assert.Equal(t, rng(3, 1, 6, 2), res.Range)

	assert.Equal(t, stale.Unchanged, stale.Check(doc, candidate(body, res.Range)).Status)
}

func TestCheck_MultiLineUnchanged(t *testing.T) {
	body := "int F() {\n        return 1;\n    }"
	doc := "class A {\n    int F() {\n        return 1;\n    }\n}\n"

	res := stale.Check(doc, candidate(body, rng(2, 5, 4, 6)))

	assert.Equal(t, stale.Unchanged, res.Status)
}

func TestCheck_LocatesAcrossMixedLineEndings(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		body string
		want domain.Range
	}{
		{name: "mixed", doc: "a\r\nb\nc\rTARGET", body: "TARGET", want: rng(4, 1, 4, 7)},
		{name: "lone cr", doc: "x\ry\rint H() {}\r", body: "int H() {}", want: rng(3, 1, 3, 11)},
		{name: "crlf", doc: "x\r\n  int H() {}\r\n", body: "int H() {}", want: rng(2, 3, 2, 13)},
		{name: "first line", doc: "int H() {}", body: "int H() {}", want: rng(1, 1, 1, 11)},
		{name: "trailing newline in body", doc: "a\nfoo()\nb", body: "foo()\n", want: rng(2, 1, 3, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := stale.Check(tt.doc, candidate(tt.body, rng(99, 1, 99, 2)))

			require.Equal(t, stale.Moved, res.Status)
			assert.Equal(t, tt.want, res.Range)
			assert.Equal(t, stale.Unchanged, stale.Check(tt.doc, candidate(tt.body, res.Range)).Status)
		})
	}
}

func TestCheck_ColumnsCountRunes(t *testing.T) {
	doc := "// ü\nçint F() {}"
	body := "int F() {}"

	res := stale.Check(doc, candidate(body, rng(1, 1, 1, 5)))
	require.Equal(t, stale.Moved, res.Status)
	assert.Equal(t, rng(2, 2, 2, 12), res.Range)

	assert.Equal(t, stale.Unchanged, stale.Check(doc, candidate(body, res.Range)).Status)
}

func TestCheck_MalformedRanges(t *testing.T) {
	doc := "a\nint F() {}"
	body := "int F() {}"

	tests := []struct {
		name string
		r    domain.Range
		want stale.Status
	}{
		{name: "zero", r: domain.Range{}, want: stale.Moved},
		{name: "start past end of document", r: rng(100, 1, 100, 5), want: stale.Moved},
		{name: "start after end", r: rng(2, 1, 1, 1), want: stale.Moved},
		{name: "negative columns", r: rng(2, -3, 2, -1), want: stale.Moved},
		{name: "reversed columns", r: rng(2, 9, 2, 2), want: stale.Moved},
		{name: "end column clamped", r: rng(2, 1, 2, 999), want: stale.Unchanged},
		{name: "end line clamped", r: rng(2, 1, 9, 50), want: stale.Unchanged},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var res stale.Result
			require.NotPanics(t, func() { res = stale.Check(doc, candidate(body, tt.r)) })
			assert.Equal(t, tt.want, res.Status)
		})
	}
}

func TestCheck_UnchangedRangeIsClampedToDocument(t *testing.T) {
	doc := "a\nint F() {}"
	body := "int F() {}"

	for _, r := range []domain.Range{rng(2, 1, 9, 50), rng(2, 1, 2, 999), rng(2, 1, 3, 1)} {
		res := stale.Check(doc, candidate(body, r))

		require.Equal(t, stale.Unchanged, res.Status, "range %s", r)
		assert.Equal(t, rng(2, 1, 2, 11), res.Range, "range %s", r)
		assert.Equal(t, res, stale.Check(doc, candidate(body, res.Range)))
	}
}

func TestCheck_IgnoresMatchesSplittingCRLF(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		body string
	}{
		{name: "starts after carriage return", doc: "a\r\nfoo", body: "\nfoo"},
		{name: "ends before line feed", doc: "a\r\nfoo", body: "a\r"},
		{name: "every occurrence splits", doc: "a\r\nfoo\r\nfoo", body: "\nfoo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, stale.Stale, stale.Check(tt.doc, candidate(tt.body, rng(9, 1, 9, 2))).Status)
		})
	}
}

func TestCheck_MalformedRangeNeverPanicsOnStaleBody(t *testing.T) {
	ranges := []domain.Range{
		{}, rng(-1, -1, -1, -1), rng(1, 1, 1000, 1000), rng(3, 1, 3, 1), rng(1, 50, 2, 1),
	}
	for _, r := range ranges {
		require.NotPanics(t, func() {
			assert.Equal(t, stale.Stale, stale.Check("x\r\ny", candidate("missing", r)).Status)
		})
	}
}

func TestRevalidate(t *testing.T) {
	c := candidate("int F() { return 1; }", rng(2, 5, 2, 26))
	c.Targets = []domain.RefactorTarget{{Category: "Complex Method", Line: 2}}

	t.Run("unchanged", func(t *testing.T) {
		got, ok := stale.Revalidate(classA, c)
		require.True(t, ok)
		assert.Equal(t, c, got)
	})

	t.Run("moved", func(t *testing.T) {
		got, ok := stale.Revalidate("\n\n"+classA, c)
		require.True(t, ok)
		assert.Equal(t, rng(4, 5, 4, 26), got.Range)
		assert.Equal(t, c.Name, got.Name)
		assert.Equal(t, c.Targets, got.Targets)
		assert.Equal(t, rng(2, 5, 2, 26), c.Range)
	})

	t.Run("stale", func(t *testing.T) {
		_, ok := stale.Revalidate("class A {}", c)
		assert.False(t, ok)
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "unchanged", stale.Unchanged.String())
	assert.Equal(t, "moved", stale.Moved.String())
	assert.Equal(t, "stale", stale.Stale.String())
	assert.Equal(t, "unknown", stale.Status(42).String())
}
