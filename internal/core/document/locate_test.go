package document

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLoad(t *testing.T, text string) *Document {
	t.Helper()
	doc, err := Load(text, "essay.txt")
	require.NoError(t, err)
	return doc
}

func TestResolve_LineRanges(t *testing.T) {
	doc := mustLoad(t, "Line1\nLine2\nLine3\nLine4")

	tests := []struct {
		selector string
		want     string
	}{
		{"1-1", "Line1"},
		{"2-2", "Line2"},
		{"1-4", "Line1\nLine2\nLine3\nLine4"},
		{"2-3", "Line2\nLine3"},
		{" 2 - 3 ", "Line2\nLine3"},
	}

	for _, tt := range tests {
		t.Run(tt.selector, func(t *testing.T) {
			sel, err := doc.Resolve(tt.selector, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.want, sel.Text)
			assert.Contains(t, doc.Snapshot(), sel.Text)
		})
	}
}

func TestResolve_AllValidRanges(t *testing.T) {
	doc := mustLoad(t, "a\nbb\nccc\ndddd\neeeee")
	lines := doc.Lines()

	for s := 1; s <= len(lines); s++ {
		for e := s; e <= len(lines); e++ {
			sel, err := doc.Resolve(fmt.Sprintf("%d-%d", s, e), 0)
			require.NoError(t, err)
			assert.Equal(t, strings.Join(lines[s-1:e], "\n"), sel.Text)
			assert.Contains(t, doc.Snapshot(), sel.Text)
		}
	}
}

func TestResolve_InvalidRanges(t *testing.T) {
	doc := mustLoad(t, "Line1\nLine2\nLine3")

	for _, selector := range []string{"0-1", "3-2", "1-4", "99-99"} {
		t.Run(selector, func(t *testing.T) {
			_, err := doc.Resolve(selector, 0)
			var rangeErr *InvalidRangeError
			require.ErrorAs(t, err, &rangeErr)
			assert.Equal(t, 3, rangeErr.LineCount)
		})
	}
}

func TestResolve_LiteralExcerpt(t *testing.T) {
	doc := mustLoad(t, "The unexamined life is not worth living.\nSecond line.")

	sel, err := doc.Resolve("unexamined life", 0)
	require.NoError(t, err)
	assert.Equal(t, "unexamined life", sel.Text)
	assert.Equal(t, "unexamined life", sel.Selector)
}

func TestResolve_LiteralNotFound(t *testing.T) {
	doc := mustLoad(t, "The unexamined life is not worth living.")

	_, err := doc.Resolve("examined death is", 0)
	var notFound *SelectorNotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestResolve_LiteralCaseSensitive(t *testing.T) {
	doc := mustLoad(t, "The unexamined life is not worth living.")

	_, err := doc.Resolve("UNEXAMINED LIFE", 0)
	var notFound *SelectorNotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestResolve_ShortSelectorsAmbiguous(t *testing.T) {
	doc := mustLoad(t, "Line1\nLine2\nLine3")

	// Anything at or under the threshold that does not parse as a range.
	for _, selector := range []string{"", "x", "Line2", "5-", "-", "abc-def", "1234567890"} {
		t.Run(selector, func(t *testing.T) {
			_, err := doc.Resolve(selector, 0)
			var ambiguous *AmbiguousSelectorError
			require.ErrorAs(t, err, &ambiguous)
		})
	}
}

func TestResolve_ThresholdBoundary(t *testing.T) {
	doc := mustLoad(t, "abcdefghijk and the rest of the line")

	// Exactly at the threshold: still ambiguous.
	_, err := doc.Resolve("abcdefghij", 0)
	var ambiguous *AmbiguousSelectorError
	require.ErrorAs(t, err, &ambiguous)

	// One past the threshold: resolves.
	sel, err := doc.Resolve("abcdefghijk", 0)
	require.NoError(t, err)
	assert.Equal(t, "abcdefghijk", sel.Text)
}

func TestResolve_CustomThreshold(t *testing.T) {
	doc := mustLoad(t, "tiny text")

	_, err := doc.Resolve("tiny", DefaultMinExcerptLen)
	var ambiguous *AmbiguousSelectorError
	require.ErrorAs(t, err, &ambiguous)

	sel, err := doc.Resolve("tiny", 3)
	require.NoError(t, err)
	assert.Equal(t, "tiny", sel.Text)
}

func TestResolve_DoesNotMutate(t *testing.T) {
	doc := mustLoad(t, "Line1\nLine2")

	_, _ = doc.Resolve("1-2", 0)
	_, _ = doc.Resolve("bogus", 0)

	assert.Equal(t, "Line1\nLine2", doc.Snapshot())
	assert.False(t, doc.Dirty())
}
