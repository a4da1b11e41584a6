package document

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultMinExcerptLen is the minimum length for a literal text selector.
// Anything at or below this length that is not a line range is assumed to be
// a typo rather than a pasted passage.
const DefaultMinExcerptLen = 10

// Selection is a resolved passage: the exact substring of the working text
// chosen for editing, together with the selector the user supplied.
type Selection struct {
	Text     string
	Selector string
}

// InvalidRangeError reports a line-range selector that does not fit the
// document.
type InvalidRangeError struct {
	Start, End int
	LineCount  int
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid line range %d-%d: document has %d lines", e.Start, e.End, e.LineCount)
}

// AmbiguousSelectorError reports a selector that is neither a line range nor
// a usable literal excerpt. Retry with a range like "5-8" or a longer exact
// excerpt.
type AmbiguousSelectorError struct {
	Selector string
}

func (e *AmbiguousSelectorError) Error() string {
	return fmt.Sprintf("selector %q is ambiguous: use a line range like 5-8 or paste a longer exact excerpt", e.Selector)
}

// SelectorNotFoundError reports a literal selector that is not an exact
// substring of the working text.
type SelectorNotFoundError struct {
	Selector string
}

func (e *SelectorNotFoundError) Error() string {
	return fmt.Sprintf("text not found in document: %q", e.Selector)
}

// Resolve maps a user-supplied selector to a concrete passage of the working
// text. Selectors of the form "<start>-<end>" are 1-based inclusive line
// ranges; anything else is treated as a literal excerpt that must exceed
// minExcerptLen characters and occur verbatim in the working text. Resolve
// never mutates the document; pass minExcerptLen <= 0 to use the default.
func (d *Document) Resolve(selector string, minExcerptLen int) (Selection, error) {
	if minExcerptLen <= 0 {
		minExcerptLen = DefaultMinExcerptLen
	}

	if start, end, ok := parseRange(selector); ok {
		lines := d.Lines()
		if start < 1 || end < start || end > len(lines) {
			return Selection{}, &InvalidRangeError{Start: start, End: end, LineCount: len(lines)}
		}
		return Selection{
			Text:     strings.Join(lines[start-1:end], "\n"),
			Selector: selector,
		}, nil
	}

	if len(selector) > minExcerptLen {
		if !strings.Contains(d.current, selector) {
			return Selection{}, &SelectorNotFoundError{Selector: selector}
		}
		return Selection{Text: selector, Selector: selector}, nil
	}

	return Selection{}, &AmbiguousSelectorError{Selector: selector}
}

// parseRange parses "<int>-<int>" selectors. Multi-line literal selectors
// containing a dash do not qualify: both halves must be plain integers.
func parseRange(selector string) (start, end int, ok bool) {
	before, after, found := strings.Cut(selector, "-")
	if !found {
		return 0, 0, false
	}

	start, err := strconv.Atoi(strings.TrimSpace(before))
	if err != nil {
		return 0, 0, false
	}
	end, err = strconv.Atoi(strings.TrimSpace(after))
	if err != nil {
		return 0, 0, false
	}
	return start, end, true
}
