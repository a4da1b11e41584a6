package printer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPanel(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	p.Panel("ORIGINAL PASSAGE", "Line1\nLine2")

	out := buf.String()
	assert.Contains(t, out, "ORIGINAL PASSAGE")
	assert.Contains(t, out, "Line1\nLine2")
}

func TestNumberedLines(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	p.NumberedLines([]string{"short", strings.Repeat("x", 100), "third"}, 2, 80)

	out := buf.String()
	assert.Contains(t, out, "short")
	assert.Contains(t, out, strings.Repeat("x", 80)+"...")
	assert.NotContains(t, out, "third", "lines past max are skipped")
}

func TestSuccessf(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	p.Successf("saved as %s", "essay_edited.txt")

	assert.Contains(t, buf.String(), "saved as essay_edited.txt")
}
