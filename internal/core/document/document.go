// Package document holds the working text artifact and passage resolution.
package document

import (
	"errors"
	"strings"
)

// StalePolicy controls what Commit does when the passage being replaced is
// no longer present in the working text (e.g. a prior commit altered it).
type StalePolicy string

const (
	// StaleIgnore treats a missing passage as a successful no-op commit.
	StaleIgnore StalePolicy = "ignore"
	// StaleError rejects the commit with ErrStalePassage.
	StaleError StalePolicy = "error"
)

// ErrStalePassage is returned by Commit under StaleError when the passage to
// replace does not occur in the working text.
var ErrStalePassage = errors.New("passage no longer present in document")

// ErrEmptyDocument is returned by Load when the ingested text is empty.
var ErrEmptyDocument = errors.New("document is empty")

// Document is a loaded text artifact. The original snapshot never changes
// after Load; only Commit mutates the working copy.
type Document struct {
	original string
	current  string
	name     string
	dirty    bool
	stale    StalePolicy
}

// Option configures a Document at load time.
type Option func(*Document)

// WithStalePolicy overrides the default StaleIgnore commit behavior.
func WithStalePolicy(p StalePolicy) Option {
	return func(d *Document) {
		if p != "" {
			d.stale = p
		}
	}
}

// Load constructs a Document from ingested text. The name is the source
// identifier (typically the input filename) used to derive the output name.
func Load(text, name string, opts ...Option) (*Document, error) {
	if text == "" {
		return nil, ErrEmptyDocument
	}

	d := &Document{
		original: text,
		current:  text,
		name:     name,
		stale:    StaleIgnore,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Commit replaces the first occurrence of old in the working text with new
// and marks the document dirty. When old is absent the behavior depends on
// the stale policy: StaleIgnore records the commit as applied with no textual
// effect (dirty is still set), StaleError returns ErrStalePassage and leaves
// the document untouched.
func (d *Document) Commit(old, new string) error {
	if !strings.Contains(d.current, old) {
		if d.stale == StaleError {
			return ErrStalePassage
		}
		d.dirty = true
		return nil
	}

	d.current = strings.Replace(d.current, old, new, 1)
	d.dirty = true
	return nil
}

// Snapshot returns the working text.
func (d *Document) Snapshot() string { return d.current }

// Original returns the immutable text captured at load time.
func (d *Document) Original() string { return d.original }

// Name returns the source identifier supplied at load time.
func (d *Document) Name() string { return d.name }

// Dirty reports whether at least one commit has been applied since load.
func (d *Document) Dirty() bool { return d.dirty }

// Lines splits the working text into lines without trailing newlines.
func (d *Document) Lines() []string {
	return strings.Split(d.current, "\n")
}
