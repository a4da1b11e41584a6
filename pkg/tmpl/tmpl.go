// Package tmpl provides template rendering utilities for prompt text.
package tmpl

import (
	"bytes"
	"text/template"
)

// Render executes a Go template string with the given data. Referencing a
// key missing from data is an error rather than silently rendering "<no
// value>", so prompt templates fail loudly when their inputs drift.
func Render(tmpl string, data any) (string, error) {
	t, err := template.New("").Option("missingkey=error").Parse(tmpl)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// MustRender is Render for templates known valid at compile time; it panics
// on error. Intended for package-level prompt constants.
func MustRender(tmpl string, data any) string {
	s, err := Render(tmpl, data)
	if err != nil {
		panic(err)
	}
	return s
}
