package tmpl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	out, err := Render("hello {{.Name}}", map[string]string{"Name": "world"})
	require.NoError(t, err)
	assert.Equal(t, "hello world", out)
}

func TestRender_MissingKey(t *testing.T) {
	_, err := Render("hello {{.Name}}", map[string]string{})
	require.Error(t, err)
}

func TestRender_InvalidTemplate(t *testing.T) {
	_, err := Render("hello {{.Name", nil)
	require.Error(t, err)
}
