package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText_Txt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "essay.txt")
	require.NoError(t, os.WriteFile(path, []byte("Line1\nLine2\n"), 0o644))

	text, err := ExtractText(path)
	require.NoError(t, err)
	assert.Equal(t, "Line1\nLine2\n", text)
}

func TestExtractText_CaseInsensitiveExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ESSAY.TXT")
	require.NoError(t, os.WriteFile(path, []byte("content"), 0o644))

	text, err := ExtractText(path)
	require.NoError(t, err)
	assert.Equal(t, "content", text)
}

func TestExtractText_Missing(t *testing.T) {
	_, err := ExtractText(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestExtractText_UnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "essay.odt")
	require.NoError(t, os.WriteFile(path, []byte("content"), 0o644))

	_, err := ExtractText(path)
	var unsupported *UnsupportedFormatError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, ".odt", unsupported.Ext)
}
