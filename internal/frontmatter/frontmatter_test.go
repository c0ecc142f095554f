package frontmatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_NoFrontmatter(t *testing.T) {
	input := []byte("# Title\n\nHello\n")

	doc, err := Parse(input)
	require.NoError(t, err)
	assert.False(t, doc.Had)
	assert.NotNil(t, doc.Fields)
	assert.Empty(t, doc.Fields)
	assert.Equal(t, input, doc.Body)
	assert.Equal(t, "\n", doc.Style.Newline)
	assert.True(t, doc.Style.HasTrailingNewline)
}

func TestParse_YAMLFrontmatter(t *testing.T) {
	doc, err := Parse([]byte("---\ntitle: Guide\ndraft: false\ntags:\n  - one\n---\n# Guide\n"))
	require.NoError(t, err)
	assert.True(t, doc.Had)
	assert.Equal(t, "Guide", String(doc.Fields, "title"))
	assert.False(t, Bool(doc.Fields, "draft"))
	assert.Equal(t, []any{"one"}, doc.Fields["tags"])
	assert.Equal(t, []byte("# Guide\n"), doc.Body)
}

func TestParse_EmptyBlock(t *testing.T) {
	doc, err := Parse([]byte("---\n---\n# Title\n"))
	require.NoError(t, err)
	assert.True(t, doc.Had)
	assert.Empty(t, doc.Fields)
	assert.Equal(t, []byte("# Title\n"), doc.Body)
}

func TestParse_CRLF(t *testing.T) {
	doc, err := Parse([]byte("---\r\nkey: value\r\n---\r\n# Title\r\n"))
	require.NoError(t, err)
	assert.Equal(t, "\r\n", doc.Style.Newline)
	assert.Equal(t, "value", String(doc.Fields, "key"))
	assert.Equal(t, []byte("# Title\r\n"), doc.Body)
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte("---\nkey: value\n# Title\n"))
	require.ErrorIs(t, err, ErrMissingClosingDelimiter)

	_, err = Parse([]byte("---\nkey: [unterminated\n---\nbody\n"))
	require.Error(t, err)
}

func TestBytes_RoundTripSortsKeys(t *testing.T) {
	doc, err := Parse([]byte("---\nweight: 2\ntitle: Guide\n---\nBody\n"))
	require.NoError(t, err)

	doc.Fields["draft"] = true
	out, err := doc.Bytes()
	require.NoError(t, err)
	assert.Equal(t, "---\ndraft: true\ntitle: Guide\nweight: 2\n---\nBody\n", string(out))
}

func TestBytes_AddsBlockWhenFieldsSet(t *testing.T) {
	doc, err := Parse([]byte("Body\n"))
	require.NoError(t, err)

	out, err := doc.Bytes()
	require.NoError(t, err)
	assert.Equal(t, "Body\n", string(out))

	doc.Fields["draft"] = true
	out, err = doc.Bytes()
	require.NoError(t, err)
	assert.Equal(t, "---\ndraft: true\n---\nBody\n", string(out))
}

func TestBytes_PreservesCRLF(t *testing.T) {
	doc, err := Parse([]byte("---\r\ntitle: A\r\n---\r\nBody\r\n"))
	require.NoError(t, err)

	out, err := doc.Bytes()
	require.NoError(t, err)
	assert.Equal(t, "---\r\ntitle: A\r\n---\r\nBody\r\n", string(out))
}

func TestBool(t *testing.T) {
	fields := map[string]any{"a": true, "b": "true", "c": 1, "d": false}
	assert.True(t, Bool(fields, "a"))
	assert.True(t, Bool(fields, "b"))
	assert.False(t, Bool(fields, "c"))
	assert.False(t, Bool(fields, "d"))
	assert.False(t, Bool(fields, "missing"))
	assert.False(t, Bool(nil, "a"))
}
