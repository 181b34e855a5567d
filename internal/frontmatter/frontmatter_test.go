package frontmatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitWithFrontmatter(t *testing.T) {
	src := []byte("---\ntitle: Hello\ndraft: true\n---\n# Body\n")
	meta, body, had, err := Split(src)
	require.NoError(t, err)
	assert.True(t, had)
	assert.Equal(t, "title: Hello\ndraft: true\n", string(meta))
	assert.Equal(t, "# Body\n", string(body))
}

func TestSplitWithoutFrontmatter(t *testing.T) {
	src := []byte("# Just body\n")
	meta, body, had, err := Split(src)
	require.NoError(t, err)
	assert.False(t, had)
	assert.Nil(t, meta)
	assert.Equal(t, src, body)
}

func TestSplitEmptyBlock(t *testing.T) {
	src := []byte("---\n---\nbody\n")
	meta, body, had, err := Split(src)
	require.NoError(t, err)
	assert.True(t, had)
	assert.Empty(t, meta)
	assert.Equal(t, "body\n", string(body))
}

func TestSplitMissingClose(t *testing.T) {
	_, _, _, err := Split([]byte("---\ntitle: x\nno close"))
	assert.ErrorIs(t, err, ErrMissingClosingDelimiter)
}

func TestSplitCRLF(t *testing.T) {
	src := []byte("---\r\ntitle: Hello\r\n---\r\nbody\r\n")
	meta, body, had, err := Split(src)
	require.NoError(t, err)
	assert.True(t, had)
	assert.Equal(t, "title: Hello\r\n", string(meta))
	assert.Equal(t, "body\r\n", string(body))
}

func TestParse(t *testing.T) {
	m, err := Parse([]byte("title: Hello\ntags:\n  - go\n  - web\n"))
	require.NoError(t, err)
	assert.Equal(t, "Hello", m["title"])
	assert.Equal(t, []any{"go", "web"}, m["tags"])
}

func TestParseEmpty(t *testing.T) {
	m, err := Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse([]byte(":\n  - ["))
	assert.Error(t, err)
}
