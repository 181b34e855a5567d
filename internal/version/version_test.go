package version

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveFallbackWhenFileMissing(t *testing.T) {
	Reset()
	t.Cleanup(Reset)
	restore := setReadFile(func(string) ([]byte, error) { return nil, errors.New("no such file") })
	t.Cleanup(restore)

	assert.Equal(t, Fallback, Resolve())
}

func TestResolveReadsAndTrimsVersionFile(t *testing.T) {
	Reset()
	t.Cleanup(Reset)
	restore := setReadFile(func(string) ([]byte, error) { return []byte("v1.4.2\n"), nil })
	t.Cleanup(restore)

	assert.Equal(t, "v1.4.2", Resolve())
}

func TestResolveCachesAcrossCalls(t *testing.T) {
	Reset()
	t.Cleanup(Reset)
	reads := 0
	restore := setReadFile(func(string) ([]byte, error) {
		reads++
		return []byte("v9.9.9"), nil
	})
	t.Cleanup(restore)

	first := Resolve()
	second := Resolve()
	require.Equal(t, first, second)
	// The first candidate path satisfies resolution; no further reads afterwards.
	assert.Equal(t, 1, reads)
}

func TestResolveSkipsEmptyFile(t *testing.T) {
	Reset()
	t.Cleanup(Reset)
	restore := setReadFile(func(string) ([]byte, error) { return []byte("  \n"), nil })
	t.Cleanup(restore)

	assert.Equal(t, Fallback, Resolve())
}
