// Package version resolves the running engine version.
//
// The version normally lives in a VERSION file shipped next to the executable
// (packaged builds) or at the root of a source checkout. Resolution happens at
// most once per process; every failure mode degrades to the Fallback constant
// rather than surfacing an error.
package version

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Fallback is the baked-in version reported when no VERSION file can be read.
// Set via build-time ldflags in release builds:
// go build -ldflags "-X git.home.luguber.info/inful/sitebuilder/internal/version.Fallback=v2.1.0".
var Fallback = "0.0.0-dev"

// FileName is the version file looked up next to the executable and in the
// working directory of a source checkout.
const FileName = "VERSION"

var (
	mu       sync.Mutex
	cached   string
	resolved bool

	// readFile is swappable so tests can count and fail reads.
	readFile = os.ReadFile
)

// Resolve returns the engine version. The first call reads the VERSION file;
// subsequent calls return the cached value without touching the filesystem.
func Resolve() string {
	mu.Lock()
	defer mu.Unlock()
	if resolved {
		return cached
	}
	cached = resolveOnce()
	resolved = true
	return cached
}

func resolveOnce() string {
	for _, p := range candidatePaths() {
		raw, err := readFile(p)
		if err != nil {
			continue
		}
		if v := strings.TrimSpace(string(raw)); v != "" {
			return v
		}
	}
	return Fallback
}

// candidatePaths returns the locations probed for a VERSION file, packaged
// location first.
func candidatePaths() []string {
	var paths []string
	if exe, err := os.Executable(); err == nil {
		paths = append(paths, filepath.Join(filepath.Dir(exe), FileName))
	}
	paths = append(paths, FileName)
	return paths
}

// Reset clears the process-wide cache. Intended for tests only.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	cached = ""
	resolved = false
	readFile = os.ReadFile
}

// setReadFile swaps the file reader for tests and returns a restore func.
func setReadFile(fn func(string) ([]byte, error)) func() {
	mu.Lock()
	prev := readFile
	readFile = fn
	mu.Unlock()
	return func() {
		mu.Lock()
		readFile = prev
		mu.Unlock()
	}
}
