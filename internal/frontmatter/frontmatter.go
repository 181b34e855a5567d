// Package frontmatter splits and parses YAML front matter from page sources.
package frontmatter

import (
	"bytes"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrMissingClosingDelimiter indicates an opening --- without a closing one.
var ErrMissingClosingDelimiter = errors.New("frontmatter: missing closing delimiter")

var delim = []byte("---")

// Split separates `---` delimited YAML front matter from the body. If the
// document does not start with a delimiter, had is false and body is the full
// input.
func Split(content []byte) (meta []byte, body []byte, had bool, err error) {
	nl := detectNewline(content)
	open := append(append([]byte{}, delim...), nl...)
	if !bytes.HasPrefix(content, open) {
		return nil, content, false, nil
	}

	rest := content[len(open):]
	closeSeq := append(append(append([]byte{}, nl...), delim...), nl...)
	if bytes.HasPrefix(rest, append(append([]byte{}, delim...), nl...)) {
		// Empty front matter block.
		return []byte{}, rest[len(delim)+len(nl):], true, nil
	}
	idx := bytes.Index(rest, closeSeq)
	if idx < 0 {
		// Closing delimiter at EOF without trailing newline.
		tail := append(append([]byte{}, nl...), delim...)
		if bytes.HasSuffix(rest, tail) {
			return rest[:len(rest)-len(tail)+len(nl)], nil, true, nil
		}
		return nil, nil, false, ErrMissingClosingDelimiter
	}
	return rest[:idx+len(nl)], rest[idx+len(closeSeq):], true, nil
}

// Parse returns the front matter as a map; empty input yields an empty map.
func Parse(meta []byte) (map[string]any, error) {
	out := map[string]any{}
	if len(meta) == 0 {
		return out, nil
	}
	if err := yaml.Unmarshal(meta, &out); err != nil {
		return nil, fmt.Errorf("frontmatter: %w", err)
	}
	return out, nil
}

func detectNewline(content []byte) []byte {
	if i := bytes.IndexByte(content, '\n'); i > 0 && content[i-1] == '\r' {
		return []byte("\r\n")
	}
	return []byte("\n")
}
