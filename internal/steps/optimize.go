package steps

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"git.home.luguber.info/inful/sitebuilder/internal/builder"
	"git.home.luguber.info/inful/sitebuilder/internal/logfields"
)

// optimize post-processes saved HTML: comments are stripped and runs of
// whitespace collapsed, outside of whitespace-sensitive elements. It runs
// only when enabled in configuration and never on dry-run builds (there is no
// output to optimize).
type optimize struct{ base }

// NewOptimize constructs the HTML optimization step.
func NewOptimize(b *builder.Builder) builder.Step { return &optimize{base{b: b}} }

func (s *optimize) Name() string { return NameOptimize }

func (s *optimize) CanProcess() bool {
	return s.b.Config().Optimize.Enabled && !s.opts.DryRun()
}

func (s *optimize) Process() error {
	outRoot := s.b.Config().OutputPath()
	optimized := 0
	err := filepath.WalkDir(outRoot, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !strings.HasSuffix(p, ".html") {
			return err
		}
		raw, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		min, err := minifyHTML(raw)
		if err != nil {
			return fmt.Errorf("optimize %s: %w", p, err)
		}
		if len(min) < len(raw) {
			if err := os.WriteFile(p, min, 0o644); err != nil {
				return err
			}
			optimized++
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk output: %w", err)
	}
	s.b.Logger().Debug("HTML optimized", logfields.Count(optimized))
	return nil
}

var spaceRun = regexp.MustCompile(`[ \t\r\n]+`)

// preserveWhitespace lists elements whose text must pass through untouched.
var preserveWhitespace = map[string]bool{
	"pre":      true,
	"textarea": true,
	"script":   true,
	"style":    true,
	"code":     true,
}

// structural lists elements where whitespace-only text nodes carry no meaning
// and can be dropped outright. Elsewhere they collapse to a single space so
// inline elements keep their separation.
var structural = map[string]bool{
	"html": true, "head": true, "body": true,
	"ul": true, "ol": true, "table": true, "thead": true, "tbody": true, "tr": true,
	"nav": true, "header": true, "footer": true, "main": true, "article": true, "section": true,
}

func minifyHTML(raw []byte) ([]byte, error) {
	doc, err := html.Parse(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	clean(doc, false)
	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func clean(n *html.Node, preserve bool) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		switch c.Type {
		case html.CommentNode:
			n.RemoveChild(c)
		case html.TextNode:
			if !preserve {
				c.Data = spaceRun.ReplaceAllString(c.Data, " ")
				if c.Data == " " && n.Type == html.ElementNode && structural[n.Data] {
					n.RemoveChild(c)
				}
			}
		case html.ElementNode:
			clean(c, preserve || preserveWhitespace[c.Data])
		}
		c = next
	}
}
