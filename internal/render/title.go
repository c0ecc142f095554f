package render

import (
	"path"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"git.home.luguber.info/inful/docdraft/internal/frontmatter"
	"git.home.luguber.info/inful/docdraft/internal/pipeline"
)

var titleCaser = cases.Title(language.English)

// Title returns the page title: the `title` field, else the first level-one
// heading, else the file name in title case.
func Title(p *pipeline.Page) string {
	if t := strings.TrimSpace(frontmatter.String(p.Metadata, "title")); t != "" {
		return t
	}
	if h := firstHeading(p.Body); h != "" {
		return h
	}
	return titleFromID(p.ID)
}

func firstHeading(body []byte) string {
	root := goldmark.New().Parser().Parse(text.NewReader(body))
	var title string
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		h, ok := n.(*gmast.Heading)
		if !ok || h.Level != 1 {
			return gmast.WalkContinue, nil
		}
		title = strings.TrimSpace(string(headingText(h, body)))
		return gmast.WalkStop, nil
	})
	return title
}

func headingText(n gmast.Node, source []byte) []byte {
	var out []byte
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*gmast.Text); ok {
			out = append(out, t.Segment.Value(source)...)
			continue
		}
		out = append(out, headingText(c, source)...)
	}
	return out
}

// titleFromID turns "guides/getting-started.md" into "Getting Started".
func titleFromID(id string) string {
	base := strings.TrimSuffix(path.Base(id), path.Ext(id))
	if base == "index" || base == "_index" {
		if dir := path.Dir(id); dir != "." {
			base = path.Base(dir)
		} else {
			base = "home"
		}
	}
	base = strings.NewReplacer("-", " ", "_", " ").Replace(base)
	return titleCaser.String(strings.TrimSpace(base))
}
