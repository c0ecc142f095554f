package pipeline

import (
	"git.home.luguber.info/inful/docdraft/internal/frontmatter"
)

// Page is one documentation source file known to the build.
type Page struct {
	// ID is the slash-separated path relative to the docs directory.
	ID string
	// SourcePath is the absolute path of the source file.
	SourcePath string
	// Metadata holds the parsed frontmatter exactly as the author wrote it.
	Metadata       map[string]any
	Body           []byte
	HadFrontmatter bool
	Style          frontmatter.Style

	// draft is only ever set by MarkDraft; a `draft` key in the source
	// frontmatter does not reach it.
	draft bool
}

// IsDraft reports whether the build marked the page as a draft.
func (p *Page) IsDraft() bool {
	return p.draft
}

// MarkDraft sets the draft marker.
func (p *Page) MarkDraft() {
	p.draft = true
}

// Document returns the page as a frontmatter document for writing out.
func (p *Page) Document() *frontmatter.Document {
	return &frontmatter.Document{
		Fields: p.Metadata,
		Body:   p.Body,
		Had:    p.HadFrontmatter,
		Style:  p.Style,
	}
}
