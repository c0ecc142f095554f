// Package frontmatter reads and writes the YAML frontmatter of Markdown pages.
package frontmatter

import (
	"gopkg.in/yaml.v3"
)

// Document is a Markdown page split into frontmatter fields and body.
type Document struct {
	// Fields is never nil after Parse.
	Fields map[string]any
	Body   []byte
	// Had reports whether the source carried a frontmatter block.
	Had   bool
	Style Style
}

// Parse splits content into frontmatter fields and body. Content without
// frontmatter yields empty Fields and the whole input as Body.
func Parse(content []byte) (*Document, error) {
	raw, body, had, style, err := split(content)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if len(raw) > 0 {
		if err := yaml.Unmarshal(raw, &fields); err != nil {
			return nil, err
		}
		if fields == nil {
			fields = map[string]any{}
		}
	}
	return &Document{Fields: fields, Body: body, Had: had, Style: style}, nil
}

// Bytes renders the document. A frontmatter block is emitted when the source
// had one or when Fields is non-empty.
func (d *Document) Bytes() ([]byte, error) {
	if !d.Had && len(d.Fields) == 0 {
		return d.Body, nil
	}
	raw, err := encode(d.Fields, d.Style)
	if err != nil {
		return nil, err
	}
	return join(raw, d.Body, d.Style), nil
}

// Bool reads a boolean field, accepting the YAML boolean forms and the
// strings "true"/"false". Missing or non-boolean values are false.
func Bool(fields map[string]any, key string) bool {
	switch v := fields[key].(type) {
	case bool:
		return v
	case string:
		return v == "true"
	default:
		return false
	}
}

// String reads a string field, returning "" when missing or not a string.
func String(fields map[string]any, key string) string {
	s, _ := fields[key].(string)
	return s
}
