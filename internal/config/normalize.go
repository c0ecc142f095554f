package config

import (
	"path"
	"path/filepath"
	"strings"
)

// Normalize canonicalizes user-written values in place. It never fails;
// Validate reports what cannot be repaired.
func (c *Config) Normalize() {
	if strings.TrimSpace(c.Root) == "" {
		c.Root = "."
	}
	c.DocsDir = normalizeDocsDir(c.DocsDir)

	exts := make([]string, 0, len(c.Extensions))
	for _, e := range c.Extensions {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			exts = append(exts, e)
		}
	}
	c.Extensions = exts

	if strings.TrimSpace(c.Git.Binary) == "" {
		c.Git.Binary = "git"
	}
	if strings.TrimSpace(c.Output.Directory) == "" {
		c.Output.Directory = "./site"
	}
	if b, err := ParseGitBackend(string(c.Git.Backend)); err == nil {
		c.Git.Backend = b
	}
	if f, err := ParseOutputFormat(string(c.Output.Format)); err == nil {
		c.Output.Format = f
	}
	c.Logging.Level = NormalizeLogLevel(string(c.Logging.Level))
	c.Logging.Format = NormalizeLogFormat(string(c.Logging.Format))

	if c.Draft.DevBranch = strings.TrimSpace(c.Draft.DevBranch); c.Draft.DevBranch == "" {
		c.Draft.DevBranch = DefaultDevBranch
	}
	c.Draft = c.Draft.Clone()
}

// normalizeDocsDir returns a slash-separated, cleaned relative path without a
// trailing separator. An empty input stays empty so Validate can reject it.
func normalizeDocsDir(dir string) string {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return ""
	}
	return path.Clean(filepath.ToSlash(dir))
}
