package config

import (
	"path"
	"strings"

	ferrors "git.home.luguber.info/inful/docdraft/internal/foundation/errors"
)

// Validate checks the normalized configuration.
func (c *Config) Validate() error {
	if c.DocsDir == "" {
		return invalid("docs_dir", c.DocsDir, "docs_dir must not be empty")
	}
	if path.IsAbs(c.DocsDir) || c.DocsDir == ".." || strings.HasPrefix(c.DocsDir, "../") {
		return invalid("docs_dir", c.DocsDir, "docs_dir must be a path inside root")
	}
	if len(c.Extensions) == 0 {
		return invalid("extensions", "", "at least one documentation extension is required")
	}
	for _, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return invalid("extensions", ext, "extensions must start with a dot")
		}
	}
	if _, err := ParseGitBackend(string(c.Git.Backend)); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryValidation, "invalid git backend").
			Fatal().
			WithContext("field", "git.backend").
			Build()
	}
	if _, err := ParseOutputFormat(string(c.Output.Format)); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryValidation, "invalid output format").
			Fatal().
			WithContext("field", "output.format").
			Build()
	}
	return nil
}

func invalid(field, value, msg string) error {
	return ferrors.ValidationError(msg).
		WithContext("field", field).
		WithContext("value", value).
		Build()
}
