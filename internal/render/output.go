package render

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	ferrors "git.home.luguber.info/inful/docdraft/internal/foundation/errors"
	"git.home.luguber.info/inful/docdraft/internal/pipeline"
)

// ValidateOutputDir rejects an output directory whose cleaning would remove
// the build root or any documentation source: the root itself or one of its
// ancestors, and anything overlapping the docs directory.
func ValidateOutputDir(dir, root, docsDir string) error {
	clean := filepath.Clean(dir)
	if strings.TrimSpace(dir) == "" || clean == "." || clean == string(filepath.Separator) {
		return ferrors.ValidationError("refusing to clean output directory").
			WithContext("directory", dir).
			Build()
	}

	out, err := resolvePath(clean)
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryValidation, "resolve output directory").
			WithContext("directory", dir).
			Build()
	}
	rootAbs, err := resolvePath(root)
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryValidation, "resolve build root").
			WithContext("root", root).
			Build()
	}
	docsAbs, err := resolvePath(filepath.Join(rootAbs, docsDir))
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryValidation, "resolve docs directory").
			WithContext("docs_dir", docsDir).
			Build()
	}

	switch {
	case within(rootAbs, out):
		return ferrors.ValidationError("output directory contains the build root").
			WithContext("directory", dir).
			WithContext("root", root).
			Build()
	case within(docsAbs, out), within(out, docsAbs):
		return ferrors.ValidationError("output directory overlaps the docs directory").
			WithContext("directory", dir).
			WithContext("docs_dir", docsDir).
			Build()
	}
	return nil
}

// resetDir empties dir, creating it when missing. dir must pass
// ValidateOutputDir for the build.
func resetDir(dir string, bc *pipeline.BuildContext) error {
	if err := ValidateOutputDir(dir, bc.Root, bc.DocsDir); err != nil {
		return err
	}
	clean := filepath.Clean(dir)
	if err := os.RemoveAll(clean); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "clean output directory").
			WithContext("directory", dir).
			Build()
	}
	if err := os.MkdirAll(clean, 0o750); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "create output directory").
			WithContext("directory", dir).
			Build()
	}
	return nil
}

// resolvePath returns p as an absolute path with symlinks resolved in its
// longest existing prefix.
func resolvePath(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}
	rest := ""
	for cur := abs; ; {
		if resolved, err := filepath.EvalSymlinks(cur); err == nil {
			return filepath.Join(resolved, rest), nil
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			return abs, nil
		}
		rest = filepath.Join(filepath.Base(cur), rest)
		cur = parent
	}
}

// within reports whether p is base or lies beneath it.
func within(p, base string) bool {
	rel, err := filepath.Rel(base, p)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// writeFile writes data to the slash-separated rel path under dir.
func writeFile(dir, rel string, data []byte) error {
	target := filepath.Join(dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(target), 0o750); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(target), err)
	}
	if err := os.WriteFile(target, data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", target, err)
	}
	return nil
}

// htmlPath maps a page ID to its output file: "guide.md" -> "guide.html".
func htmlPath(id string) string {
	return strings.TrimSuffix(id, path.Ext(id)) + ".html"
}
