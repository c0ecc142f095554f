package pipeline

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	ferrors "git.home.luguber.info/inful/docdraft/internal/foundation/errors"
	"git.home.luguber.info/inful/docdraft/internal/frontmatter"
	"git.home.luguber.info/inful/docdraft/internal/logfields"
)

// DiscoverStage collects the documentation pages under Root/DocsDir.
type DiscoverStage struct {
	// Extensions lists recognized page extensions, lowercased with the dot.
	Extensions []string
}

func (s *DiscoverStage) Name() string { return "discover" }

func (s *DiscoverStage) Run(ctx context.Context, bc *BuildContext) error {
	dir := filepath.Join(bc.Root, filepath.FromSlash(bc.DocsDir))
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ferrors.NewError(ferrors.CategoryNotFound, "documentation directory not found").
				WithContext("path", dir).
				Build()
		}
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "stat documentation directory").
			WithContext("path", dir).
			Build()
	}
	if !info.IsDir() {
		return ferrors.FileSystemError("documentation path is not a directory").
			WithContext("path", dir).
			Build()
	}

	log := bc.logger()
	var pages []*Page
	err = filepath.WalkDir(dir, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			if p != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !s.recognized(d.Name()) {
			return nil
		}

		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		page, err := readPage(p, path.Clean(filepath.ToSlash(rel)))
		if err != nil {
			return err
		}
		if page.Metadata == nil {
			log.Warn("Invalid frontmatter; treating file as plain Markdown", logfields.Page(page.ID))
			page.Metadata = map[string]any{}
		}
		pages = append(pages, page)
		return nil
	})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "discover documentation").
			WithContext("path", dir).
			Build()
	}

	sort.Slice(pages, func(i, j int) bool { return pages[i].ID < pages[j].ID })
	bc.Pages = pages
	log.Info("Discovered documentation", logfields.Path(dir), logfields.Count(len(pages)))
	return nil
}

func (s *DiscoverStage) recognized(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, want := range s.Extensions {
		if ext == want {
			return true
		}
	}
	return false
}

// readPage loads a page. Malformed frontmatter leaves Metadata nil and the
// whole file as Body.
func readPage(abs, id string) (*Page, error) {
	// #nosec G304 -- path comes from walking the configured docs directory
	content, err := os.ReadFile(abs)
	if err != nil {
		return nil, err
	}
	page := &Page{ID: id, SourcePath: abs}
	doc, err := frontmatter.Parse(content)
	if err != nil {
		page.Body = content
		return page, nil
	}
	page.Metadata = doc.Fields
	page.Body = doc.Body
	page.HadFrontmatter = doc.Had
	page.Style = doc.Style
	return page, nil
}
