package draft

import (
	"context"
	"log/slog"
	"path"
	"slices"
	"strings"

	"git.home.luguber.info/inful/docdraft/internal/git"
	"git.home.luguber.info/inful/docdraft/internal/logfields"
	"git.home.luguber.info/inful/docdraft/internal/util/sets"
)

// Collector lists the documentation pages changed on the current branch.
type Collector struct {
	VCS  git.VCS
	Root string
	// DocsDir is the documentation subtree, slash-separated and relative to Root.
	DocsDir string
	// Extensions lists recognized page extensions, lowercased with the dot.
	Extensions []string
	Logger     *slog.Logger
}

// ModifiedDocs returns the page IDs (paths relative to DocsDir) changed
// between the merge base of devbranch and HEAD. Failures yield an empty set.
func (c *Collector) ModifiedDocs(ctx context.Context, devbranch string) sets.Set[string] {
	log := loggerOr(c.Logger)
	modified := sets.New[string]()

	if c.VCS == nil {
		log.Warn("No version control configured; no modified documentation")
		return modified
	}

	docsDir := path.Clean(strings.Trim(c.DocsDir, "/"))
	files, err := c.VCS.ChangedFiles(ctx, c.Root, devbranch, docsDir)
	if err != nil {
		log.Warn("Unable to list modified documentation; treating all pages as unmodified",
			logfields.DevBranch(devbranch), logfields.Error(err))
		return modified
	}

	prefix := docsDir + "/"
	if docsDir == "." {
		prefix = ""
	}
	for _, f := range files {
		f = path.Clean(f)
		if !strings.HasPrefix(f, prefix) {
			continue
		}
		id := strings.TrimPrefix(f, prefix)
		if id == "" || !c.recognized(id) {
			continue
		}
		modified.Add(id)
	}

	log.Debug("Collected modified documentation",
		logfields.DevBranch(devbranch), logfields.Count(modified.Len()), slog.Any("pages", sets.Sorted(modified)))
	return modified
}

func (c *Collector) recognized(id string) bool {
	return slices.Contains(c.Extensions, strings.ToLower(path.Ext(id)))
}
