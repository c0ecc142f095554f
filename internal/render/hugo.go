package render

import (
	"context"
	"maps"

	ferrors "git.home.luguber.info/inful/docdraft/internal/foundation/errors"
	"git.home.luguber.info/inful/docdraft/internal/logfields"
	"git.home.luguber.info/inful/docdraft/internal/pipeline"
)

// hugoDraftKey is the frontmatter key Hugo reads to hold a page back from
// regular builds.
const hugoDraftKey = "draft"

// HugoStage writes pages into a Hugo content directory. Drafted pages carry
// `draft: true`, so a regular `hugo` run skips them and `hugo -D` shows them.
// Other pages keep their frontmatter as authored.
type HugoStage struct {
	// ContentDir is cleaned and rewritten on every run.
	ContentDir string
}

func (s *HugoStage) Name() string { return "render-hugo" }

func (s *HugoStage) Run(ctx context.Context, bc *pipeline.BuildContext) error {
	if err := resetDir(s.ContentDir, bc); err != nil {
		return err
	}

	for _, page := range bc.Pages {
		if err := ctx.Err(); err != nil {
			return err
		}
		doc := page.Document()
		// Copy so the page's own metadata is left as discovered.
		doc.Fields = maps.Clone(page.Metadata)
		if doc.Fields == nil {
			doc.Fields = map[string]any{}
		}
		if _, ok := doc.Fields["title"]; !ok {
			doc.Fields["title"] = Title(page)
		}
		if page.IsDraft() {
			doc.Fields[hugoDraftKey] = true
		}

		out, err := doc.Bytes()
		if err != nil {
			return ferrors.WrapError(err, ferrors.CategoryBuild, "serialize frontmatter").
				WithContext("page", page.ID).
				Build()
		}
		if err := writeFile(s.ContentDir, page.ID, out); err != nil {
			return ferrors.WrapError(err, ferrors.CategoryFileSystem, "write content file").
				WithContext("page", page.ID).
				Build()
		}
	}

	if bc.Logger != nil {
		bc.Logger.Info("Wrote Hugo content", logfields.Path(s.ContentDir), logfields.Count(len(bc.Pages)))
	}
	return nil
}
