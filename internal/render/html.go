package render

import (
	"bytes"
	"context"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	ferrors "git.home.luguber.info/inful/docdraft/internal/foundation/errors"
	"git.home.luguber.info/inful/docdraft/internal/logfields"
	"git.home.luguber.info/inful/docdraft/internal/pipeline"
)

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
{{- if .Draft}}
<meta name="robots" content="noindex">
{{- end}}
</head>
<body>
{{- if .Draft}}
<div class="draft-banner">Draft preview: this page is not modified in this change and was not rendered.</div>
{{- end}}
<main>
{{- if .Draft}}
<h1>{{.Title}}</h1>
{{- else}}
{{.Content}}
{{- end}}
</main>
</body>
</html>
`))

type htmlPage struct {
	Title   string
	Draft   bool
	Content template.HTML
}

// HTMLStage renders pages to standalone HTML files.
type HTMLStage struct {
	OutputDir string
	md        goldmark.Markdown
}

// NewHTMLStage returns an HTML renderer writing to outputDir.
func NewHTMLStage(outputDir string) *HTMLStage {
	return &HTMLStage{
		OutputDir: outputDir,
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
	}
}

func (s *HTMLStage) Name() string { return "render-html" }

func (s *HTMLStage) Run(ctx context.Context, bc *pipeline.BuildContext) error {
	if err := resetDir(s.OutputDir, bc); err != nil {
		return err
	}

	full, drafts := 0, 0
	written := make(map[string]string, len(bc.Pages))
	for _, page := range bc.Pages {
		if err := ctx.Err(); err != nil {
			return err
		}
		target := htmlPath(page.ID)
		if other, ok := written[target]; ok {
			return ferrors.NewError(ferrors.CategoryBuild, "pages render to the same output file").
				WithContext("page", page.ID).
				WithContext("other", other).
				WithContext("output", target).
				Build()
		}
		written[target] = page.ID
		data := htmlPage{Title: Title(page), Draft: page.IsDraft()}
		if data.Draft {
			drafts++
		} else {
			var buf bytes.Buffer
			if err := s.md.Convert(page.Body, &buf); err != nil {
				return ferrors.WrapError(err, ferrors.CategoryBuild, "render markdown").
					WithContext("page", page.ID).
					Build()
			}
			// #nosec G203 -- output of the markdown renderer
			data.Content = template.HTML(buf.String())
			full++
		}

		var out bytes.Buffer
		if err := pageTemplate.Execute(&out, data); err != nil {
			return ferrors.WrapError(err, ferrors.CategoryBuild, "render page template").
				WithContext("page", page.ID).
				Build()
		}
		if err := writeFile(s.OutputDir, target, out.Bytes()); err != nil {
			return ferrors.WrapError(err, ferrors.CategoryFileSystem, "write page").
				WithContext("page", page.ID).
				Build()
		}
	}

	if bc.Logger != nil {
		bc.Logger.Info("Rendered HTML", logfields.Path(s.OutputDir),
			logfields.Count(full), logfields.Total(full+drafts))
	}
	return nil
}
