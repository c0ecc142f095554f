package render

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/docdraft/internal/foundation/errors"
	"git.home.luguber.info/inful/docdraft/internal/frontmatter"
	"git.home.luguber.info/inful/docdraft/internal/pipeline"
	helpers "git.home.luguber.info/inful/docdraft/internal/testutil/testutils"
)

func buildWithPages() *pipeline.BuildContext {
	bc := pipeline.NewBuildContext(".", "docs", nil)
	bc.Pages = []*pipeline.Page{
		{ID: "index.md", Metadata: map[string]any{"title": "Home"}, Body: []byte("# Welcome\n\nHello **world**.\n"), HadFrontmatter: true},
		{ID: "guides/getting-started.md", Metadata: map[string]any{}, Body: []byte("Intro text.\n")},
		{ID: "api.md", Metadata: map[string]any{}, Body: []byte("# API Reference\n\nSecret details.\n")},
		{ID: "wip.md", Metadata: map[string]any{"draft": true}, Body: []byte("# WIP\n\nWork in progress.\n"), HadFrontmatter: true},
	}
	bc.Page("api.md").MarkDraft()
	return bc
}

func TestTitle(t *testing.T) {
	tests := []struct {
		name string
		page pipeline.Page
		want string
	}{
		{"frontmatter", pipeline.Page{ID: "a.md", Metadata: map[string]any{"title": "From FM"}, Body: []byte("# Heading\n")}, "From FM"},
		{"heading", pipeline.Page{ID: "a.md", Body: []byte("Intro\n\n# The *Heading*\n")}, "The Heading"},
		{"second level ignored", pipeline.Page{ID: "setup-guide.md", Body: []byte("## Sub\n")}, "Setup Guide"},
		{"section index", pipeline.Page{ID: "guides/index.md"}, "Guides"},
		{"root index", pipeline.Page{ID: "index.md"}, "Home"},
		{"underscores", pipeline.Page{ID: "release_notes.markdown"}, "Release Notes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Title(&tt.page))
		})
	}
}

func TestHTMLStage(t *testing.T) {
	out := filepath.Join(t.TempDir(), "site")
	require.NoError(t, os.MkdirAll(out, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(out, "stale.html"), []byte("old"), 0o600))

	bc := buildWithPages()
	stage := NewHTMLStage(out)
	assert.Equal(t, "render-html", stage.Name())
	require.NoError(t, stage.Run(context.Background(), bc))

	fa := helpers.NewFileAssertions(t, out)
	fa.AssertFileNotExists("stale.html")

	fa.AssertFileContains("index.html", "<strong>world</strong>")
	fa.AssertFileContains("index.html", "<title>Home</title>")
	fa.AssertFileNotContains("index.html", "noindex")

	fa.AssertFileContains("guides/getting-started.html", "<title>Getting Started</title>")
	fa.AssertFileContains("guides/getting-started.html", "Intro text.")

	fa.AssertFileContains("api.html", `<meta name="robots" content="noindex">`)
	fa.AssertFileContains("api.html", "draft-banner")
	fa.AssertFileContains("api.html", "<h1>API Reference</h1>")
	fa.AssertFileNotContains("api.html", "Secret details.")

	fa.AssertFileContains("wip.html", "Work in progress.")
	fa.AssertFileNotContains("wip.html", "noindex")
}

func TestHTMLStage_OutputCollision(t *testing.T) {
	bc := pipeline.NewBuildContext(".", "docs", nil)
	bc.Pages = []*pipeline.Page{
		{ID: "a.markdown", Body: []byte("# Long\n")},
		{ID: "a.md", Body: []byte("# Short\n")},
	}
	err := NewHTMLStage(filepath.Join(t.TempDir(), "site")).Run(context.Background(), bc)
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryBuild))
	assert.Contains(t, err.Error(), "same output file")
}

func TestValidateOutputDir(t *testing.T) {
	root := filepath.Join(t.TempDir(), "repo")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "docs"), 0o750))

	tests := []struct {
		name string
		dir  string
		ok   bool
	}{
		{"site under root", filepath.Join(root, "site"), true},
		{"sibling of root", filepath.Join(filepath.Dir(root), "site"), true},
		{"docs directory", filepath.Join(root, "docs"), false},
		{"inside docs", filepath.Join(root, "docs", "site"), false},
		{"build root", root, false},
		{"ancestor of root", filepath.Dir(root), false},
		{"dot dot", filepath.Join(root, "docs", "..", ".."), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputDir(tt.dir, root, "docs")
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, ferrors.HasCategory(err, ferrors.CategoryValidation))
		})
	}
}

func TestRenderStages_KeepSources(t *testing.T) {
	root := t.TempDir()
	guide := filepath.Join(root, "docs", "guide.md")
	require.NoError(t, os.MkdirAll(filepath.Dir(guide), 0o750))
	require.NoError(t, os.WriteFile(guide, []byte("# Guide\n"), 0o600))

	for _, dir := range []string{filepath.Join(root, "docs"), root} {
		bc := pipeline.NewBuildContext(root, "docs", nil)
		bc.Pages = []*pipeline.Page{{ID: "guide.md", Body: []byte("# Guide\n")}}

		require.Error(t, NewHTMLStage(dir).Run(context.Background(), bc), dir)
		require.Error(t, (&HugoStage{ContentDir: dir}).Run(context.Background(), bc), dir)
		helpers.NewFileAssertions(t, root).AssertFileContains("docs/guide.md", "# Guide")
	}
}

func TestHTMLStage_RefusesUnsafeOutput(t *testing.T) {
	for _, dir := range []string{"", ".", "/"} {
		err := NewHTMLStage(dir).Run(context.Background(), buildWithPages())
		require.Error(t, err, dir)
	}
}

func TestHugoStage(t *testing.T) {
	out := filepath.Join(t.TempDir(), "content")
	bc := buildWithPages()
	stage := &HugoStage{ContentDir: out}
	assert.Equal(t, "render-hugo", stage.Name())
	require.NoError(t, stage.Run(context.Background(), bc))

	read := func(rel string) *frontmatter.Document {
		t.Helper()
		data, err := os.ReadFile(filepath.Join(out, filepath.FromSlash(rel)))
		require.NoError(t, err)
		doc, err := frontmatter.Parse(data)
		require.NoError(t, err)
		return doc
	}

	index := read("index.md")
	assert.Equal(t, "Home", index.Fields["title"])
	assert.False(t, frontmatter.Bool(index.Fields, "draft"))
	assert.Equal(t, "# Welcome\n\nHello **world**.\n", string(index.Body))

	guide := read("guides/getting-started.md")
	assert.True(t, guide.Had)
	assert.Equal(t, "Getting Started", guide.Fields["title"])

	api := read("api.md")
	assert.True(t, frontmatter.Bool(api.Fields, "draft"))
	assert.Equal(t, "API Reference", api.Fields["title"])

	wip := read("wip.md")
	assert.True(t, frontmatter.Bool(wip.Fields, "draft"), "authored draft key is kept")
	assert.Equal(t, "WIP", wip.Fields["title"])

	_, touched := bc.Page("guides/getting-started.md").Metadata["title"]
	assert.False(t, touched, "rendering must not mutate page metadata")
	_, marked := bc.Page("api.md").Metadata["draft"]
	assert.False(t, marked)
}
