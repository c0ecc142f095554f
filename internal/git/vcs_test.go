package git

import (
	"context"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helpers "git.home.luguber.info/inful/docdraft/internal/testutil/testutils"
)

func backends(t *testing.T) map[string]VCS {
	t.Helper()
	return map[string]VCS{
		BackendCLI:   NewCLI(""),
		BackendGoGit: NewGoGit(),
	}
}

// featureRepo builds trunk with three pages, a feature branch that edits one
// and adds another, then advances trunk so only three-dot diffs stay stable.
func featureRepo(t *testing.T) *helpers.GitRepo {
	t.Helper()
	r := helpers.SetupTestGitRepo(t, "master")
	r.CommitFiles("initial", map[string]string{
		"docs/index.md": "# Index\n",
		"docs/guide.md": "# Guide\n",
		"docs/api.md":   "# API\n",
		"README.md":     "readme\n",
	})
	r.Checkout("feature", true)
	r.CommitFiles("feature work", map[string]string{
		"docs/guide.md":    "# Guide\n\nUpdated.\n",
		"docs/tutorial.md": "# Tutorial\n",
		"main.go":          "package main\n",
	})
	r.Checkout("master", false)
	r.CommitFiles("trunk moves on", map[string]string{
		"docs/api.md": "# API\n\nChanged on trunk.\n",
	})
	r.Checkout("feature", false)
	return r
}

func TestNew(t *testing.T) {
	v, err := New("", "")
	require.NoError(t, err)
	assert.IsType(t, &CLI{}, v)

	v, err = New("Go-Git", "")
	require.NoError(t, err)
	assert.IsType(t, &GoGit{}, v)

	_, err = New("svn", "")
	require.Error(t, err)
}

func TestBaseCandidates(t *testing.T) {
	assert.Equal(t, []string{"main", "origin/main"}, baseCandidates("main"))
	assert.Equal(t, []string{"origin/main"}, baseCandidates("origin/main"))
}

func TestSplitNUL(t *testing.T) {
	assert.Nil(t, splitNUL(nil))
	assert.Equal(t, []string{"a b.md", "c.md"}, splitNUL([]byte("a b.md\x00c.md\x00")))
}

func TestCurrentBranch(t *testing.T) {
	r := featureRepo(t)
	for name, v := range backends(t) {
		t.Run(name, func(t *testing.T) {
			branch, err := v.CurrentBranch(context.Background(), r.Dir)
			require.NoError(t, err)
			assert.Equal(t, "feature", branch)
		})
	}
}

func TestCurrentBranch_Detached(t *testing.T) {
	r := featureRepo(t)
	r.Git("checkout", "-q", "--detach", "HEAD")
	for name, v := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := v.CurrentBranch(context.Background(), r.Dir)
			require.ErrorIs(t, err, ErrDetachedHead)
		})
	}
}

func TestNotRepository(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}
	dir := t.TempDir()
	for name, v := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := v.CurrentBranch(context.Background(), dir)
			require.ErrorIs(t, err, ErrNotRepository)

			_, err = v.ChangedFiles(context.Background(), dir, "master", "docs")
			require.ErrorIs(t, err, ErrNotRepository)
		})
	}
}

func TestChangedFiles_ThreeDot(t *testing.T) {
	r := featureRepo(t)
	for name, v := range backends(t) {
		t.Run(name, func(t *testing.T) {
			files, err := v.ChangedFiles(context.Background(), r.Dir, "master", "docs")
			require.NoError(t, err)
			assert.ElementsMatch(t, []string{"docs/guide.md", "docs/tutorial.md"}, files)
		})
	}
}

func TestChangedFiles_NoPathspec(t *testing.T) {
	r := featureRepo(t)
	for name, v := range backends(t) {
		t.Run(name, func(t *testing.T) {
			files, err := v.ChangedFiles(context.Background(), r.Dir, "master", "")
			require.NoError(t, err)
			assert.ElementsMatch(t, []string{"docs/guide.md", "docs/tutorial.md", "main.go"}, files)
		})
	}
}

func TestChangedFiles_Deleted(t *testing.T) {
	r := featureRepo(t)
	r.Git("rm", "-q", "docs/index.md")
	r.Git("commit", "-q", "-m", "remove index")
	for name, v := range backends(t) {
		t.Run(name, func(t *testing.T) {
			files, err := v.ChangedFiles(context.Background(), r.Dir, "master", "docs")
			require.NoError(t, err)
			assert.ElementsMatch(t, []string{"docs/guide.md", "docs/index.md", "docs/tutorial.md"}, files)
		})
	}
}

func TestChangedFiles_RemoteTrackingFallback(t *testing.T) {
	origin := featureRepo(t)
	clone := filepath.Join(t.TempDir(), "clone")
	helpers.RunGit(t, origin.Dir, "clone", "-q", "--branch", "feature", origin.Dir, clone)

	for name, v := range backends(t) {
		t.Run(name, func(t *testing.T) {
			files, err := v.ChangedFiles(context.Background(), clone, "master", "docs")
			require.NoError(t, err)
			assert.ElementsMatch(t, []string{"docs/guide.md", "docs/tutorial.md"}, files)
		})
	}
}

func TestChangedFiles_RootSubdirectory(t *testing.T) {
	r := helpers.SetupTestGitRepo(t, "master")
	r.CommitFiles("initial", map[string]string{
		"site/docs/index.md": "# Index\n",
		"docs/other.md":      "# Other\n",
	})
	r.Checkout("feature", true)
	r.CommitFiles("feature", map[string]string{
		"site/docs/new.md": "# New\n",
		"docs/other.md":    "# Other\n\nEdited.\n",
	})

	root := filepath.Join(r.Dir, "site")
	for name, v := range backends(t) {
		t.Run(name, func(t *testing.T) {
			files, err := v.ChangedFiles(context.Background(), root, "master", "docs")
			require.NoError(t, err)
			assert.Equal(t, []string{"docs/new.md"}, files)
		})
	}
}

func TestChangedFiles_UnknownBase(t *testing.T) {
	r := featureRepo(t)
	for name, v := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := v.ChangedFiles(context.Background(), r.Dir, "does-not-exist", "docs")
			require.ErrorIs(t, err, ErrUnknownRevision)
		})
	}
}

func TestChangedFiles_OnTrunk(t *testing.T) {
	r := featureRepo(t)
	r.Checkout("master", false)
	for name, v := range backends(t) {
		t.Run(name, func(t *testing.T) {
			files, err := v.ChangedFiles(context.Background(), r.Dir, "master", "docs")
			require.NoError(t, err)
			assert.Empty(t, files)
		})
	}
}
